package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Freeeeeet/tutoring_server/internal/model"
	"github.com/Freeeeeet/tutoring_server/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService struct {
	userRepo UserRepository
	logger   *zap.Logger
}

func NewUserService(userRepo UserRepository, logger *zap.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Register creates a user and issues its API token
func (s *UserService) Register(ctx context.Context, req model.RegisterUserRequest) (*model.User, error) {
	if !req.Role.IsValid() {
		return nil, ErrInvalidRole
	}

	user := &model.User{
		TelegramID: req.TelegramID,
		Username:   req.Username,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Role:       req.Role,
		APIToken:   uuid.NewString(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrTelegramTaken) {
			return nil, ErrTelegramLinked
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("New user registered",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username),
		zap.String("role", string(user.Role)),
	)

	return user, nil
}

// ResolveToken returns the token's owner, or nil if the token is not a known one
func (s *UserService) ResolveToken(ctx context.Context, token string) (*model.User, error) {
	if _, err := uuid.Parse(token); err != nil {
		return nil, nil
	}

	user, err := s.userRepo.GetByAPIToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("resolve token: %w", err)
	}

	return user, nil
}

package service

import (
	"context"
	"testing"

	"github.com/Freeeeeet/tutoring_server/internal/apperror"
	"github.com/Freeeeeet/tutoring_server/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestUserService_RegisterAndResolve(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), zap.NewNop())
	ctx := context.Background()

	user, err := svc.Register(ctx, model.RegisterUserRequest{Username: "tina", Role: model.RoleTutor})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)

	_, err = uuid.Parse(user.APIToken)
	require.NoError(t, err)

	resolved, err := svc.ResolveToken(ctx, user.APIToken)
	require.NoError(t, err)
	require.NotNil(t, resolved)
	assert.Equal(t, user.ID, resolved.ID)
}

func TestUserService_ResolveUnknownToken(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), zap.NewNop())
	ctx := context.Background()

	for _, token := range []string{"", "not-a-uuid", uuid.NewString()} {
		user, err := svc.ResolveToken(ctx, token)
		require.NoError(t, err)
		assert.Nil(t, user, token)
	}
}

func TestUserService_RegisterRejectsUnknownRole(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), zap.NewNop())

	_, err := svc.Register(context.Background(), model.RegisterUserRequest{Username: "x", Role: "admin"})
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestUserService_RegisterLinkedTelegram(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), zap.NewNop())
	ctx := context.Background()
	chatID := int64(42)

	_, err := svc.Register(ctx, model.RegisterUserRequest{Username: "a", Role: model.RoleStudent, TelegramID: &chatID})
	require.NoError(t, err)

	_, err = svc.Register(ctx, model.RegisterUserRequest{Username: "b", Role: model.RoleStudent, TelegramID: &chatID})
	assert.ErrorIs(t, err, ErrTelegramLinked)
	assert.Equal(t, apperror.CodeConflict, apperror.CodeOf(err))

	// no chat means no conflict
	_, err = svc.Register(ctx, model.RegisterUserRequest{Username: "c", Role: model.RoleStudent})
	assert.NoError(t, err)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Freeeeeet/tutoring_server/internal/model"
	"github.com/Freeeeeet/tutoring_server/internal/notify"
	"github.com/Freeeeeet/tutoring_server/internal/repository"
	"go.uber.org/zap"
)

const notifyTimeout = 5 * time.Second

type RegistrationService struct {
	registrationRepo RegistrationRepository
	courseRepo       CourseRepository
	userRepo         UserRepository
	notifier         Notifier
	logger           *zap.Logger
	now              func() time.Time
}

func NewRegistrationService(
	registrationRepo RegistrationRepository,
	courseRepo CourseRepository,
	userRepo UserRepository,
	notifier Notifier,
	logger *zap.Logger,
) *RegistrationService {
	return &RegistrationService{
		registrationRepo: registrationRepo,
		courseRepo:       courseRepo,
		userRepo:         userRepo,
		notifier:         notifier,
		logger:           logger,
		now:              time.Now,
	}
}

// ListForTutor returns registrations for the tutor's courses with applicant names
func (s *RegistrationService) ListForTutor(ctx context.Context, tutorID int64) ([]*model.RegistrationView, error) {
	views, err := s.registrationRepo.GetByTutorWithStudent(ctx, tutorID)
	if err != nil {
		return nil, fmt.Errorf("get tutor registrations: %w", err)
	}
	return nonNil(views), nil
}

// ListForStudent returns only the registrations where the student is the applicant
func (s *RegistrationService) ListForStudent(ctx context.Context, studentID int64) ([]*model.CourseRegistration, error) {
	regs, err := s.registrationRepo.GetByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("get student registrations: %w", err)
	}
	return nonNil(regs), nil
}

// Register creates a pending registration of the student for a course
func (s *RegistrationService) Register(ctx context.Context, studentID int64, req model.CreateRegistrationRequest) (*model.CourseRegistration, error) {
	course, err := s.courseRepo.GetByID(ctx, req.CourseID)
	if err != nil {
		return nil, fmt.Errorf("get course: %w", err)
	}

	if course == nil {
		return nil, ErrCourseNotFound
	}

	active, err := s.registrationRepo.HasActiveRegistration(ctx, studentID, course.ID)
	if err != nil {
		return nil, fmt.Errorf("check active registration: %w", err)
	}

	if active {
		return nil, ErrRegistrationExists
	}

	reg := &model.CourseRegistration{
		CourseID:  course.ID,
		StudentID: studentID,
		TutorID:   course.TutorID,
		Status:    model.RegistrationStatusPending,
		Message:   req.Message,
	}

	err = s.registrationRepo.Create(ctx, reg)
	if err != nil {
		// lost a race with a concurrent request from the same student
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrRegistrationExists
		}
		// course deleted after the lookup above
		if errors.Is(err, repository.ErrCourseMissing) {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("create registration: %w", err)
	}

	s.logger.Info("Registration created",
		zap.Int64("registration_id", reg.ID),
		zap.Int64("student_id", studentID),
		zap.Int64("course_id", course.ID),
		zap.Int64("tutor_id", reg.TutorID),
	)

	return reg, nil
}

// Decide records the tutor's verdict on a pending registration.
// Unknown id -> ErrRegistrationNotFound, other tutor's registration ->
// ErrNotRegistrationOwner, already decided -> ErrRegistrationDecided.
func (s *RegistrationService) Decide(ctx context.Context, tutorID, registrationID int64, decision model.RegistrationStatus, response string) error {
	if !decision.IsDecision() {
		return ErrInvalidDecision
	}

	updated, err := s.registrationRepo.Decide(ctx, registrationID, tutorID, decision, response)
	if err != nil {
		return fmt.Errorf("decide registration: %w", err)
	}

	if !updated {
		return s.explainDecideMiss(ctx, tutorID, registrationID)
	}

	s.logger.Info("Registration decided",
		zap.Int64("registration_id", registrationID),
		zap.Int64("tutor_id", tutorID),
		zap.String("decision", string(decision)),
	)

	s.notifyDecision(ctx, registrationID)

	return nil
}

func (s *RegistrationService) explainDecideMiss(ctx context.Context, tutorID, registrationID int64) error {
	reg, err := s.registrationRepo.GetByID(ctx, registrationID)
	if err != nil {
		return fmt.Errorf("get registration: %w", err)
	}

	if reg == nil {
		return ErrRegistrationNotFound
	}

	if reg.TutorID != tutorID {
		return ErrNotRegistrationOwner
	}

	return ErrRegistrationDecided
}

// notifyDecision tells the student about the verdict. Failures are only logged.
// The send outlives the request context and is bounded by notifyTimeout.
func (s *RegistrationService) notifyDecision(ctx context.Context, registrationID int64) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
	defer cancel()

	reg, err := s.registrationRepo.GetByID(ctx, registrationID)
	if err != nil || reg == nil {
		s.logger.Warn("Failed to load registration for notification",
			zap.Int64("registration_id", registrationID),
			zap.Error(err))
		return
	}

	student, err := s.userRepo.GetByID(ctx, reg.StudentID)
	if err != nil || student == nil {
		s.logger.Warn("Failed to load student for notification",
			zap.Int64("student_id", reg.StudentID),
			zap.Error(err))
		return
	}

	tutorName := "Your tutor"
	if tutor, err := s.userRepo.GetByID(ctx, reg.TutorID); err == nil && tutor != nil {
		tutorName = tutor.DisplayName()
	}

	courseName := fmt.Sprintf("course #%d", reg.CourseID)
	if course, err := s.courseRepo.GetByID(ctx, reg.CourseID); err == nil && course != nil {
		courseName = course.Name
	}

	if err := s.notifier.Notify(ctx, student, notify.DecisionMessage(reg, tutorName, courseName)); err != nil {
		s.logger.Error("Failed to notify student",
			zap.Int64("registration_id", registrationID),
			zap.Int64("student_id", student.ID),
			zap.Error(err))
	}
}

// SendPendingDigests notifies every tutor that has pending registrations.
// Returns how many tutors were notified.
func (s *RegistrationService) SendPendingDigests(ctx context.Context) (int, error) {
	counts, err := s.registrationRepo.CountPendingByTutor(ctx)
	if err != nil {
		return 0, fmt.Errorf("count pending registrations: %w", err)
	}

	sent := 0
	for tutorID, count := range counts {
		if count == 0 {
			continue
		}

		tutor, err := s.userRepo.GetByID(ctx, tutorID)
		if err != nil {
			s.logger.Error("Failed to load tutor for digest",
				zap.Int64("tutor_id", tutorID),
				zap.Error(err))
			continue
		}
		if tutor == nil {
			continue
		}

		text := notify.DigestMessage(count, s.now())
		if err := s.notifier.Notify(ctx, tutor, text); err != nil {
			s.logger.Error("Failed to send pending digest",
				zap.Int64("tutor_id", tutorID),
				zap.Error(err))
			continue
		}
		sent++
	}

	return sent, nil
}

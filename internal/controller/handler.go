package controller

import (
	"context"

	"github.com/Freeeeeet/tutoring_server/internal/model"
	"go.uber.org/zap"
)

type UserService interface {
	Register(ctx context.Context, req model.RegisterUserRequest) (*model.User, error)
	ResolveToken(ctx context.Context, token string) (*model.User, error)
}

type RegistrationService interface {
	ListForTutor(ctx context.Context, tutorID int64) ([]*model.RegistrationView, error)
	ListForStudent(ctx context.Context, studentID int64) ([]*model.CourseRegistration, error)
	Register(ctx context.Context, studentID int64, req model.CreateRegistrationRequest) (*model.CourseRegistration, error)
	Decide(ctx context.Context, tutorID, registrationID int64, decision model.RegistrationStatus, response string) error
}

type LessonService interface {
	CreateLesson(ctx context.Context, tutorID int64, req model.CreateLessonRequest) (*model.Lesson, error)
	ListTutorLessons(ctx context.Context, tutorID int64) ([]*model.Lesson, error)
}

type CourseService interface {
	CreateCourse(ctx context.Context, tutorID int64, req model.CourseRequest) (*model.Course, error)
	UpdateCourse(ctx context.Context, tutorID, courseID int64, req model.CourseRequest) (*model.Course, error)
	DeleteCourse(ctx context.Context, tutorID, courseID int64) error
	ListTutorCourses(ctx context.Context, tutorID int64) ([]*model.Course, error)
	ListAllCourses(ctx context.Context) ([]*model.Course, error)
}

type HealthChecker interface {
	Ping(ctx context.Context) error
}

// Handler holds the dependencies shared by all HTTP handlers
type Handler struct {
	users         UserService
	registrations RegistrationService
	lessons       LessonService
	courses       CourseService
	health        HealthChecker
	logger        *zap.Logger
}

func NewHandler(
	users UserService,
	registrations RegistrationService,
	lessons LessonService,
	courses CourseService,
	health HealthChecker,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		users:         users,
		registrations: registrations,
		lessons:       lessons,
		courses:       courses,
		health:        health,
		logger:        logger,
	}
}

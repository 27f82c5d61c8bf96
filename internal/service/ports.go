package service

import (
	"context"

	"github.com/Freeeeeet/tutoring_server/internal/model"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByAPIToken(ctx context.Context, token string) (*model.User, error)
}

type CourseRepository interface {
	Create(ctx context.Context, course *model.Course) error
	GetByID(ctx context.Context, id int64) (*model.Course, error)
	GetByTutorID(ctx context.Context, tutorID int64) ([]*model.Course, error)
	GetAll(ctx context.Context) ([]*model.Course, error)
	Update(ctx context.Context, course *model.Course) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type RegistrationRepository interface {
	Create(ctx context.Context, reg *model.CourseRegistration) error
	GetByID(ctx context.Context, id int64) (*model.CourseRegistration, error)
	GetByTutorWithStudent(ctx context.Context, tutorID int64) ([]*model.RegistrationView, error)
	GetByStudent(ctx context.Context, studentID int64) ([]*model.CourseRegistration, error)
	HasActiveRegistration(ctx context.Context, studentID, courseID int64) (bool, error)
	Decide(ctx context.Context, id, tutorID int64, status model.RegistrationStatus, response string) (bool, error)
	CountPendingByTutor(ctx context.Context) (map[int64]int, error)
}

type LessonRepository interface {
	Create(ctx context.Context, lesson *model.Lesson) error
	GetByTutorID(ctx context.Context, tutorID int64) ([]*model.Lesson, error)
}

// Notifier delivers a text message to a user. Implementations skip users
// they cannot reach and return nil for them.
type Notifier interface {
	Notify(ctx context.Context, user *model.User, text string) error
}

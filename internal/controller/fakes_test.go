package controller

import (
	"context"
	"errors"
	"time"

	"github.com/Freeeeeet/tutoring_server/internal/model"
)

var errStoreDown = errors.New("connection refused")

type fakeUsers struct {
	byToken     map[string]*model.User
	resolveErr  error
	registerErr error
	registered  []model.RegisterUserRequest
}

func (f *fakeUsers) Register(ctx context.Context, req model.RegisterUserRequest) (*model.User, error) {
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	f.registered = append(f.registered, req)
	return &model.User{
		ID:        int64(len(f.registered)),
		Username:  req.Username,
		FirstName: req.FirstName,
		Role:      req.Role,
		APIToken:  "4a6f0b3e-8a43-4c1e-9a57-0c3c9f0d6a11",
	}, nil
}

func (f *fakeUsers) ResolveToken(ctx context.Context, token string) (*model.User, error) {
	if f.resolveErr != nil {
		return nil, f.resolveErr
	}
	return f.byToken[token], nil
}

type decideCall struct {
	tutorID, registrationID int64
	decision                model.RegistrationStatus
	response                string
}

type fakeRegistrations struct {
	tutorViews  []*model.RegistrationView
	studentRegs []*model.CourseRegistration
	decideErr   error
	listErr     error
	calls       int
	decideCalls []decideCall
	createdFor  []int64
}

func (f *fakeRegistrations) ListForTutor(ctx context.Context, tutorID int64) ([]*model.RegistrationView, error) {
	f.calls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*model.RegistrationView
	for _, v := range f.tutorViews {
		if v.TutorID == tutorID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *fakeRegistrations) ListForStudent(ctx context.Context, studentID int64) ([]*model.CourseRegistration, error) {
	f.calls++
	var out []*model.CourseRegistration
	for _, r := range f.studentRegs {
		if r.StudentID == studentID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRegistrations) Register(ctx context.Context, studentID int64, req model.CreateRegistrationRequest) (*model.CourseRegistration, error) {
	f.calls++
	f.createdFor = append(f.createdFor, studentID)
	return &model.CourseRegistration{
		ID:        1,
		CourseID:  req.CourseID,
		StudentID: studentID,
		Status:    model.RegistrationStatusPending,
		Message:   req.Message,
	}, nil
}

func (f *fakeRegistrations) Decide(ctx context.Context, tutorID, registrationID int64, decision model.RegistrationStatus, response string) error {
	f.calls++
	f.decideCalls = append(f.decideCalls, decideCall{tutorID, registrationID, decision, response})
	return f.decideErr
}

type fakeLessons struct {
	created []model.CreateLessonRequest
}

func (f *fakeLessons) CreateLesson(ctx context.Context, tutorID int64, req model.CreateLessonRequest) (*model.Lesson, error) {
	f.created = append(f.created, req)
	return &model.Lesson{
		ID:        7,
		TutorID:   tutorID,
		CourseID:  req.CourseID,
		Title:     req.Title,
		StartTime: req.StartTime,
		EndTime:   req.StartTime.Add(time.Duration(req.DurationMinutes) * time.Minute),
	}, nil
}

func (f *fakeLessons) ListTutorLessons(ctx context.Context, tutorID int64) ([]*model.Lesson, error) {
	return []*model.Lesson{}, nil
}

type fakeCourses struct {
	courses []*model.Course
}

func (f *fakeCourses) CreateCourse(ctx context.Context, tutorID int64, req model.CourseRequest) (*model.Course, error) {
	course := &model.Course{ID: int64(len(f.courses) + 1), TutorID: tutorID, Name: req.Name, Subject: req.Subject}
	f.courses = append(f.courses, course)
	return course, nil
}

func (f *fakeCourses) UpdateCourse(ctx context.Context, tutorID, courseID int64, req model.CourseRequest) (*model.Course, error) {
	return &model.Course{ID: courseID, TutorID: tutorID, Name: req.Name, Subject: req.Subject}, nil
}

func (f *fakeCourses) DeleteCourse(ctx context.Context, tutorID, courseID int64) error {
	return nil
}

func (f *fakeCourses) ListTutorCourses(ctx context.Context, tutorID int64) ([]*model.Course, error) {
	return f.courses, nil
}

func (f *fakeCourses) ListAllCourses(ctx context.Context) ([]*model.Course, error) {
	return f.courses, nil
}

type fakeHealth struct {
	err error
}

func (f *fakeHealth) Ping(ctx context.Context) error {
	return f.err
}

package service

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/tutoring_server/internal/model"
	"go.uber.org/zap"
)

type CourseService struct {
	courseRepo CourseRepository
	logger     *zap.Logger
}

func NewCourseService(courseRepo CourseRepository, logger *zap.Logger) *CourseService {
	return &CourseService{
		courseRepo: courseRepo,
		logger:     logger,
	}
}

func (s *CourseService) CreateCourse(ctx context.Context, tutorID int64, req model.CourseRequest) (*model.Course, error) {
	course := &model.Course{
		TutorID:     tutorID,
		Name:        req.Name,
		Description: req.Description,
		Subject:     req.Subject,
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, fmt.Errorf("create course: %w", err)
	}

	s.logger.Info("Course created",
		zap.Int64("course_id", course.ID),
		zap.Int64("tutor_id", tutorID),
		zap.String("name", course.Name),
	)

	return course, nil
}

func (s *CourseService) UpdateCourse(ctx context.Context, tutorID, courseID int64, req model.CourseRequest) (*model.Course, error) {
	course, err := ownedCourse(ctx, s.courseRepo, tutorID, courseID)
	if err != nil {
		return nil, err
	}

	course.Name = req.Name
	course.Description = req.Description
	course.Subject = req.Subject

	updated, err := s.courseRepo.Update(ctx, course)
	if err != nil {
		return nil, fmt.Errorf("update course: %w", err)
	}
	if !updated {
		return nil, ErrCourseNotFound
	}

	s.logger.Info("Course updated",
		zap.Int64("course_id", courseID),
		zap.Int64("tutor_id", tutorID),
	)

	return course, nil
}

func (s *CourseService) DeleteCourse(ctx context.Context, tutorID, courseID int64) error {
	if _, err := ownedCourse(ctx, s.courseRepo, tutorID, courseID); err != nil {
		return err
	}

	deleted, err := s.courseRepo.Delete(ctx, courseID)
	if err != nil {
		return fmt.Errorf("delete course: %w", err)
	}
	if !deleted {
		return ErrCourseNotFound
	}

	s.logger.Info("Course deleted",
		zap.Int64("course_id", courseID),
		zap.Int64("tutor_id", tutorID),
	)

	return nil
}

func (s *CourseService) ListTutorCourses(ctx context.Context, tutorID int64) ([]*model.Course, error) {
	courses, err := s.courseRepo.GetByTutorID(ctx, tutorID)
	if err != nil {
		return nil, fmt.Errorf("get tutor courses: %w", err)
	}
	return nonNil(courses), nil
}

func (s *CourseService) ListAllCourses(ctx context.Context) ([]*model.Course, error) {
	courses, err := s.courseRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get all courses: %w", err)
	}
	return nonNil(courses), nil
}

func ownedCourse(ctx context.Context, repo CourseRepository, tutorID, courseID int64) (*model.Course, error) {
	course, err := repo.GetByID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("get course: %w", err)
	}

	if course == nil {
		return nil, ErrCourseNotFound
	}

	if course.TutorID != tutorID {
		return nil, ErrNotCourseOwner
	}

	return course, nil
}

// nonNil keeps empty lists serialized as [] rather than null
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

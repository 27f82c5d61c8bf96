package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Freeeeeet/tutoring_server/internal/model"
	"go.uber.org/zap"
)

type LessonService struct {
	lessonRepo LessonRepository
	courseRepo CourseRepository
	logger     *zap.Logger
	now        func() time.Time
}

func NewLessonService(lessonRepo LessonRepository, courseRepo CourseRepository, logger *zap.Logger) *LessonService {
	return &LessonService{
		lessonRepo: lessonRepo,
		courseRepo: courseRepo,
		logger:     logger,
		now:        time.Now,
	}
}

// CreateLesson creates a lesson owned by the tutor in one of the tutor's courses
func (s *LessonService) CreateLesson(ctx context.Context, tutorID int64, req model.CreateLessonRequest) (*model.Lesson, error) {
	course, err := ownedCourse(ctx, s.courseRepo, tutorID, req.CourseID)
	if err != nil {
		return nil, err
	}

	if req.StartTime.Before(s.now()) {
		return nil, ErrLessonInPast
	}

	lesson := &model.Lesson{
		TutorID:     tutorID,
		CourseID:    course.ID,
		Title:       req.Title,
		Description: req.Description,
		StartTime:   req.StartTime,
		EndTime:     req.StartTime.Add(time.Duration(req.DurationMinutes) * time.Minute),
	}

	if err := s.lessonRepo.Create(ctx, lesson); err != nil {
		return nil, fmt.Errorf("create lesson: %w", err)
	}

	s.logger.Info("Lesson created",
		zap.Int64("lesson_id", lesson.ID),
		zap.Int64("tutor_id", tutorID),
		zap.Int64("course_id", course.ID),
		zap.Time("start_time", lesson.StartTime),
	)

	return lesson, nil
}

func (s *LessonService) ListTutorLessons(ctx context.Context, tutorID int64) ([]*model.Lesson, error) {
	lessons, err := s.lessonRepo.GetByTutorID(ctx, tutorID)
	if err != nil {
		return nil, fmt.Errorf("get tutor lessons: %w", err)
	}
	return nonNil(lessons), nil
}

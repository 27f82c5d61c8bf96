package model

import "time"

type Lesson struct {
	ID          int64     `json:"id"`
	TutorID     int64     `json:"tutor_id"`
	CourseID    int64     `json:"course_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateLessonRequest struct {
	CourseID        int64     `json:"course_id" validate:"required,gt=0"`
	Title           string    `json:"title" validate:"required,max=200"`
	Description     string    `json:"description" validate:"max=2000"`
	StartTime       time.Time `json:"start_time" validate:"required"`
	DurationMinutes int       `json:"duration_minutes" validate:"required,min=1,max=600"`
}

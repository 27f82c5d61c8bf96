package model

import "time"

type Course struct {
	ID          int64     `json:"id"`
	TutorID     int64     `json:"tutor_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Subject     string    `json:"subject"`
	CreatedAt   time.Time `json:"created_at"`
}

// CourseRequest is the body of POST /course and PUT /course/{courseId}.
type CourseRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
	Subject     string `json:"subject" validate:"required,max=100"`
}

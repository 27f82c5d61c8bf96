package model

import "time"

type RegistrationStatus string

const (
	RegistrationStatusPending  RegistrationStatus = "pending"
	RegistrationStatusApproved RegistrationStatus = "approved"
	RegistrationStatusRejected RegistrationStatus = "rejected"
)

// IsDecision reports whether the status is a tutor verdict (approved or rejected).
func (s RegistrationStatus) IsDecision() bool {
	return s == RegistrationStatusApproved || s == RegistrationStatusRejected
}

// CourseRegistration is a student's request to join a tutor's course.
// TutorID is copied from the course when the registration is created.
type CourseRegistration struct {
	ID            int64              `json:"id"`
	CourseID      int64              `json:"course_id"`
	StudentID     int64              `json:"student_id"`
	TutorID       int64              `json:"tutor_id"`
	Status        RegistrationStatus `json:"status"`
	Message       string             `json:"message"`
	TutorResponse string             `json:"tutor_response"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     *time.Time         `json:"updated_at"`
}

func (r *CourseRegistration) IsPending() bool {
	return r.Status == RegistrationStatusPending
}

func (r *CourseRegistration) IsApproved() bool {
	return r.Status == RegistrationStatusApproved
}

func (r *CourseRegistration) IsRejected() bool {
	return r.Status == RegistrationStatusRejected
}

// RegistrationView is a registration enriched for the tutor's list.
type RegistrationView struct {
	CourseRegistration
	StudentName string `json:"student_name"`
	CourseName  string `json:"course_name"`
}

// CreateRegistrationRequest is the body of POST /course/registrations.
type CreateRegistrationRequest struct {
	CourseID int64  `json:"course_id" validate:"required,gt=0"`
	Message  string `json:"message" validate:"max=1000"`
}

// RegistrationApprovalRequest is the body of PUT /course/registrations/{registrationId}.
type RegistrationApprovalRequest struct {
	Decision RegistrationStatus `json:"decision" validate:"required,oneof=approved rejected"`
	Response string             `json:"response" validate:"max=1000"`
}

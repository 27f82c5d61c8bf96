package service

import "github.com/Freeeeeet/tutoring_server/internal/apperror"

var (
	ErrInvalidRole    = apperror.New(apperror.CodeBadRequest, "Role must be tutor or student.")
	ErrTelegramLinked = apperror.New(apperror.CodeConflict, "This Telegram account is already linked to another user.")

	ErrCourseNotFound = apperror.New(apperror.CodeNotFound, "Course not found.")
	ErrNotCourseOwner = apperror.New(apperror.CodeForbidden, "Course belongs to another tutor.")

	ErrRegistrationNotFound = apperror.New(apperror.CodeNotFound, "Registration not found.")
	ErrNotRegistrationOwner = apperror.New(apperror.CodeForbidden, "Registration belongs to another tutor.")
	ErrRegistrationDecided  = apperror.New(apperror.CodeConflict, "Registration has already been decided.")
	ErrRegistrationExists   = apperror.New(apperror.CodeConflict, "An active registration for this course already exists.")
	ErrInvalidDecision      = apperror.New(apperror.CodeBadRequest, "Decision must be approved or rejected.")

	ErrLessonInPast = apperror.New(apperror.CodeBadRequest, "Lesson cannot start in the past.")
)

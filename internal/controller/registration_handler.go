package controller

import (
	"net/http"

	"github.com/Freeeeeet/tutoring_server/internal/model"
	"github.com/labstack/echo/v4"
)

// ListTutorRegistrations handles GET /course/registrations
func (h *Handler) ListTutorRegistrations(c echo.Context) error {
	tutor := CurrentUser(c)

	views, err := h.registrations.ListForTutor(c.Request().Context(), tutor.ID)
	if err != nil {
		return err
	}

	return success(c, http.StatusOK, views, "Registrations retrieved successfully.")
}

// UpdateRegistration handles PUT /course/registrations/:registrationId
func (h *Handler) UpdateRegistration(c echo.Context) error {
	tutor := CurrentUser(c)

	registrationID, err := pathID(c, "registrationId")
	if err != nil {
		return err
	}

	var req model.RegistrationApprovalRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.registrations.Decide(c.Request().Context(), tutor.ID, registrationID, req.Decision, req.Response); err != nil {
		return err
	}

	return success(c, http.StatusOK, nil, "Registration request updated successfully.")
}

// ListStudentRegistrations handles GET /course/registrations/student
func (h *Handler) ListStudentRegistrations(c echo.Context) error {
	student := CurrentUser(c)

	regs, err := h.registrations.ListForStudent(c.Request().Context(), student.ID)
	if err != nil {
		return err
	}

	return success(c, http.StatusOK, regs, "Student registrations retrieved successfully.")
}

// CreateRegistration handles POST /course/registrations
func (h *Handler) CreateRegistration(c echo.Context) error {
	student := CurrentUser(c)

	var req model.CreateRegistrationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	reg, err := h.registrations.Register(c.Request().Context(), student.ID, req)
	if err != nil {
		return err
	}

	return success(c, http.StatusCreated, reg, "Registration request submitted successfully.")
}

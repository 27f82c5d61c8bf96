package controller

import (
	"net/http"

	"github.com/Freeeeeet/tutoring_server/internal/model"
	"github.com/labstack/echo/v4"
)

// registeredUser exposes the API token once, right after registration
type registeredUser struct {
	*model.User
	Token string `json:"token"`
}

// RegisterUser handles POST /users
func (h *Handler) RegisterUser(c echo.Context) error {
	var req model.RegisterUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.users.Register(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return success(c, http.StatusCreated, registeredUser{User: user, Token: user.APIToken}, "User registered successfully.")
}

// Me handles GET /users/me
func (h *Handler) Me(c echo.Context) error {
	return success(c, http.StatusOK, CurrentUser(c), "User retrieved successfully.")
}

package controller

import (
	"net/http"

	"github.com/Freeeeeet/tutoring_server/internal/model"
	"github.com/labstack/echo/v4"
)

// CreateLesson handles POST /lessons
func (h *Handler) CreateLesson(c echo.Context) error {
	tutor := CurrentUser(c)

	var req model.CreateLessonRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	lesson, err := h.lessons.CreateLesson(c.Request().Context(), tutor.ID, req)
	if err != nil {
		return err
	}

	return success(c, http.StatusCreated, lesson, "Lesson created successfully.")
}

func (h *Handler) ListLessons(c echo.Context) error {
	tutor := CurrentUser(c)

	lessons, err := h.lessons.ListTutorLessons(c.Request().Context(), tutor.ID)
	if err != nil {
		return err
	}

	return success(c, http.StatusOK, lessons, "Lessons retrieved successfully.")
}

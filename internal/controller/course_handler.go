package controller

import (
	"net/http"

	"github.com/Freeeeeet/tutoring_server/internal/model"
	"github.com/labstack/echo/v4"
)

func (h *Handler) ListTutorCourses(c echo.Context) error {
	tutor := CurrentUser(c)

	courses, err := h.courses.ListTutorCourses(c.Request().Context(), tutor.ID)
	if err != nil {
		return err
	}

	return success(c, http.StatusOK, courses, "Courses retrieved successfully.")
}

func (h *Handler) ListAllCourses(c echo.Context) error {
	courses, err := h.courses.ListAllCourses(c.Request().Context())
	if err != nil {
		return err
	}

	return success(c, http.StatusOK, courses, "Courses retrieved successfully.")
}

func (h *Handler) CreateCourse(c echo.Context) error {
	tutor := CurrentUser(c)

	var req model.CourseRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	course, err := h.courses.CreateCourse(c.Request().Context(), tutor.ID, req)
	if err != nil {
		return err
	}

	return success(c, http.StatusCreated, course, "Course created successfully.")
}

func (h *Handler) UpdateCourse(c echo.Context) error {
	tutor := CurrentUser(c)

	courseID, err := pathID(c, "courseId")
	if err != nil {
		return err
	}

	var req model.CourseRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	course, err := h.courses.UpdateCourse(c.Request().Context(), tutor.ID, courseID, req)
	if err != nil {
		return err
	}

	return success(c, http.StatusOK, course, "Course updated successfully.")
}

func (h *Handler) DeleteCourse(c echo.Context) error {
	tutor := CurrentUser(c)

	courseID, err := pathID(c, "courseId")
	if err != nil {
		return err
	}

	if err := h.courses.DeleteCourse(c.Request().Context(), tutor.ID, courseID); err != nil {
		return err
	}

	return success(c, http.StatusOK, nil, "Course deleted successfully.")
}

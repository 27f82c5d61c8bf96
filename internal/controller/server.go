package controller

import (
	"github.com/Freeeeeet/tutoring_server/internal/model"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// NewEcho builds the HTTP server with the error handler, validator, and all routes
func NewEcho(h *Handler, logger *zap.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = newRequestValidator()
	e.HTTPErrorHandler = h.HandleError

	e.Use(middleware.Recover())
	e.Use(requestLogger(logger))

	RegisterRoutes(e, h)

	return e
}

func RegisterRoutes(e *echo.Echo, h *Handler) {
	auth := h.Authenticate()
	tutorOnly := func(message string) []echo.MiddlewareFunc {
		return []echo.MiddlewareFunc{auth, RequireRole(model.RoleTutor, message)}
	}
	studentOnly := func(message string) []echo.MiddlewareFunc {
		return []echo.MiddlewareFunc{auth, RequireRole(model.RoleStudent, message)}
	}

	e.GET("/health", h.Health)

	e.POST("/users", h.RegisterUser)
	e.GET("/users/me", h.Me, auth)

	// registrations
	e.GET("/course/registrations", h.ListTutorRegistrations,
		tutorOnly("Only tutors can view registration requests.")...)
	e.PUT("/course/registrations/:registrationId", h.UpdateRegistration,
		tutorOnly("Only tutors can update registration requests.")...)
	e.GET("/course/registrations/student", h.ListStudentRegistrations,
		studentOnly("Only students can view their registrations.")...)
	e.POST("/course/registrations", h.CreateRegistration,
		studentOnly("Only students can register for courses.")...)

	// courses
	e.GET("/course/all", h.ListAllCourses, auth)
	e.GET("/course", h.ListTutorCourses, tutorOnly("Only tutors can manage courses.")...)
	e.POST("/course", h.CreateCourse, tutorOnly("Only tutors can manage courses.")...)
	e.PUT("/course/:courseId", h.UpdateCourse, tutorOnly("Only tutors can manage courses.")...)
	e.DELETE("/course/:courseId", h.DeleteCourse, tutorOnly("Only tutors can manage courses.")...)

	// lessons
	e.POST("/lessons", h.CreateLesson, tutorOnly("Only tutors can create lessons.")...)
	e.GET("/lessons", h.ListLessons, tutorOnly("Only tutors can view lessons.")...)
}

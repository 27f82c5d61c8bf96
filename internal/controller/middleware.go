package controller

import (
	"github.com/Freeeeeet/tutoring_server/internal/apperror"
	"github.com/Freeeeeet/tutoring_server/internal/model"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

const userContextKey = "user"

var errUnauthenticated = apperror.New(apperror.CodeUnauthorized, "User is not authenticated.")

// Authenticate resolves the bearer token into the caller and stores it in the context.
// A missing or unknown token fails with UNAUTHORIZED before any handler runs.
func (h *Handler) Authenticate() echo.MiddlewareFunc {
	return middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
		KeyLookup:  "header:" + echo.HeaderAuthorization,
		AuthScheme: "Bearer",
		Validator: func(token string, c echo.Context) (bool, error) {
			user, err := h.users.ResolveToken(c.Request().Context(), token)
			if err != nil {
				return false, apperror.Wrap(apperror.CodeInternal, "Failed to resolve caller.", err)
			}
			if user == nil {
				return false, nil
			}
			c.Set(userContextKey, user)
			return true, nil
		},
		ErrorHandler: func(err error, c echo.Context) error {
			if appErr, ok := apperror.As(err); ok {
				return appErr
			}
			return errUnauthenticated
		},
	})
}

// RequireRole lets the request through only when the caller has role.
// message is returned with FORBIDDEN otherwise.
func RequireRole(role model.Role, message string) echo.MiddlewareFunc {
	forbidden := apperror.New(apperror.CodeForbidden, message)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := CurrentUser(c)
			if user == nil {
				return errUnauthenticated
			}
			if user.Role != role {
				return forbidden
			}
			return next(c)
		}
	}
}

// CurrentUser returns the authenticated caller or nil
func CurrentUser(c echo.Context) *model.User {
	user, _ := c.Get(userContextKey).(*model.User)
	return user
}

func requestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			}
			if user := CurrentUser(c); user != nil {
				fields = append(fields, zap.Int64("user_id", user.ID))
			}
			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
			}
			logger.Info("HTTP request", fields...)
			return nil
		},
	})
}

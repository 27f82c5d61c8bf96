package controller

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/Freeeeeet/tutoring_server/internal/apperror"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// requestValidator plugs go-playground/validator into echo's c.Validate
type requestValidator struct {
	validate *validator.Validate
}

func newRequestValidator() *requestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report json field names instead of Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &requestValidator{validate: v}
}

func (rv *requestValidator) Validate(i interface{}) error {
	err := rv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperror.Wrap(apperror.CodeBadRequest, "Invalid request body.", err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("Field '%s' failed on '%s=%s'.", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			msgs = append(msgs, fmt.Sprintf("Field '%s' failed on '%s'.", fe.Field(), fe.Tag()))
		}
	}

	return apperror.Wrap(apperror.CodeBadRequest, strings.Join(msgs, " "), err)
}

// bindAndValidate decodes the request body into req and checks its tags
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) && httpErr.Code != http.StatusBadRequest {
			return httpErr
		}
		return apperror.Wrap(apperror.CodeBadRequest, "Invalid request body.", err)
	}
	return c.Validate(req)
}

// pathID reads a positive int64 path parameter
func pathID(c echo.Context, name string) (int64, error) {
	var id int64
	if err := echo.PathParamsBinder(c).MustInt64(name, &id).BindError(); err != nil {
		return 0, apperror.Wrap(apperror.CodeBadRequest, fmt.Sprintf("Invalid %s.", name), err)
	}
	if id <= 0 {
		return 0, apperror.New(apperror.CodeBadRequest, fmt.Sprintf("Invalid %s.", name))
	}
	return id, nil
}

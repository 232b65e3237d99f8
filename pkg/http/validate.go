package http

import (
	"errors"
	"fmt"
	"strings"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ReadAndValidateRequest binds the request body, applies struct defaults and
// validates tags. Returns a human-readable description of the first problem,
// or "" when the request is valid.
func ReadAndValidateRequest(c echo.Context, req interface{}) string {
	if err := c.Bind(req); err != nil {
		return bindErrorMessage(err)
	}

	if err := defaults.Set(req); err != nil {
		return err.Error()
	}

	if err := validate.StructCtx(c.Request().Context(), req); err != nil {
		return validationErrorMessage(err)
	}

	return ""
}

func bindErrorMessage(err error) string {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return fmt.Sprintf("%v", he.Message)
	}
	return err.Error()
}

func validationErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}
	fe := verrs[0]
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must have at least %s elements", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must have at most %s elements", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation: %s", field, fe.Tag())
	}
}

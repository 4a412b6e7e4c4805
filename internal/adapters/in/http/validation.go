package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// bodyValidator plugs go-playground/validator into echo's Validate hook. It checks the
// validate tags api/openapi.yaml puts on the generated models through
// x-oapi-codegen-extra-tags, such as the nil agent_id the uuid format accepts.
type bodyValidator struct {
	validate *validator.Validate
}

func newBodyValidator() *bodyValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &bodyValidator{validate: v}
}

func (v *bodyValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return badRequest(err.Error())
	}

	messages := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		messages = append(messages, describeFieldError(fe))
	}
	return badRequest(strings.Join(messages, "; "))
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("field '%s' is required", fe.Field())
	case "gt":
		return fmt.Sprintf("field '%s' must be greater than %s", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("field '%s' must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("field '%s' must not exceed %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("field '%s' failed on the '%s' tag", fe.Field(), fe.Tag())
	}
}

// bind decodes the JSON body into dst and validates it.
func bind(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return badRequest("invalid request body")
	}
	return c.Validate(dst)
}

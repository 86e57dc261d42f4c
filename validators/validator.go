package validators

import (
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/nanotweet/backend/internal/models"
)

// CustomValidator wraps go-playground/validator for echo's e.Validator hook
type CustomValidator struct {
	validate *validator.Validate
}

// NewValidator creates a validator with the password policy checks registered
func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterValidation("password", validatePasswordStrength)
	v.RegisterStructValidation(validateSignupRequest, models.SignupRequest{})
	return &CustomValidator{validate: v}
}

// Validate implements echo.Validator. Validation failures become a 400
// with a field -> message map so forms can re-render per-field errors.
func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, echo.Map{
			"error":  "validation failed",
			"fields": FieldErrors(err),
		})
	}
	return nil
}

// FieldErrors flattens validator.ValidationErrors into field -> message
func FieldErrors(err error) map[string]string {
	fields := map[string]string{}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		fields[""] = err.Error()
		return fields
	}
	for _, fe := range verrs {
		fields[fe.Field()] = messageFor(fe)
	}
	return fields
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "eqfield":
		return "passwords do not match"
	case "password":
		return "password is too weak"
	case "password_similar":
		return "password is too similar to the username"
	default:
		return fmt.Sprintf("failed on %s", fe.Tag())
	}
}

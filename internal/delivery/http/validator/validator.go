// Package validator adapts go-playground/validator to Echo's Validator
// interface, translating tag failures into field-level validation errors.
package validator

import (
	"strings"

	domainerrors "testament/internal/domain/errors"

	validatorLib "github.com/go-playground/validator/v10"
)

// customValidator wraps a single validator instance for reuse across requests.
type customValidator struct {
	validate *validatorLib.Validate
}

// New creates the Echo validator backed by go-playground/validator.
func New() *customValidator {
	validate := validatorLib.New(validatorLib.WithRequiredStructEnabled())

	return &customValidator{validate: validate}
}

// Validate checks the struct's validate tags and reports every failing field.
func (cv *customValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validatorLib.ValidationErrors)
	if !ok {
		return err
	}

	fields := make([]domainerrors.FieldError, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fields = append(fields, domainerrors.FieldError{
			Field:   strings.ToLower(fieldErr.Field()),
			Message: describe(fieldErr),
		})
	}

	return domainerrors.NewValidationError(fields...)
}

// describe turns a tag failure into a human-readable message.
func describe(fieldErr validatorLib.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "max":
		return "must be at most " + fieldErr.Param() + " characters"
	case "min":
		return "must be at least " + fieldErr.Param() + " characters"
	case "len":
		return "must be exactly " + fieldErr.Param() + " characters"
	case "numeric":
		return "must contain only digits"
	case "oneof":
		return "must be one of: " + fieldErr.Param()
	case "gt":
		return "must be greater than " + fieldErr.Param()
	case "gte":
		return "must be at least " + fieldErr.Param()
	case "lte":
		return "must be at most " + fieldErr.Param()
	default:
		return "is invalid"
	}
}

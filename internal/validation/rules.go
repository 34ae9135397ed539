// Package validation provides custom validation rules for the application.
package validation

import (
	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/primetime/internal/errors"
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// Present validates that an optional request field was supplied. Unlike
// validation.Required it accepts zero values such as 0 and "".
func Present(field string) validation.Rule {
	return validation.NotNil.Error(field + " is required")
}

// MaxBytes validates that a string is at most max bytes long.
func MaxBytes(max int) validation.Rule {
	return validation.By(func(value any) error {
		s, ok := value.(*string)
		if ok {
			if s == nil {
				return nil
			}
			value = *s
		}
		str, ok := value.(string)
		if !ok {
			return validation.NewError("validation_max_bytes_type", "must be a string")
		}
		if len(str) > max {
			return validation.NewError("validation_max_bytes", "is too large")
		}
		return nil
	})
}

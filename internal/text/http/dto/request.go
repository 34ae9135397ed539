// Package dto provides data transfer objects for the text HTTP handlers.
package dto

import (
	validation "github.com/jellydator/validation"

	"github.com/allisson/primetime/internal/text/domain"
	appValidation "github.com/allisson/primetime/internal/validation"
)

// TokenizeRequest carries the text and delimiter characters of the tokenize endpoint.
// Both fields must be present but either may be empty.
type TokenizeRequest struct {
	Text       *string `json:"text"`
	Delimiters *string `json:"delimiters"`
}

// Validate checks that both fields were supplied and that text fits within MaxTextSize.
func (r *TokenizeRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Text,
			appValidation.Present("text"),
			appValidation.MaxBytes(domain.MaxTextSize),
		),
		validation.Field(&r.Delimiters, appValidation.Present("delimiters")),
	)
	return appValidation.WrapValidationError(err)
}

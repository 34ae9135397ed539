// Package dto provides data transfer objects for the number HTTP handlers.
package dto

import (
	validation "github.com/jellydator/validation"

	appValidation "github.com/allisson/primetime/internal/validation"
)

// NumberRequest carries the integer argument of the factors and is-prime endpoints.
// Negative values pass validation and are rejected by the use case as domain errors.
type NumberRequest struct {
	N *int64 `json:"n"`
}

// Validate checks that n was supplied.
func (r *NumberRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.N, appValidation.Present("n")),
	)
	return appValidation.WrapValidationError(err)
}

// PrimesRequest carries the count argument of the primes endpoint. Counts outside the
// recognized range are valid requests that produce an absent result.
type PrimesRequest struct {
	Count *int `json:"count"`
}

// Validate checks that count was supplied.
func (r *PrimesRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Count, appValidation.Present("count")),
	)
	return appValidation.WrapValidationError(err)
}

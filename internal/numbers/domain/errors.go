package domain

import (
	"github.com/allisson/primetime/internal/errors"
)

var (
	// ErrDomain indicates the argument lies outside the domain of a number operation.
	ErrDomain = errors.Wrap(errors.ErrInvalidInput, "domain error")

	// ErrNegativeInput indicates a negative integer was passed to divisor enumeration.
	ErrNegativeInput = errors.Wrap(ErrDomain, "input must be non-negative")

	// ErrNegativePrime indicates a negative integer was passed to the primality check.
	ErrNegativePrime = errors.Wrap(ErrDomain, "negative numbers cannot be prime")
)

package domain

import (
	"github.com/allisson/primetime/internal/errors"
)

// ErrTextTooLarge indicates the text exceeds MaxTextSize.
var ErrTextTooLarge = errors.Wrap(errors.ErrInvalidInput, "text exceeds maximum size of 64KB")

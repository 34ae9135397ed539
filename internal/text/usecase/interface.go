// Package usecase orchestrates text tokenization for the transport layers.
package usecase

import "context"

// TokenizerUseCase defines the text tokenization operation exposed to callers.
type TokenizerUseCase interface {
	// Tokenize splits text at every maximal run of characters drawn from delimiters.
	// Returns an error wrapping ErrInvalidInput when text is larger than MaxTextSize.
	Tokenize(ctx context.Context, text, delimiters string) ([]string, error)
}

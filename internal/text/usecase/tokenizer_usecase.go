package usecase

import (
	"context"

	"github.com/allisson/primetime/internal/text/domain"
	"github.com/allisson/primetime/internal/text/service"
)

type tokenizerUseCase struct{}

// NewTokenizerUseCase creates a TokenizerUseCase.
func NewTokenizerUseCase() TokenizerUseCase {
	return &tokenizerUseCase{}
}

func (t *tokenizerUseCase) Tokenize(ctx context.Context, text, delimiters string) ([]string, error) {
	if len(text) > domain.MaxTextSize {
		return nil, domain.ErrTextTooLarge
	}
	return service.Tokenize(text, delimiters), nil
}

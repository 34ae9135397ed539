package usecase

import (
	"context"
	"time"

	"github.com/allisson/primetime/internal/metrics"
)

// tokenizerUseCaseWithMetrics decorates TokenizerUseCase with metrics instrumentation.
type tokenizerUseCaseWithMetrics struct {
	next    TokenizerUseCase
	metrics metrics.BusinessMetrics
}

// NewTokenizerUseCaseWithMetrics wraps a TokenizerUseCase with metrics recording.
func NewTokenizerUseCaseWithMetrics(useCase TokenizerUseCase, m metrics.BusinessMetrics) TokenizerUseCase {
	return &tokenizerUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Tokenize records metrics for tokenization operations.
func (t *tokenizerUseCaseWithMetrics) Tokenize(ctx context.Context, text, delimiters string) ([]string, error) {
	start := time.Now()
	tokens, err := t.next.Tokenize(ctx, text, delimiters)

	status := metrics.StatusSuccess
	if err != nil {
		status = metrics.StatusError
	}

	t.metrics.RecordOperation(ctx, "text", "tokenize", status)
	t.metrics.RecordDuration(ctx, "text", "tokenize", time.Since(start), status)

	return tokens, err
}

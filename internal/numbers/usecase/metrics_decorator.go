package usecase

import (
	"context"
	"time"

	"github.com/allisson/primetime/internal/metrics"
)

const metricsDomain = "numbers"

// numberUseCaseWithMetrics decorates NumberUseCase with metrics instrumentation.
type numberUseCaseWithMetrics struct {
	next    NumberUseCase
	metrics metrics.BusinessMetrics
}

// NewNumberUseCaseWithMetrics wraps a NumberUseCase with metrics recording.
func NewNumberUseCaseWithMetrics(useCase NumberUseCase, m metrics.BusinessMetrics) NumberUseCase {
	return &numberUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// ComputeFactors records metrics for divisor enumeration.
func (n *numberUseCaseWithMetrics) ComputeFactors(ctx context.Context, value int64) ([]int64, error) {
	start := time.Now()
	factors, err := n.next.ComputeFactors(ctx, value)
	n.record(ctx, "compute_factors", start, err)
	return factors, err
}

// IsPrime records metrics for primality checks.
func (n *numberUseCaseWithMetrics) IsPrime(ctx context.Context, value int64) (bool, error) {
	start := time.Now()
	isPrime, err := n.next.IsPrime(ctx, value)
	n.record(ctx, "is_prime", start, err)
	return isPrime, err
}

// ComputePrimes records metrics for prime sequence generation.
func (n *numberUseCaseWithMetrics) ComputePrimes(ctx context.Context, count int) ([]int64, error) {
	start := time.Now()
	primes, err := n.next.ComputePrimes(ctx, count)
	n.record(ctx, "compute_primes", start, err)
	return primes, err
}

func (n *numberUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := metrics.StatusSuccess
	if err != nil {
		status = metrics.StatusError
	}

	n.metrics.RecordOperation(ctx, metricsDomain, operation, status)
	n.metrics.RecordDuration(ctx, metricsDomain, operation, time.Since(start), status)
}

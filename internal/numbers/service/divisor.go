package service

import (
	"context"

	"github.com/allisson/primetime/internal/numbers/domain"
)

// cancelCheckInterval is how many trial divisors are tested between context checks.
const cancelCheckInterval = 1 << 16

// ComputeFactors returns every positive divisor of n in ascending order using trial
// division over [2, n/2]. 1 and n are always present; for n = 1 they collapse into a
// single element.
//
// Returns nil with a nil error for n = 0, which has no divisor set, and
// domain.ErrNegativeInput for n < 0.
func ComputeFactors(n int64) ([]int64, error) {
	return ComputeFactorsContext(context.Background(), n)
}

// ComputeFactorsContext is ComputeFactors with cooperative cancellation. The context
// is polled every cancelCheckInterval candidates and its error returned once it is done.
func ComputeFactorsContext(ctx context.Context, n int64) ([]int64, error) {
	if n < 0 {
		return nil, domain.ErrNegativeInput
	}
	if n == 0 {
		return nil, nil
	}

	// Candidates are tested in increasing order and every candidate is below n, so
	// appending keeps the set sorted and duplicate-free.
	factors := []int64{1}
	upperLimit := n / 2
	for trialDivisor := int64(2); trialDivisor <= upperLimit; trialDivisor++ {
		if trialDivisor%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		if n%trialDivisor == 0 {
			factors = append(factors, trialDivisor)
		}
	}

	if n > 1 {
		factors = append(factors, n)
	}

	return factors, nil
}

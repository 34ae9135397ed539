package service

import (
	"context"

	"github.com/allisson/primetime/internal/numbers/domain"
)

// IsPrime reports whether n has exactly two divisors. 0 and 1 are not prime.
// Returns domain.ErrNegativePrime for n < 0.
func IsPrime(n int64) (bool, error) {
	return IsPrimeContext(context.Background(), n)
}

// IsPrimeContext is IsPrime with cooperative cancellation.
func IsPrimeContext(ctx context.Context, n int64) (bool, error) {
	if n < 0 {
		return false, domain.ErrNegativePrime
	}

	factors, err := ComputeFactorsContext(ctx, n)
	if err != nil {
		return false, err
	}

	return len(factors) == 2, nil
}

package service

import (
	"context"

	"github.com/allisson/primetime/internal/numbers/domain"
)

// ComputePrimes returns the first count primes in ascending order by scanning
// candidates upward from 1 through IsPrime.
//
// Counts outside the recognized range (see domain.InRange) return nil. This is an
// absent result, not a validation failure.
func ComputePrimes(count int) []int64 {
	// A background context is never done, so the error is always nil.
	primes, _ := ComputePrimesContext(context.Background(), count)
	return primes
}

// ComputePrimesContext is ComputePrimes with cooperative cancellation. The only error
// it returns is the context's.
func ComputePrimesContext(ctx context.Context, count int) ([]int64, error) {
	if !domain.InRange(count) {
		return nil, nil
	}

	primes := make([]int64, 0, count)
	for candidate := int64(1); candidate < domain.ScanCeiling; candidate++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		isPrime, err := IsPrimeContext(ctx, candidate)
		if err != nil {
			return nil, err
		}
		if !isPrime {
			continue
		}

		primes = append(primes, candidate)
		if len(primes) >= count {
			break
		}
	}

	return primes, nil
}

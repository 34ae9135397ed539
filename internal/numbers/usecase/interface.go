// Package usecase orchestrates the number-theory operations for the transport layers.
package usecase

import "context"

// NumberUseCase defines the number-theory operations exposed to callers.
//
// Absent results are nil slices: ComputeFactors(0) and ComputePrimes with a count
// outside the recognized range return (nil, nil).
type NumberUseCase interface {
	// ComputeFactors returns every positive divisor of n in ascending order.
	// Returns an error wrapping ErrInvalidInput for negative n.
	ComputeFactors(ctx context.Context, n int64) ([]int64, error)

	// IsPrime reports whether n has exactly two distinct positive divisors.
	// Returns an error wrapping ErrInvalidInput for negative n.
	IsPrime(ctx context.Context, n int64) (bool, error)

	// ComputePrimes returns the first count primes in ascending order.
	ComputePrimes(ctx context.Context, count int) ([]int64, error)
}

// Package service implements the trial-division number-theory algorithms: divisor
// enumeration, primality checking built on it, and prime sequence generation built
// on the primality check.
//
// Every operation is a pure function of its arguments. The *Context variants run the
// same algorithm and only differ in giving up when their context is done.
package service

import "context"

// Calculator exposes the number-theory operations with cooperative cancellation.
type Calculator interface {
	ComputeFactors(ctx context.Context, n int64) ([]int64, error)
	IsPrime(ctx context.Context, n int64) (bool, error)
	ComputePrimes(ctx context.Context, count int) ([]int64, error)
}

type trialDivisionCalculator struct{}

// NewCalculator creates a Calculator backed by the trial-division algorithms of this package.
func NewCalculator() Calculator {
	return &trialDivisionCalculator{}
}

func (c *trialDivisionCalculator) ComputeFactors(ctx context.Context, n int64) ([]int64, error) {
	return ComputeFactorsContext(ctx, n)
}

func (c *trialDivisionCalculator) IsPrime(ctx context.Context, n int64) (bool, error) {
	return IsPrimeContext(ctx, n)
}

func (c *trialDivisionCalculator) ComputePrimes(ctx context.Context, count int) ([]int64, error) {
	return ComputePrimesContext(ctx, count)
}

package usecase

import (
	"context"
	"fmt"
	"time"

	apperrors "github.com/allisson/primetime/internal/errors"
	"github.com/allisson/primetime/internal/numbers/service"
)

type numberUseCase struct {
	calculator service.Calculator
	timeout    time.Duration
}

// NewNumberUseCase creates a NumberUseCase backed by calculator. Each call is bounded by
// timeout; a zero timeout leaves the caller's context untouched.
func NewNumberUseCase(calculator service.Calculator, timeout time.Duration) NumberUseCase {
	return &numberUseCase{
		calculator: calculator,
		timeout:    timeout,
	}
}

func (n *numberUseCase) ComputeFactors(ctx context.Context, value int64) ([]int64, error) {
	ctx, cancel := n.withTimeout(ctx)
	defer cancel()

	factors, err := n.calculator.ComputeFactors(ctx, value)
	if err != nil {
		return nil, n.translateError(err, "failed to compute factors")
	}
	return factors, nil
}

func (n *numberUseCase) IsPrime(ctx context.Context, value int64) (bool, error) {
	ctx, cancel := n.withTimeout(ctx)
	defer cancel()

	isPrime, err := n.calculator.IsPrime(ctx, value)
	if err != nil {
		return false, n.translateError(err, "failed to check primality")
	}
	return isPrime, nil
}

func (n *numberUseCase) ComputePrimes(ctx context.Context, count int) ([]int64, error) {
	ctx, cancel := n.withTimeout(ctx)
	defer cancel()

	primes, err := n.calculator.ComputePrimes(ctx, count)
	if err != nil {
		return nil, n.translateError(err, "failed to compute primes")
	}
	return primes, nil
}

func (n *numberUseCase) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if n.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, n.timeout)
}

// translateError maps context errors to ErrTimeout, keeping the context error in the
// chain, and leaves domain errors as they are.
func (n *numberUseCase) translateError(err error, message string) error {
	if apperrors.Is(err, context.DeadlineExceeded) || apperrors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w: %w", message, apperrors.ErrTimeout, err)
	}
	return err
}

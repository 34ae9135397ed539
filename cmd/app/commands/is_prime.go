package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/dustin/go-humanize"

	numbersUseCase "github.com/allisson/primetime/internal/numbers/usecase"
)

// RunIsPrime prints whether n is prime.
func RunIsPrime(
	ctx context.Context,
	numberUseCase numbersUseCase.NumberUseCase,
	logger *slog.Logger,
	writer io.Writer,
	n int64,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	logger.Info("checking primality", slog.Int64("n", n))

	isPrime, err := numberUseCase.IsPrime(ctx, n)
	if err != nil {
		return fmt.Errorf("failed to check primality: %w", err)
	}

	if format == formatJSON {
		return writeJSON(writer, map[string]any{
			"n":        n,
			"is_prime": isPrime,
		})
	}

	verdict := "is prime"
	if !isPrime {
		verdict = "is not prime"
	}
	_, err = fmt.Fprintf(writer, "%s %s\n", humanize.Comma(n), verdict)
	return err
}

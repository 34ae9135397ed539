package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/dustin/go-humanize"

	"github.com/allisson/primetime/internal/numbers/domain"
	numbersUseCase "github.com/allisson/primetime/internal/numbers/usecase"
)

// RunComputePrimes prints the first count primes. Counts outside the recognized range
// are reported, not treated as failures.
func RunComputePrimes(
	ctx context.Context,
	numberUseCase numbersUseCase.NumberUseCase,
	logger *slog.Logger,
	writer io.Writer,
	count int,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	logger.Info("computing primes", slog.Int("count", count))

	primes, err := numberUseCase.ComputePrimes(ctx, count)
	if err != nil {
		return fmt.Errorf("failed to compute primes: %w", err)
	}

	inRange := domain.InRange(count)
	if format == formatJSON {
		err = writeJSON(writer, map[string]any{
			"count":    count,
			"in_range": inRange,
			"primes":   primes,
		})
	} else {
		err = outputPrimesText(writer, count, inRange, primes)
	}
	if err != nil {
		return err
	}

	logger.Info("primes computed", slog.Int("count", count), slog.Bool("in_range", inRange))
	return nil
}

func outputPrimesText(w io.Writer, count int, inRange bool, primes []int64) error {
	if !inRange {
		_, err := fmt.Fprintf(w, "No primes computed: count must be greater than %d and at most %s, got %s\n",
			domain.MinNumberOfPrimes,
			humanize.Comma(domain.MaxNumberOfPrimes),
			humanize.Comma(int64(count)),
		)
		return err
	}

	if _, err := fmt.Fprintf(w, "First %s primes: %s\n", humanize.Comma(int64(count)), joinNumbers(primes)); err != nil {
		return err
	}
	if len(primes) > 0 {
		_, err := fmt.Fprintf(w, "Largest: %s\n", humanize.Comma(primes[len(primes)-1]))
		return err
	}
	return nil
}

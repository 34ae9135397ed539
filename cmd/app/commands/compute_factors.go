package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/dustin/go-humanize"

	numbersUseCase "github.com/allisson/primetime/internal/numbers/usecase"
)

// RunComputeFactors prints every positive divisor of n in ascending order.
func RunComputeFactors(
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

	logger.Info("computing factors", slog.Int64("n", n))

	factors, err := numberUseCase.ComputeFactors(ctx, n)
	if err != nil {
		return fmt.Errorf("failed to compute factors: %w", err)
	}

	if format == formatJSON {
		err = writeJSON(writer, map[string]any{
			"n":       n,
			"factors": factors,
		})
	} else {
		err = outputFactorsText(writer, n, factors)
	}
	if err != nil {
		return err
	}

	logger.Info("factors computed", slog.Int64("n", n), slog.Int("count", len(factors)))
	return nil
}

func outputFactorsText(w io.Writer, n int64, factors []int64) error {
	if factors == nil {
		_, err := fmt.Fprintf(w, "%s has no factors\n", humanize.Comma(n))
		return err
	}

	_, err := fmt.Fprintf(w, "Factors of %s (%s divisor(s)): %s\n",
		humanize.Comma(n),
		humanize.Comma(int64(len(factors))),
		joinNumbers(factors),
	)
	return err
}

package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/dustin/go-humanize"

	textUseCase "github.com/allisson/primetime/internal/text/usecase"
)

// RunTokenize prints the tokens of text split on the delimiter characters, one per line.
func RunTokenize(
	ctx context.Context,
	tokenizerUseCase textUseCase.TokenizerUseCase,
	logger *slog.Logger,
	writer io.Writer,
	text string,
	delimiters string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	logger.Info("tokenizing text",
		slog.Int("text_bytes", len(text)),
		slog.Int("delimiter_bytes", len(delimiters)),
	)

	tokens, err := tokenizerUseCase.Tokenize(ctx, text, delimiters)
	if err != nil {
		return fmt.Errorf("failed to tokenize text: %w", err)
	}

	if format == formatJSON {
		if tokens == nil {
			tokens = []string{}
		}
		return writeJSON(writer, map[string]any{"tokens": tokens})
	}

	if _, err := fmt.Fprintf(writer, "%s token(s)\n", humanize.Comma(int64(len(tokens)))); err != nil {
		return err
	}
	for _, token := range tokens {
		if _, err := fmt.Fprintln(writer, token); err != nil {
			return err
		}
	}
	return nil
}

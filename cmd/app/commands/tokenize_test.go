package commands

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/allisson/primetime/internal/text/domain"
	textMocks "github.com/allisson/primetime/internal/text/usecase/mocks"
)

func TestRunTokenize(t *testing.T) {
	ctx := context.Background()
	logger := discardLogger()

	t.Run("text-output", func(t *testing.T) {
		mockUseCase := &textMocks.MockTokenizerUseCase{}
		mockUseCase.On("Tokenize", ctx, "Oh, and periods too.", " ,.").
			Return([]string{"Oh", "and", "periods", "too"}, nil)

		var out bytes.Buffer
		err := RunTokenize(ctx, mockUseCase, logger, &out, "Oh, and periods too.", " ,.", "text")

		require.NoError(t, err)
		require.Equal(t, "4 token(s)\nOh\nand\nperiods\ntoo\n", out.String())
		mockUseCase.AssertExpectations(t)
	})

	t.Run("json-output", func(t *testing.T) {
		mockUseCase := &textMocks.MockTokenizerUseCase{}
		mockUseCase.On("Tokenize", ctx, "a-b", "-").Return([]string{"a", "b"}, nil)

		var out bytes.Buffer
		err := RunTokenize(ctx, mockUseCase, logger, &out, "a-b", "-", "json")

		require.NoError(t, err)
		require.JSONEq(t, `{"tokens":["a","b"]}`, out.String())
	})

	t.Run("json-output-empty", func(t *testing.T) {
		mockUseCase := &textMocks.MockTokenizerUseCase{}
		mockUseCase.On("Tokenize", ctx, "", " ").Return([]string{}, nil)

		var out bytes.Buffer
		err := RunTokenize(ctx, mockUseCase, logger, &out, "", " ", "json")

		require.NoError(t, err)
		require.JSONEq(t, `{"tokens":[]}`, out.String())
	})

	t.Run("use-case-error", func(t *testing.T) {
		mockUseCase := &textMocks.MockTokenizerUseCase{}
		mockUseCase.On("Tokenize", ctx, "huge", " ").Return(nil, domain.ErrTextTooLarge)

		err := RunTokenize(ctx, mockUseCase, logger, &bytes.Buffer{}, "huge", " ", "text")

		require.ErrorIs(t, err, domain.ErrTextTooLarge)
	})

	t.Run("invalid-format", func(t *testing.T) {
		err := RunTokenize(ctx, &textMocks.MockTokenizerUseCase{}, logger, &bytes.Buffer{}, "a", " ", "xml")

		require.Error(t, err)
		require.Contains(t, err.Error(), "invalid format")
	})
}

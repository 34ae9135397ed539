// Package http provides HTTP handlers for text tokenization.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/primetime/internal/httputil"
	"github.com/allisson/primetime/internal/text/http/dto"
	"github.com/allisson/primetime/internal/text/usecase"
)

// TokenizerHandler handles HTTP requests for text tokenization.
type TokenizerHandler struct {
	tokenizerUseCase usecase.TokenizerUseCase
	logger           *slog.Logger
}

// NewTokenizerHandler creates a new tokenizer handler with required dependencies.
func NewTokenizerHandler(tokenizerUseCase usecase.TokenizerUseCase, logger *slog.Logger) *TokenizerHandler {
	return &TokenizerHandler{
		tokenizerUseCase: tokenizerUseCase,
		logger:           logger,
	}
}

// TokenizeHandler splits text into tokens.
// POST /v1/text/tokenize
func (h *TokenizerHandler) TokenizeHandler(c *gin.Context) {
	var req dto.TokenizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	tokens, err := h.tokenizerUseCase.Tokenize(c.Request.Context(), *req.Text, *req.Delimiters)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapTokensToResponse(tokens))
}

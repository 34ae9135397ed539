// Package http provides HTTP handlers for the number-theory operations.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/primetime/internal/httputil"
	"github.com/allisson/primetime/internal/numbers/http/dto"
	"github.com/allisson/primetime/internal/numbers/usecase"
)

// NumberHandler handles HTTP requests for divisor enumeration, primality checks and
// prime sequence generation.
type NumberHandler struct {
	numberUseCase usecase.NumberUseCase
	logger        *slog.Logger
}

// NewNumberHandler creates a new number handler with required dependencies.
func NewNumberHandler(numberUseCase usecase.NumberUseCase, logger *slog.Logger) *NumberHandler {
	return &NumberHandler{
		numberUseCase: numberUseCase,
		logger:        logger,
	}
}

// ComputeFactorsHandler returns every positive divisor of n.
// POST /v1/numbers/factors
func (h *NumberHandler) ComputeFactorsHandler(c *gin.Context) {
	var req dto.NumberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	factors, err := h.numberUseCase.ComputeFactors(c.Request.Context(), *req.N)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapFactorsToResponse(*req.N, factors))
}

// IsPrimeHandler reports whether n is prime.
// POST /v1/numbers/is-prime
func (h *NumberHandler) IsPrimeHandler(c *gin.Context) {
	var req dto.NumberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	isPrime, err := h.numberUseCase.IsPrime(c.Request.Context(), *req.N)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapIsPrimeToResponse(*req.N, isPrime))
}

// ComputePrimesHandler returns the first count primes.
// POST /v1/numbers/primes
func (h *NumberHandler) ComputePrimesHandler(c *gin.Context) {
	var req dto.PrimesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	primes, err := h.numberUseCase.ComputePrimes(c.Request.Context(), *req.Count)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapPrimesToResponse(*req.Count, primes))
}

package app

import (
	"fmt"

	textHTTP "github.com/allisson/primetime/internal/text/http"
	textUseCase "github.com/allisson/primetime/internal/text/usecase"
)

// TokenizerUseCase returns the tokenizer use case decorated with business metrics.
func (c *Container) TokenizerUseCase() (textUseCase.TokenizerUseCase, error) {
	var err error
	c.tokenizerUseCaseInit.Do(func() {
		c.tokenizerUseCase, err = c.initTokenizerUseCase()
		if err != nil {
			c.initErrors["tokenizerUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["tokenizerUseCase"]; exists {
		return nil, storedErr
	}
	return c.tokenizerUseCase, nil
}

// TokenizerHandler returns the HTTP handler for text tokenization.
func (c *Container) TokenizerHandler() (*textHTTP.TokenizerHandler, error) {
	var err error
	c.tokenizerHandlerInit.Do(func() {
		c.tokenizerHandler, err = c.initTokenizerHandler()
		if err != nil {
			c.initErrors["tokenizerHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["tokenizerHandler"]; exists {
		return nil, storedErr
	}
	return c.tokenizerHandler, nil
}

func (c *Container) initTokenizerUseCase() (textUseCase.TokenizerUseCase, error) {
	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for tokenizer use case: %w", err)
	}
	return textUseCase.NewTokenizerUseCaseWithMetrics(textUseCase.NewTokenizerUseCase(), businessMetrics), nil
}

func (c *Container) initTokenizerHandler() (*textHTTP.TokenizerHandler, error) {
	useCase, err := c.TokenizerUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get tokenizer use case for tokenizer handler: %w", err)
	}
	return textHTTP.NewTokenizerHandler(useCase, c.Logger()), nil
}

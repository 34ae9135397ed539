package app

import (
	"fmt"

	numbersHTTP "github.com/allisson/primetime/internal/numbers/http"
	numbersService "github.com/allisson/primetime/internal/numbers/service"
	numbersUseCase "github.com/allisson/primetime/internal/numbers/usecase"
)

// NumberUseCase returns the number use case, decorated with the result cache when
// enabled and with business metrics.
func (c *Container) NumberUseCase() (numbersUseCase.NumberUseCase, error) {
	var err error
	c.numberUseCaseInit.Do(func() {
		c.numberUseCase, err = c.initNumberUseCase()
		if err != nil {
			c.initErrors["numberUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["numberUseCase"]; exists {
		return nil, storedErr
	}
	return c.numberUseCase, nil
}

// NumberHandler returns the HTTP handler for the number operations.
func (c *Container) NumberHandler() (*numbersHTTP.NumberHandler, error) {
	var err error
	c.numberHandlerInit.Do(func() {
		c.numberHandler, err = c.initNumberHandler()
		if err != nil {
			c.initErrors["numberHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["numberHandler"]; exists {
		return nil, storedErr
	}
	return c.numberHandler, nil
}

// initNumberUseCase assembles calculator -> time limit -> cache -> metrics.
func (c *Container) initNumberUseCase() (numbersUseCase.NumberUseCase, error) {
	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for number use case: %w", err)
	}

	useCase := numbersUseCase.NewNumberUseCase(numbersService.NewCalculator(), c.config.ComputeTimeout)

	if c.config.CacheEnabled {
		cached, err := numbersUseCase.NewNumberUseCaseWithCache(useCase, c.config.CacheMaxEntries, businessMetrics)
		if err != nil {
			return nil, fmt.Errorf("failed to create number result cache: %w", err)
		}
		c.numberCache = cached
		useCase = cached
	}

	return numbersUseCase.NewNumberUseCaseWithMetrics(useCase, businessMetrics), nil
}

func (c *Container) initNumberHandler() (*numbersHTTP.NumberHandler, error) {
	useCase, err := c.NumberUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get number use case for number handler: %w", err)
	}
	return numbersHTTP.NewNumberHandler(useCase, c.Logger()), nil
}

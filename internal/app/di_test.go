package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/primetime/internal/config"
	"github.com/allisson/primetime/internal/metrics"
)

func newTestConfig() *config.Config {
	return &config.Config{
		ServerHost:              "localhost",
		ServerPort:              0,
		LogLevel:                "error",
		ComputeTimeout:          5 * time.Second,
		CacheEnabled:            true,
		CacheMaxEntries:         100,
		RateLimitEnabled:        true,
		RateLimitRequestsPerSec: 10,
		RateLimitBurst:          20,
		MetricsEnabled:          true,
		MetricsNamespace:        "primetime_test",
		MetricsPort:             0,
	}
}

func newTestContainer(t *testing.T, cfg *config.Config) *Container {
	t.Helper()

	container := NewContainer(cfg)
	t.Cleanup(func() {
		assert.NoError(t, container.Shutdown(context.Background()))
	})
	return container
}

// TestNewContainer verifies that a new container can be created with a valid configuration.
func TestNewContainer(t *testing.T) {
	cfg := newTestConfig()
	container := NewContainer(cfg)

	require.NotNil(t, container)
	assert.Same(t, cfg, container.Config())
}

// TestContainerLogger verifies that the logger is created once and reused.
func TestContainerLogger(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "invalid"} {
		t.Run(level, func(t *testing.T) {
			container := NewContainer(&config.Config{LogLevel: level})

			logger := container.Logger()
			require.NotNil(t, logger)
			assert.Same(t, logger, container.Logger())
		})
	}
}

// TestContainerLazyInitialization verifies that components are only initialized when accessed.
func TestContainerLazyInitialization(t *testing.T) {
	container := newTestContainer(t, newTestConfig())

	assert.Nil(t, container.logger)
	assert.Nil(t, container.numberUseCase)
	assert.Nil(t, container.httpServer)

	_, err := container.NumberUseCase()
	require.NoError(t, err)

	assert.NotNil(t, container.numberUseCase)
	assert.NotNil(t, container.numberCache)
	assert.Nil(t, container.httpServer)
}

// TestContainerNumberUseCase verifies the fully decorated number use case.
func TestContainerNumberUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_WithCache", func(t *testing.T) {
		container := newTestContainer(t, newTestConfig())

		useCase, err := container.NumberUseCase()
		require.NoError(t, err)

		again, err := container.NumberUseCase()
		require.NoError(t, err)
		assert.Same(t, useCase, again)

		factors, err := useCase.ComputeFactors(ctx, 733)
		require.NoError(t, err)
		assert.Equal(t, []int64{1, 733}, factors)

		primes, err := useCase.ComputePrimes(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, []int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}, primes)
	})

	t.Run("Success_WithoutCache", func(t *testing.T) {
		cfg := newTestConfig()
		cfg.CacheEnabled = false
		container := newTestContainer(t, cfg)

		useCase, err := container.NumberUseCase()
		require.NoError(t, err)
		assert.Nil(t, container.numberCache)

		isPrime, err := useCase.IsPrime(ctx, 53)
		require.NoError(t, err)
		assert.True(t, isPrime)
	})

	t.Run("Error_InvalidCacheSize", func(t *testing.T) {
		cfg := newTestConfig()
		cfg.CacheMaxEntries = 0
		container := newTestContainer(t, cfg)

		_, err := container.NumberUseCase()
		assert.Error(t, err)

		// The stored error is returned on subsequent calls.
		_, err = container.NumberUseCase()
		assert.Error(t, err)

		_, err = container.HTTPServer()
		assert.Error(t, err)
	})
}

// TestContainerTokenizerUseCase verifies the decorated tokenizer use case.
func TestContainerTokenizerUseCase(t *testing.T) {
	container := newTestContainer(t, newTestConfig())

	useCase, err := container.TokenizerUseCase()
	require.NoError(t, err)

	tokens, err := useCase.Tokenize(context.Background(), "a,b c", ", ")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, tokens)
}

// TestContainerMetrics verifies metrics components for both enabled and disabled metrics.
func TestContainerMetrics(t *testing.T) {
	t.Run("Success_Enabled", func(t *testing.T) {
		container := newTestContainer(t, newTestConfig())

		provider, err := container.MetricsProvider()
		require.NoError(t, err)
		require.NotNil(t, provider)
		assert.Equal(t, "primetime_test", provider.Namespace())

		businessMetrics, err := container.BusinessMetrics()
		require.NoError(t, err)
		assert.NotNil(t, businessMetrics)

		metricsServer, err := container.MetricsServer()
		require.NoError(t, err)
		assert.NotNil(t, metricsServer)
	})

	t.Run("Success_Disabled", func(t *testing.T) {
		cfg := newTestConfig()
		cfg.MetricsEnabled = false
		container := newTestContainer(t, cfg)

		provider, err := container.MetricsProvider()
		require.NoError(t, err)
		assert.Nil(t, provider)

		businessMetrics, err := container.BusinessMetrics()
		require.NoError(t, err)
		assert.IsType(t, &metrics.NoOpBusinessMetrics{}, businessMetrics)

		metricsServer, err := container.MetricsServer()
		require.NoError(t, err)
		assert.Nil(t, metricsServer)
	})
}

// TestContainerHTTPServer verifies that the API server is assembled with its router.
func TestContainerHTTPServer(t *testing.T) {
	container := newTestContainer(t, newTestConfig())

	server, err := container.HTTPServer()
	require.NoError(t, err)
	require.NotNil(t, server)
	assert.NotNil(t, server.GetHandler())

	again, err := container.HTTPServer()
	require.NoError(t, err)
	assert.Same(t, server, again)
}

// TestContainerShutdown verifies that the shutdown method can be called safely.
func TestContainerShutdown(t *testing.T) {
	container := NewContainer(newTestConfig())

	// Shutdown should not fail even if no components are initialized
	assert.NoError(t, container.Shutdown(context.Background()))
}

package usecase

import (
	"context"
	"fmt"
	"slices"
	"strconv"

	"github.com/dgraph-io/ristretto/v2"
	"golang.org/x/sync/singleflight"

	apperrors "github.com/allisson/primetime/internal/errors"
	"github.com/allisson/primetime/internal/metrics"
)

// cachedResult holds the outcome of one successful computation. Absent results are
// stored with a nil numbers slice.
type cachedResult struct {
	numbers []int64
	isPrime bool
}

// CachedNumberUseCase is a NumberUseCase that memoizes successful results in memory.
// Close must be called to stop the cache's background goroutines.
type CachedNumberUseCase struct {
	next    NumberUseCase
	cache   *ristretto.Cache[string, cachedResult]
	group   singleflight.Group
	metrics metrics.BusinessMetrics
}

// NewNumberUseCaseWithCache wraps a NumberUseCase with a bounded result cache holding at
// most maxEntries results. Concurrent identical calls are coalesced into a single
// computation. Errors are never cached.
func NewNumberUseCaseWithCache(
	useCase NumberUseCase,
	maxEntries int,
	m metrics.BusinessMetrics,
) (*CachedNumberUseCase, error) {
	if maxEntries <= 0 {
		return nil, apperrors.Wrapf(apperrors.ErrInvalidInput, "cache max entries must be positive, got %d", maxEntries)
	}

	cache, err := ristretto.NewCache(&ristretto.Config[string, cachedResult]{
		NumCounters:        int64(maxEntries) * 10,
		MaxCost:            int64(maxEntries),
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to create result cache")
	}

	return &CachedNumberUseCase{
		next:    useCase,
		cache:   cache,
		metrics: m,
	}, nil
}

// ComputeFactors returns cached divisors of value when present.
func (c *CachedNumberUseCase) ComputeFactors(ctx context.Context, value int64) ([]int64, error) {
	key := "compute_factors:" + strconv.FormatInt(value, 10)
	result, err := c.lookup(ctx, "compute_factors", key, func(ctx context.Context) (cachedResult, error) {
		factors, err := c.next.ComputeFactors(ctx, value)
		return cachedResult{numbers: factors}, err
	})
	if err != nil {
		return nil, err
	}
	return slices.Clone(result.numbers), nil
}

// IsPrime returns the cached primality of value when present.
func (c *CachedNumberUseCase) IsPrime(ctx context.Context, value int64) (bool, error) {
	key := "is_prime:" + strconv.FormatInt(value, 10)
	result, err := c.lookup(ctx, "is_prime", key, func(ctx context.Context) (cachedResult, error) {
		isPrime, err := c.next.IsPrime(ctx, value)
		return cachedResult{isPrime: isPrime}, err
	})
	if err != nil {
		return false, err
	}
	return result.isPrime, nil
}

// ComputePrimes returns the cached prime sequence of length count when present.
func (c *CachedNumberUseCase) ComputePrimes(ctx context.Context, count int) ([]int64, error) {
	key := "compute_primes:" + strconv.Itoa(count)
	result, err := c.lookup(ctx, "compute_primes", key, func(ctx context.Context) (cachedResult, error) {
		primes, err := c.next.ComputePrimes(ctx, count)
		return cachedResult{numbers: primes}, err
	})
	if err != nil {
		return nil, err
	}
	return slices.Clone(result.numbers), nil
}

// Wait blocks until every pending cache write has been applied.
func (c *CachedNumberUseCase) Wait() {
	c.cache.Wait()
}

// Close stops the cache and releases its resources.
func (c *CachedNumberUseCase) Close() {
	c.cache.Close()
}

// lookup serves key from the cache or joins the in-flight computation for it. The
// computation runs detached from any single caller's cancellation and stays bounded by
// the wrapped use case's own time limit. Each caller waits only as long as its own
// context allows.
func (c *CachedNumberUseCase) lookup(
	ctx context.Context,
	operation, key string,
	compute func(ctx context.Context) (cachedResult, error),
) (cachedResult, error) {
	if result, ok := c.cache.Get(key); ok {
		c.metrics.RecordCacheLookup(ctx, metricsDomain, operation, true)
		return result, nil
	}
	c.metrics.RecordCacheLookup(ctx, metricsDomain, operation, false)

	computeCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key, func() (any, error) {
		result, err := compute(computeCtx)
		if err != nil {
			return cachedResult{}, err
		}
		c.cache.Set(key, cachedResult{numbers: slices.Clone(result.numbers), isPrime: result.isPrime}, 1)
		return result, nil
	})

	select {
	case <-ctx.Done():
		return cachedResult{}, fmt.Errorf("failed to wait for %s: %w: %w", operation, apperrors.ErrTimeout, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return cachedResult{}, res.Err
		}
		return res.Val.(cachedResult), nil
	}
}

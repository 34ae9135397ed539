// Package mocks provides mock implementations of the number use cases for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockNumberUseCase is a mock implementation of NumberUseCase for testing.
type MockNumberUseCase struct {
	mock.Mock
}

// ComputeFactors mocks the ComputeFactors method of NumberUseCase.
func (m *MockNumberUseCase) ComputeFactors(ctx context.Context, n int64) ([]int64, error) {
	args := m.Called(ctx, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

// IsPrime mocks the IsPrime method of NumberUseCase.
func (m *MockNumberUseCase) IsPrime(ctx context.Context, n int64) (bool, error) {
	args := m.Called(ctx, n)
	return args.Bool(0), args.Error(1)
}

// ComputePrimes mocks the ComputePrimes method of NumberUseCase.
func (m *MockNumberUseCase) ComputePrimes(ctx context.Context, count int) ([]int64, error) {
	args := m.Called(ctx, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

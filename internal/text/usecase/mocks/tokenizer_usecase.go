// Package mocks provides mock implementations of the text use cases for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockTokenizerUseCase is a mock implementation of TokenizerUseCase for testing.
type MockTokenizerUseCase struct {
	mock.Mock
}

// Tokenize mocks the Tokenize method of TokenizerUseCase.
func (m *MockTokenizerUseCase) Tokenize(ctx context.Context, text, delimiters string) ([]string, error) {
	args := m.Called(ctx, text, delimiters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

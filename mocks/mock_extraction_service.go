package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/gabrieliussalyga/LLMtranscriptionNERproject/internal/domain"
)

// MockExtractionService is a mock implementation of service.ExtractionService.
type MockExtractionService struct {
	mock.Mock
}

func (m *MockExtractionService) Extract(ctx context.Context, input *domain.TranscriptInput) (*domain.ExtractionResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExtractionResult), args.Error(1)
}

func (m *MockExtractionService) Provider() string {
	args := m.Called()
	return args.String(0)
}

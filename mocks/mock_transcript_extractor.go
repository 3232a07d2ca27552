package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/gabrieliussalyga/LLMtranscriptionNERproject/internal/port"
)

// MockTranscriptExtractor is a mock implementation of port.TranscriptExtractor.
type MockTranscriptExtractor struct {
	mock.Mock
}

func (m *MockTranscriptExtractor) Extract(ctx context.Context, input port.ExtractInput) (*port.ExtractOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.ExtractOutput), args.Error(1)
}

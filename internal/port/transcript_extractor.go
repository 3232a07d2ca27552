package port

import (
	"context"

	"github.com/gabrieliussalyga/LLMtranscriptionNERproject/internal/domain"
)

// ExtractInput carries the transcript to extract from.
type ExtractInput struct {
	Segments []domain.TranscriptSegment
}

// ExtractOutput is the raw model answer and the call metadata.
type ExtractOutput struct {
	RawText    string
	ModelUsed  string
	Provider   string
	PromptUsed string
}

// TranscriptExtractor abstracts a single LLM extraction call.
type TranscriptExtractor interface {
	Extract(ctx context.Context, input ExtractInput) (*ExtractOutput, error)
}

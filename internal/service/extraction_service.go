package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gabrieliussalyga/LLMtranscriptionNERproject/internal/domain"
	"github.com/gabrieliussalyga/LLMtranscriptionNERproject/internal/extractor"
	"github.com/gabrieliussalyga/LLMtranscriptionNERproject/internal/port"
	"github.com/gabrieliussalyga/LLMtranscriptionNERproject/internal/schema"
)

// ExtractionService turns a transcript into a validated E025 extraction.
type ExtractionService interface {
	Extract(ctx context.Context, input *domain.TranscriptInput) (*domain.ExtractionResult, error)
	Provider() string
}

type extractionService struct {
	extractor port.TranscriptExtractor
	validator *schema.Validator
	provider  string
}

// NewExtractionService creates a new ExtractionService implementation.
func NewExtractionService(ext port.TranscriptExtractor, validator *schema.Validator, provider string) ExtractionService {
	return &extractionService{
		extractor: ext,
		validator: validator,
		provider:  provider,
	}
}

func (s *extractionService) Provider() string {
	return s.provider
}

func (s *extractionService) Extract(ctx context.Context, input *domain.TranscriptInput) (*domain.ExtractionResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	out, err := s.extractor.Extract(ctx, port.ExtractInput{Segments: input.Transcript})
	if err != nil {
		if errors.Is(err, domain.ErrProviderNotConfigured) {
			return nil, err
		}
		var rlErr *extractor.RateLimitError
		if !errors.As(err, &rlErr) {
			slog.ErrorContext(ctx, "extraction call failed", "provider", s.provider, "error", err)
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrProviderFailure, err)
	}
	slog.InfoContext(ctx, "extraction call finished",
		"provider", out.Provider,
		"model", out.ModelUsed,
		"segments", len(input.Transcript),
		"response_bytes", len(out.RawText),
		"elapsed", time.Since(start),
	)

	result, err := s.decode(out.RawText)
	if err != nil {
		slog.WarnContext(ctx, "model output rejected", "provider", out.Provider, "error", err)
		slog.DebugContext(ctx, "rejected model output",
			"raw", extractor.Truncate(out.RawText, 2000),
			"prompt", extractor.Truncate(out.PromptUsed, 2000),
		)
		return nil, err
	}

	result.Normalize()
	if err := result.CheckSegments(len(input.Transcript)); err != nil {
		slog.WarnContext(ctx, "model output references unknown segments",
			"provider", out.Provider,
			"segments", len(input.Transcript),
			"error", err,
		)
	}
	return result, nil
}

// decode parses, validates and decodes raw model output.
func (s *extractionService) decode(raw string) (*domain.ExtractionResult, error) {
	parsed, err := schema.ParseJSON(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidLLMOutput, err)
	}
	tree, err := schema.Prepare(parsed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidLLMOutput, err)
	}
	if err := s.validator.ValidateValue(tree); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSchemaValidation, err)
	}

	cleaned, err := json.Marshal(tree)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidLLMOutput, err)
	}
	dec := json.NewDecoder(bytes.NewReader(cleaned))
	dec.DisallowUnknownFields()
	var result domain.ExtractionResult
	if err := dec.Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSchemaValidation, err)
	}
	return &result, nil
}

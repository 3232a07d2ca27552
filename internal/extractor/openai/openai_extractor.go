package openai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"

	"github.com/gabrieliussalyga/LLMtranscriptionNERproject/internal/config"
	"github.com/gabrieliussalyga/LLMtranscriptionNERproject/internal/extractor"
	"github.com/gabrieliussalyga/LLMtranscriptionNERproject/internal/port"
	"github.com/gabrieliussalyga/LLMtranscriptionNERproject/internal/schema"
)

const (
	providerName = "openai"
	defaultModel = "gpt-4o"
	schemaName   = "extraction_result"
	temperature  = 0.1
)

// Extractor implements port.TranscriptExtractor with OpenAI Chat Completions
// and strict structured outputs.
type Extractor struct {
	client openai.Client
	model  string
}

// NewExtractor creates an OpenAI-backed extractor from a provider config.
func NewExtractor(cfg *config.ProviderConfig) *Extractor {
	return newExtractor(cfg, cfg.BaseURL)
}

// NewExtractorWithEndpoint creates an extractor pointing at a custom API base URL (for testing).
func NewExtractorWithEndpoint(cfg *config.ProviderConfig, baseURL string) *Extractor {
	return newExtractor(cfg, baseURL)
}

func newExtractor(cfg *config.ProviderConfig, baseURL string) *Extractor {
	model := cfg.DefaultModel
	if model == "" {
		model = defaultModel
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithHTTPClient(&http.Client{Timeout: timeout}),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &Extractor{
		client: openai.NewClient(opts...),
		model:  model,
	}
}

// Extract sends the transcript to the model and returns its raw JSON answer.
func (e *Extractor) Extract(ctx context.Context, input port.ExtractInput) (*port.ExtractOutput, error) {
	systemPrompt, err := extractor.SystemPrompt()
	if err != nil {
		return nil, err
	}
	strict, err := schema.StrictDocument()
	if err != nil {
		return nil, fmt.Errorf("building strict schema: %w", err)
	}
	userPrompt := extractor.BuildUserPrompt(input.Segments)

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(e.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
		Temperature: openai.Float(temperature),
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &shared.ResponseFormatJSONSchemaParam{
				JSONSchema: shared.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:   schemaName,
					Strict: openai.Bool(true),
					Schema: strict,
				},
			},
		},
	}

	resp, err := e.client.Chat.Completions.New(ctx, params)
	if err != nil {
		slog.ErrorContext(ctx, "openai API error", "model", e.model, "error", err)
		return nil, mapOpenAIError(err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("empty response from openai: no choices")
	}
	msg := resp.Choices[0].Message
	if msg.Refusal != "" {
		return nil, fmt.Errorf("openai refused the request: %s", extractor.Truncate(msg.Refusal, 500))
	}

	slog.InfoContext(ctx, "openai response received", "model", e.model, "length", len(msg.Content))

	return &port.ExtractOutput{
		RawText:    msg.Content,
		ModelUsed:  e.model,
		Provider:   providerName,
		PromptUsed: userPrompt,
	}, nil
}

func mapOpenAIError(err error) error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		baseErr := fmt.Errorf("openai API error (status %d): %s", apiErr.StatusCode, apiErr.Message)
		if apiErr.StatusCode == http.StatusTooManyRequests {
			retryAfter := 0
			if apiErr.Response != nil {
				retryAfter = extractor.ParseRetryAfterHeader(apiErr.Response.Header.Get("Retry-After"))
			}
			return extractor.NewRateLimitError(providerName, baseErr, retryAfter)
		}
		return baseErr
	}
	return fmt.Errorf("calling openai API: %w", err)
}

// Register adds the openai factory to the extractor registry.
func Register() {
	extractor.RegisterProvider(providerName, func(cfg *config.ProviderConfig) (port.TranscriptExtractor, error) {
		return NewExtractor(cfg), nil
	})
}

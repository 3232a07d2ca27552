package extractor_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabrieliussalyga/LLMtranscriptionNERproject/internal/config"
	"github.com/gabrieliussalyga/LLMtranscriptionNERproject/internal/domain"
	"github.com/gabrieliussalyga/LLMtranscriptionNERproject/internal/extractor"
	"github.com/gabrieliussalyga/LLMtranscriptionNERproject/internal/port"
)

func TestFactory_RegisterAndCreate(t *testing.T) {
	extractor.RegisterProvider("test-provider", func(cfg *config.ProviderConfig) (port.TranscriptExtractor, error) {
		return &stubExtractor{model: cfg.DefaultModel}, nil
	})

	e, err := extractor.NewExtractor(&config.ProviderConfig{
		Provider:     "test-provider",
		DefaultModel: "test-model",
	})

	require.NoError(t, err)
	out, err := e.Extract(context.Background(), port.ExtractInput{})
	require.NoError(t, err)
	assert.Equal(t, "test-model", out.ModelUsed)
	assert.Contains(t, extractor.Providers(), "test-provider")
}

func TestFactory_UnknownProvider(t *testing.T) {
	e, err := extractor.NewExtractor(&config.ProviderConfig{
		Provider: "nonexistent-provider-xyz",
	})

	assert.Nil(t, e)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown extraction provider")
}

type stubExtractor struct {
	model string
}

func (s *stubExtractor) Extract(_ context.Context, _ port.ExtractInput) (*port.ExtractOutput, error) {
	return &port.ExtractOutput{ModelUsed: s.model}, nil
}

func TestRateLimitError_ErrorsAs(t *testing.T) {
	underlying := fmt.Errorf("rate limited")
	rlErr := extractor.NewRateLimitError("gemini", underlying, 30)

	wrapped := fmt.Errorf("extraction failed: %w", rlErr)

	var target *extractor.RateLimitError
	require.True(t, errors.As(wrapped, &target))
	assert.Equal(t, "gemini", target.Provider)
	assert.Equal(t, 30*time.Second, target.RetryAfter)
	assert.Equal(t, underlying, errors.Unwrap(rlErr))
	assert.Contains(t, rlErr.Error(), "30s")
}

func TestNewRateLimitError_DefaultRetryAfter(t *testing.T) {
	rlErr := extractor.NewRateLimitError("openai", fmt.Errorf("err"), 0)

	assert.Equal(t, 60*time.Second, rlErr.RetryAfter)
}

func TestParseRetryAfterHeader(t *testing.T) {
	assert.Equal(t, 0, extractor.ParseRetryAfterHeader(""))
	assert.Equal(t, 30, extractor.ParseRetryAfterHeader("30"))
	assert.Equal(t, 0, extractor.ParseRetryAfterHeader("Wed, 21 Oct 2015 07:28:00 GMT"))
	assert.Equal(t, 0, extractor.ParseRetryAfterHeader("-5"))
	assert.Equal(t, 0, extractor.ParseRetryAfterHeader("soon"))
	assert.Equal(t, 12, extractor.ParseRetryAfterHeader(" 12 "))

	future := time.Now().Add(90 * time.Second).UTC().Format(http.TimeFormat)
	secs := extractor.ParseRetryAfterHeader(future)
	assert.InDelta(t, 90, secs, 2)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", extractor.Truncate("abc", 5))
	assert.Equal(t, "ab...", extractor.Truncate("abcdef", 2))
	// "ą" is two bytes; a cut inside it backs off to the rune start.
	assert.Equal(t, "sk...", extractor.Truncate("skąsta", 3))
	assert.Equal(t, "ską...", extractor.Truncate("skąsta", 4))
}

func TestBuildUserPrompt(t *testing.T) {
	segments := []domain.TranscriptSegment{
		{Time: "00:00:01", Speaker: "Gydytojas", Text: "Ar karščiuojate?"},
		{Time: "00:00:04", Speaker: "Pacientas", Text: "Ne."},
	}

	prompt := extractor.BuildUserPrompt(segments)

	assert.True(t, strings.HasPrefix(prompt, "<transcript>\n"))
	assert.Contains(t, prompt, "[0] 00:00:01 | Gydytojas: Ar karščiuojate?\n")
	assert.Contains(t, prompt, "[1] 00:00:04 | Pacientas: Ne.\n</transcript>")
	assert.True(t, strings.HasSuffix(prompt, "Return only valid JSON adhering to the provided output_schema."))
}

func TestSystemPrompt_EmbedsSchema(t *testing.T) {
	prompt, err := extractor.SystemPrompt()
	require.NoError(t, err)

	assert.Contains(t, prompt, "<output_schema>")
	assert.Contains(t, prompt, `"$defs"`)
	assert.Contains(t, prompt, "DiagnosisItem")
	assert.Contains(t, prompt, "source_segments")
	assert.Contains(t, prompt, "<extraction_rules>")
}

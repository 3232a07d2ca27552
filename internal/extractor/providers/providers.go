// Package providers wires the concrete extractor implementations into the
// extractor registry.
package providers

import (
	"context"
	"sync"

	"github.com/gabrieliussalyga/LLMtranscriptionNERproject/internal/config"
	"github.com/gabrieliussalyga/LLMtranscriptionNERproject/internal/extractor"
	"github.com/gabrieliussalyga/LLMtranscriptionNERproject/internal/extractor/claude"
	"github.com/gabrieliussalyga/LLMtranscriptionNERproject/internal/extractor/gemini"
	"github.com/gabrieliussalyga/LLMtranscriptionNERproject/internal/extractor/openai"
	"github.com/gabrieliussalyga/LLMtranscriptionNERproject/internal/port"
)

var registerOnce sync.Once

// RegisterAll registers openai, gemini and claude. Safe to call repeatedly.
func RegisterAll() {
	registerOnce.Do(func() {
		openai.Register()
		gemini.Register()
		claude.Register()
	})
}

// New resolves the selected provider from cfg and builds its extractor.
// A missing API key is reported as domain.ErrProviderNotConfigured.
func New(cfg *config.LLMConfig) (port.TranscriptExtractor, error) {
	RegisterAll()
	pc, err := cfg.ProviderConfig()
	if err != nil {
		return nil, err
	}
	return extractor.NewExtractor(pc)
}

// Resolve is like New, but when the provider cannot be built it also returns
// an extractor that fails every call with that error.
func Resolve(cfg *config.LLMConfig) (port.TranscriptExtractor, error) {
	e, err := New(cfg)
	if err != nil {
		return &unavailable{err: err}, err
	}
	return e, nil
}

type unavailable struct {
	err error
}

func (u *unavailable) Extract(_ context.Context, _ port.ExtractInput) (*port.ExtractOutput, error) {
	return nil, u.err
}

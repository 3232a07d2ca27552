// Package extractor holds what the LLM providers share: the extraction
// prompt, the provider registry and provider error types. The providers
// themselves live in subpackages.
package extractor

import (
	"fmt"
	"sort"
	"sync"

	"github.com/gabrieliussalyga/LLMtranscriptionNERproject/internal/config"
	"github.com/gabrieliussalyga/LLMtranscriptionNERproject/internal/port"
)

// ProviderFactory creates a TranscriptExtractor from a provider config.
type ProviderFactory func(cfg *config.ProviderConfig) (port.TranscriptExtractor, error)

var (
	mu        sync.RWMutex
	providers = map[string]ProviderFactory{}
)

// RegisterProvider registers a provider factory by name.
func RegisterProvider(name string, factory ProviderFactory) {
	mu.Lock()
	defer mu.Unlock()
	providers[name] = factory
}

// NewExtractor creates a TranscriptExtractor using the registered factory.
func NewExtractor(cfg *config.ProviderConfig) (port.TranscriptExtractor, error) {
	mu.RLock()
	factory, ok := providers[cfg.Provider]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown extraction provider: %s", cfg.Provider)
	}
	return factory(cfg)
}

// Providers returns the registered provider names, sorted.
func Providers() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(providers))
	for name := range providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

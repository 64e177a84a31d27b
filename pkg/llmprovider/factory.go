package llmprovider

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/spu-coder/my-ai-advisor/config"
	"github.com/spu-coder/my-ai-advisor/pkg/ollama"
)

// InitializeProviders creates Provider instances from config.LLMConfig
// Returns providers sorted by priority (ascending) with disabled providers filtered out
// Skips providers that fail to initialize instead of failing the entire service
func InitializeProviders(cfg *config.LLMConfig) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	var enabledProviders []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabledProviders = append(enabledProviders, p)
		}
	}

	if len(enabledProviders) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	sort.SliceStable(enabledProviders, func(i, j int) bool {
		return enabledProviders[i].Priority < enabledProviders[j].Priority
	})

	var providers []Provider
	var initErrors []string

	for _, p := range enabledProviders {
		provider, err := createProvider(p)
		if err != nil {
			initErrors = append(initErrors, fmt.Sprintf("failed to initialize provider %s (priority %d): %v", p.Name, p.Priority, err))
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("no providers successfully initialized: %s", strings.Join(initErrors, "; "))
	}

	return providers, nil
}

// createProvider creates a concrete provider instance based on the provider config
func createProvider(cfg config.ProviderConfig) (Provider, error) {
	timeout, err := parseTimeout(cfg.Timeout)
	if err != nil {
		return nil, fmt.Errorf("provider %s: %w", cfg.Name, err)
	}

	switch strings.ToLower(cfg.Name) {
	case ProviderOllama:
		ollamaCfg := ollama.Config{
			BaseURL: cfg.BaseURL,
			Model:   cfg.Model,
		}
		if timeout > 0 {
			ollamaCfg.HTTPClient = &http.Client{Timeout: timeout}
		}
		client, err := ollama.New(ollamaCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create ollama client: %w", err)
		}
		return NewOllamaAdapter(client), nil

	case ProviderOpenAI, ProviderDeepSeek, ProviderQwen:
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = defaultBaseURL(cfg.Name)
		}
		return NewOpenAIAdapter(OpenAIConfig{
			Name:    strings.ToLower(cfg.Name),
			APIKey:  cfg.APIKey,
			BaseURL: baseURL,
			Model:   cfg.Model,
			Timeout: timeout,
		})

	case ProviderAnthropic:
		return NewAnthropicAdapter(AnthropicConfig{
			APIKey:  cfg.APIKey,
			BaseURL: cfg.BaseURL,
			Model:   cfg.Model,
			Timeout: timeout,
		})

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
}

func defaultBaseURL(name string) string {
	switch strings.ToLower(name) {
	case ProviderDeepSeek:
		return DeepSeekBaseURL
	case ProviderQwen:
		return QwenBaseURL
	default:
		return ""
	}
}

func parseTimeout(raw string) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", raw, err)
	}
	return d, nil
}

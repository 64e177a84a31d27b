package config

import (
	"os"
	"testing"
)

func TestValidateLLMConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     LLMConfig
		wantErr bool
	}{
		{
			name:    "default ollama",
			cfg:     LLMConfig{Providers: []ProviderConfig{DefaultOllamaProvider()}},
			wantErr: false,
		},
		{
			name:    "empty",
			cfg:     LLMConfig{},
			wantErr: true,
		},
		{
			name: "missing model",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "ollama", Enabled: true, Priority: 1},
			}},
			wantErr: true,
		},
		{
			name: "duplicate priority",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "ollama", Enabled: true, Priority: 1, Model: "llama3:8b"},
				{Name: "openai", Enabled: true, Priority: 1, Model: "gpt-4o-mini"},
			}},
			wantErr: true,
		},
		{
			name: "disabled duplicates are ignored",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "ollama", Enabled: true, Priority: 1, Model: "llama3:8b"},
				{Name: "openai", Enabled: false, Priority: 1, Model: "gpt-4o-mini"},
			}},
			wantErr: false,
		},
		{
			name: "bad retry delay",
			cfg: LLMConfig{
				Providers:  []ProviderConfig{DefaultOllamaProvider()},
				RetryDelay: "later",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateLLMConfig(&tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateLLMConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultOllamaProvider(t *testing.T) {
	t.Setenv("OLLAMA_BASE_URL", "")
	p := DefaultOllamaProvider()
	if p.BaseURL != "http://localhost:11434" || p.Model != "llama3:8b" || !p.Enabled {
		t.Errorf("unexpected default provider: %+v", p)
	}

	t.Setenv("OLLAMA_BASE_URL", "http://ollama:11434")
	if got := DefaultOllamaProvider().BaseURL; got != "http://ollama:11434" {
		t.Errorf("BaseURL = %s", got)
	}
}

func TestExpandEnvVar(t *testing.T) {
	os.Setenv("ADVISOR_TEST_KEY", "secret")
	defer os.Unsetenv("ADVISOR_TEST_KEY")

	if got := expandEnvVar("${ADVISOR_TEST_KEY}"); got != "secret" {
		t.Errorf("expandEnvVar() = %q, want secret", got)
	}
	if got := expandEnvVar("plain"); got != "plain" {
		t.Errorf("expandEnvVar() = %q, want plain", got)
	}
	if got := expandEnvVar("${ADVISOR_TEST_MISSING}"); got != "" {
		t.Errorf("expandEnvVar() = %q, want empty", got)
	}
}

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	JWT        JWTConfig
	Security   SecurityConfig

	// Advisor engine
	Advisor AdvisorConfig
	LLM     LLMConfig

	// Collaborator backends
	Qdrant      QdrantConfig
	Voyage      VoyageConfig
	SQLite      SQLiteConfig
	GoogleDrive GoogleDriveConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type JWTConfig struct {
	SecretKey string
	Issuer    string
	TTL       time.Duration
}

// SecurityConfig configures the request guards in front of every route.
type SecurityConfig struct {
	RateLimitPerMin     int
	AuthRateLimitPerMin int
	RateLimitWindow     time.Duration
	MaxRequestBytes     int64
	TrustedProxies      []string // may set X-Forwarded-For; empty trusts none
}

type AdvisorConfig struct {
	MaxConcurrent     int
	GenerationTimeout time.Duration
}

type QdrantConfig struct {
	URL            string
	APIKey         string
	CollectionName string
	VectorSize     int
	TopK           int
	MinScore       float64
}

type VoyageConfig struct {
	APIKey string
	Model  string
}

type SQLiteConfig struct {
	Path string
}

type GoogleDriveConfig struct {
	CredentialsPath string
	FolderID        string
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Auth & request guards
	cfg.JWT.SecretKey = viper.GetString("jwt.secret_key")
	if secret := viper.GetString("jwt_secret_key"); secret != "" {
		cfg.JWT.SecretKey = secret
	}
	cfg.JWT.Issuer = viper.GetString("jwt.issuer")
	cfg.JWT.TTL = viper.GetDuration("jwt.ttl")

	cfg.Security.RateLimitPerMin = viper.GetInt("security.rate_limit_per_min")
	cfg.Security.AuthRateLimitPerMin = viper.GetInt("security.auth_rate_limit_per_min")
	cfg.Security.RateLimitWindow = viper.GetDuration("security.rate_limit_window")
	cfg.Security.MaxRequestBytes = viper.GetInt64("security.max_request_bytes")
	cfg.Security.TrustedProxies = viper.GetStringSlice("security.trusted_proxies")

	// Advisor engine
	cfg.Advisor.MaxConcurrent = viper.GetInt("advisor.max_concurrent")
	cfg.Advisor.GenerationTimeout = viper.GetDuration("advisor.generation_timeout")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")
	cfg.LLM.Providers = loadProviders()

	// Collaborator backends
	cfg.Qdrant.URL = viper.GetString("qdrant.url")
	cfg.Qdrant.APIKey = viper.GetString("qdrant.api_key")
	cfg.Qdrant.CollectionName = viper.GetString("qdrant.collection_name")
	cfg.Qdrant.VectorSize = viper.GetInt("qdrant.vector_size")
	cfg.Qdrant.TopK = viper.GetInt("qdrant.top_k")
	cfg.Qdrant.MinScore = viper.GetFloat64("qdrant.min_score")
	if qdrantURL := viper.GetString("qdrant_url"); qdrantURL != "" {
		cfg.Qdrant.URL = qdrantURL
	}

	cfg.Voyage.APIKey = viper.GetString("voyage.api_key")
	cfg.Voyage.Model = viper.GetString("voyage.model")
	if voyageKey := viper.GetString("voyage_api_key"); voyageKey != "" {
		cfg.Voyage.APIKey = voyageKey
	}

	cfg.SQLite.Path = viper.GetString("sqlite.path")

	cfg.GoogleDrive.CredentialsPath = viper.GetString("google_drive.credentials_path")
	cfg.GoogleDrive.FolderID = viper.GetString("google_drive.folder_id")
	if driveCreds := viper.GetString("google_drive_credentials"); driveCreds != "" {
		cfg.GoogleDrive.CredentialsPath = driveCreds
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadProviders reads llm.providers. Without a providers section the service
// talks to a local Ollama daemon.
func loadProviders() []ProviderConfig {
	var providers []ProviderConfig
	if providersList, ok := viper.Get("llm.providers").([]interface{}); ok {
		for _, p := range providersList {
			providerMap, ok := p.(map[string]interface{})
			if !ok {
				continue
			}
			providers = append(providers, ProviderConfig{
				Name:     getStringFromMap(providerMap, "name"),
				Enabled:  getBoolFromMap(providerMap, "enabled"),
				Priority: getIntFromMap(providerMap, "priority"),
				APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
				BaseURL:  expandEnvVar(getStringFromMap(providerMap, "base_url")),
				Model:    getStringFromMap(providerMap, "model"),
				Timeout:  getStringFromMap(providerMap, "timeout"),
			})
		}
	}

	if len(providers) == 0 {
		providers = []ProviderConfig{DefaultOllamaProvider()}
	}
	return providers
}

// DefaultOllamaProvider is the provider used when none is configured.
func DefaultOllamaProvider() ProviderConfig {
	baseURL := os.Getenv("OLLAMA_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	return ProviderConfig{
		Name:     "ollama",
		Enabled:  true,
		Priority: 1,
		BaseURL:  baseURL,
		Model:    "llama3:8b",
		Timeout:  "180s",
	}
}

func (c *Config) validate() error {
	if c.JWT.SecretKey == "" {
		return fmt.Errorf("jwt.secret_key is required")
	}
	if c.Advisor.MaxConcurrent <= 0 {
		return fmt.Errorf("advisor.max_concurrent must be positive")
	}
	if c.SQLite.Path == "" {
		return fmt.Errorf("sqlite.path is required")
	}
	return validateLLMConfig(&c.LLM)
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8000)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("jwt.issuer", "my-ai-advisor")
	viper.SetDefault("jwt.ttl", "30m")

	viper.SetDefault("security.rate_limit_per_min", 100)
	viper.SetDefault("security.auth_rate_limit_per_min", 10)
	viper.SetDefault("security.rate_limit_window", "60s")
	viper.SetDefault("security.max_request_bytes", 10*1024*1024)

	viper.SetDefault("advisor.max_concurrent", 8)
	viper.SetDefault("advisor.generation_timeout", "180s")

	viper.SetDefault("qdrant.collection_name", "official_documents")
	viper.SetDefault("qdrant.vector_size", 1024)
	viper.SetDefault("qdrant.top_k", 4)
	viper.SetDefault("qdrant.min_score", 0.3)
	viper.SetDefault("voyage.model", "voyage-multilingual-2")

	viper.SetDefault("sqlite.path", "./data/advisor.db")

	// LLM defaults: a single attempt, no fallback
	viper.SetDefault("llm.fallback_enabled", false)
	viper.SetDefault("llm.retry_attempts", 1)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "0s")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}

		if !provider.Enabled {
			continue
		}
		enabledCount++

		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if priorityMap[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}
	if cfg.RetryDelay != "" {
		if _, err := time.ParseDuration(cfg.RetryDelay); err != nil {
			return fmt.Errorf("llm.retry_delay: %w", err)
		}
	}

	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}

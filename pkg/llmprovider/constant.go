package llmprovider

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"

	ProviderOllama    = "ollama"
	ProviderOpenAI    = "openai"
	ProviderDeepSeek  = "deepseek"
	ProviderQwen      = "qwen"
	ProviderAnthropic = "anthropic"

	// OpenAI-compatible endpoints reachable through the openai adapter.
	DeepSeekBaseURL = "https://api.deepseek.com/v1"
	QwenBaseURL     = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"

	defaultAnthropicMaxTokens = 1024
)

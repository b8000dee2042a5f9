package config

// AssistantConfig 客服助手配置。ApiKey 为空时走内置规则应答
type AssistantConfig struct {
	ApiKey       string `json:"api_key" yaml:"api_key"`
	BaseURL      string `json:"base_url" yaml:"base_url"`
	Model        string `json:"model" yaml:"model"`
	DelayMs      int    `json:"delay_ms" yaml:"delay_ms"`
	UseLLM       bool   `json:"use_llm" yaml:"use_llm"`
	SystemPrompt string `json:"system_prompt" yaml:"system_prompt"`
}

func ProvideAssistantConfig(cfg *Config) *AssistantConfig {
	return cfg.Assistant
}

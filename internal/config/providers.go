package config

type ProviderInfo struct {
	ID           string
	Name         string
	Description  string
	NeedsAPIKey  bool
	NeedsBaseURL bool
	SignupURL    string
	Models       []string
	DefaultModel string
}

var Providers = []ProviderInfo{
	{
		ID:           "openai",
		Name:         "OpenAI",
		Description:  "GPT-4 family, default prompt engineer",
		NeedsAPIKey:  true,
		SignupURL:    "https://platform.openai.com/api-keys",
		Models:       []string{"gpt-4-turbo", "gpt-4o", "gpt-4o-mini", "gpt-4", "gpt-3.5-turbo"},
		DefaultModel: "gpt-4-turbo",
	},
	{
		ID:           "xai",
		Name:         "xAI",
		Description:  "Grok, real-time knowledge",
		NeedsAPIKey:  true,
		SignupURL:    "https://console.x.ai/",
		Models:       []string{"grok-2-1212", "grok-beta"},
		DefaultModel: "grok-2-1212",
	},
	{
		ID:           "anthropic",
		Name:         "Anthropic",
		Description:  "Claude, long-form writing",
		NeedsAPIKey:  true,
		SignupURL:    "https://console.anthropic.com/",
		Models:       []string{"claude-3-opus-20240229", "claude-3-5-sonnet-20241022", "claude-3-5-haiku-20241022"},
		DefaultModel: "claude-3-5-sonnet-20241022",
	},
	{
		ID:           "gemini",
		Name:         "Google Gemini",
		Description:  "Multimodal, large context",
		NeedsAPIKey:  true,
		SignupURL:    "https://aistudio.google.com/app/apikey",
		Models:       []string{"gemini-1.5-pro", "gemini-1.5-flash", "gemini-2.0-flash"},
		DefaultModel: "gemini-1.5-pro",
	},
	{
		ID:           "ollama",
		Name:         "Ollama",
		Description:  "Local, free, private",
		NeedsAPIKey:  false,
		Models:       []string{"llama3.1:8b", "llama3.1:70b", "qwen2.5:7b", "mistral:7b"},
		DefaultModel: "llama3.1:8b",
	},
	{
		ID:           "custom",
		Name:         "Custom",
		Description:  "Any OpenAI-compatible endpoint",
		NeedsAPIKey:  false,
		NeedsBaseURL: true,
	},
}

func GetProvider(id string) *ProviderInfo {
	for _, p := range Providers {
		if p.ID == id {
			return &p
		}
	}
	return nil
}

// Configured reports whether a provider family has what it needs to serve requests
func (c *Config) Configured(id string) bool {
	info := GetProvider(id)
	if info == nil {
		return false
	}
	pc := c.ProviderSettings(id)
	if info.NeedsAPIKey && pc.APIKey == "" {
		return false
	}
	if info.NeedsBaseURL && pc.BaseURL == "" {
		return false
	}
	return true
}

package config

import "Crewflow/internal/llm"

// Credential environment variable names, in checklist order.
const (
	EnvOpenAIKey    = "OPENAI_API_KEY"
	EnvSerperKey    = "SERPER_API_KEY"
	EnvAnthropicKey = "ANTHROPIC_API_KEY"
	EnvGroqKey      = "GROQ_API_KEY"
	EnvOpenAIBase   = "OPENAI_API_BASE"
	EnvOpenAIModel  = "OPENAI_MODEL_NAME"
)

// Credential is one row of the environment checklist.
type Credential struct {
	Name     string
	Set      bool
	Required bool
}

// Checklist reports the four credentials in a fixed order. Required marks the
// key the selected provider needs.
func (c Config) Checklist() []Credential {
	required := c.requiredKey()
	rows := []Credential{
		{Name: EnvOpenAIKey, Set: c.Credentials.OpenAIAPIKey != ""},
		{Name: EnvSerperKey, Set: c.Credentials.SerperAPIKey != ""},
		{Name: EnvAnthropicKey, Set: c.Credentials.AnthropicAPIKey != ""},
		{Name: EnvGroqKey, Set: c.Credentials.GroqAPIKey != ""},
	}
	for i := range rows {
		rows[i].Required = rows[i].Name == required
	}
	return rows
}

// Missing lists the settings that keep the configured provider from running.
func (c Config) Missing() []string {
	var missing []string
	if c.LLM.Provider == llm.ProviderLocal && c.LLM.BaseURL == "" {
		missing = append(missing, EnvOpenAIBase)
	}
	for _, row := range c.Checklist() {
		if row.Required && !row.Set {
			missing = append(missing, row.Name)
		}
	}
	return missing
}

// Ready reports whether every required credential is present.
func (c Config) Ready() bool {
	return len(c.Missing()) == 0
}

// SearchEnabled reports whether the web search tool can be used.
func (c Config) SearchEnabled() bool {
	return c.Credentials.SerperAPIKey != ""
}

// requiredKey is the key the provider needs; a local OpenAI-compatible
// endpoint needs none.
func (c Config) requiredKey() string {
	switch c.LLM.Provider {
	case llm.ProviderAnthropic:
		return EnvAnthropicKey
	case llm.ProviderGroq:
		return EnvGroqKey
	case llm.ProviderLocal:
		return ""
	default:
		if c.LLM.BaseURL != "" {
			return ""
		}
		return EnvOpenAIKey
	}
}

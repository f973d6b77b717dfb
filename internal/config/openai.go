package config

const (
	envOpenAIBaseURL = "OPENAI_BASE_URL"
	envOpenAIKey     = "OPENAI_API_KEY"
	envOpenAIModel   = "OPENAI_MODEL"

	defaultOpenAIModel = "gpt-3.5-turbo"
)

// OpenAIConfig controls how we talk to the text-generation API.
type OpenAIConfig struct {
	BaseURL string
	APIKey  string
	Model   string
}

func loadOpenAI() OpenAIConfig {
	return OpenAIConfig{
		BaseURL: envOrDefault(envOpenAIBaseURL, ""),
		APIKey:  envOrDefault(envOpenAIKey, ""),
		Model:   envOrDefault(envOpenAIModel, defaultOpenAIModel),
	}
}

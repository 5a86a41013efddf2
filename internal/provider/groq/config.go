package groq

// Config contains Groq probe configuration.
// All fields map to OpenAI SDK options, since Groq serves an OpenAI-compatible API:
//   - APIKey: Maps to option.WithAPIKey()
//   - BaseURL: Maps to option.WithBaseURL()
//   - Timeout: Maps to option.WithRequestTimeout() (in seconds)
//   - MaxRetries: Maps to option.WithMaxRetries()
type Config struct {
	APIKey     string `env:"GROQ_API_KEY"`
	BaseURL    string `env:"GROQ_BASE_URL"    envDefault:"https://api.groq.com/openai/v1"`
	Timeout    int    `env:"GROQ_TIMEOUT"     envDefault:"60"`
	MaxRetries int    `env:"GROQ_MAX_RETRIES" envDefault:"3"`
}

package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/dig"

	"github.com/davidbz/terra/internal/cache/redis"
	"github.com/davidbz/terra/internal/domain"
	"github.com/davidbz/terra/internal/observability"
	"github.com/davidbz/terra/internal/provider/groq"
)

// Config represents the estimator configuration.
type Config struct {
	Server   ServerConfig
	CORS     CORSConfig
	Log      observability.LogConfig
	Estimate EstimateConfig
	Redis    redis.Config
	Groq     groq.Config
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port         int `env:"SERVER_PORT"          envDefault:"8080"`
	ReadTimeout  int `env:"SERVER_READ_TIMEOUT"  envDefault:"30"`
	WriteTimeout int `env:"SERVER_WRITE_TIMEOUT" envDefault:"30"`
}

// CORSConfig contains CORS policy settings.
type CORSConfig struct {
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS"   envSeparator:"," envDefault:"*"`
	AllowedMethods   []string `env:"CORS_ALLOWED_METHODS"   envSeparator:"," envDefault:"GET,POST,OPTIONS"`
	AllowedHeaders   []string `env:"CORS_ALLOWED_HEADERS"   envSeparator:"," envDefault:"Content-Type,Authorization"`
	ExposedHeaders   []string `env:"CORS_EXPOSED_HEADERS"   envSeparator:"," envDefault:"X-Trace-Id,X-Request-Id,X-Terra-Cache,Content-Disposition"`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS"                  envDefault:"true"`
	MaxAge           int      `env:"CORS_MAX_AGE"                            envDefault:"86400"`
}

// EstimateConfig contains the default usage parameters and export settings.
type EstimateConfig struct {
	TokensPerQuestion      int64  `env:"ESTIMATE_TOKENS_PER_QUESTION"  envDefault:"10000"`
	UserCount              int64  `env:"ESTIMATE_USERS"                envDefault:"3"`
	QuestionsPerUserPerDay int64  `env:"ESTIMATE_QUESTIONS_PER_USER"   envDefault:"20"`
	QuestionsPerReport     int64  `env:"ESTIMATE_QUESTIONS_PER_REPORT" envDefault:"30"`
	ReportsPerDay          int64  `env:"ESTIMATE_REPORTS_PER_DAY"      envDefault:"2"`
	ReportFile             string `env:"ESTIMATE_REPORT_FILE"          envDefault:"terra_price_estimate.txt"`
}

// Usage returns the configured defaults as usage parameters.
func (c EstimateConfig) Usage() domain.UsageParameters {
	return domain.UsageParameters{
		TokensPerQuestion:      c.TokensPerQuestion,
		UserCount:              c.UserCount,
		QuestionsPerUserPerDay: c.QuestionsPerUserPerDay,
		QuestionsPerReport:     c.QuestionsPerReport,
		ReportsPerDay:          c.ReportsPerDay,
	}
}

// DepConfig is used for dependency injection with dig.
type DepConfig struct {
	dig.Out
	*ServerConfig
	*CORSConfig
	*observability.LogConfig
	*EstimateConfig
	Redis *redis.Config
	Groq  *groq.Config
}

// Load loads environment files and parses configuration.
func Load() *Config {
	for _, file := range []string{".env"} {
		_ = godotenv.Load(file)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		panic(err)
	}

	return &cfg
}

// ParseDependenciesConfig returns pointers to sub-configs for dependency injection.
func ParseDependenciesConfig(cfg *Config) DepConfig {
	return DepConfig{
		dig.Out{},
		&cfg.Server,
		&cfg.CORS,
		&cfg.Log,
		&cfg.Estimate,
		&cfg.Redis,
		&cfg.Groq,
	}
}

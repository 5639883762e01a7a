package config

import "github.com/caarlos0/env/v10"

// Config centralizes service configuration.
type Config struct {
	HTTPPort          string `env:"HTTP_PORT" envDefault:"8080"`
	LLMAPIKey         string `env:"LLM_API_KEY,required"`
	LLMBaseURL        string `env:"LLM_BASE_URL" envDefault:"https://api.groq.com/openai/v1"`
	LLMModel          string `env:"LLM_MODEL" envDefault:"llama-3.3-70b-versatile"`
	LLMTimeoutSeconds int    `env:"LLM_TIMEOUT_SECONDS" envDefault:"30"`

	PersonalDataPath string `env:"PERSONAL_DATA_PATH" envDefault:"personal_data.json"`
	SessionsPath     string `env:"SESSIONS_PATH" envDefault:"sessions.json"`
	AsksPath         string `env:"ASKS_PATH" envDefault:"asks.json"`

	DefaultLanguage string `env:"DEFAULT_LANGUAGE" envDefault:"fr"`

	// When set, sessions and asks live in Postgres instead of flat files.
	DatabaseURL string `env:"DATABASE_URL"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	JWTSecret           string `env:"JWT_SECRET"`
	JWTAccessTTLMinutes int    `env:"JWT_ACCESS_TTL_MINUTES" envDefault:"60"`
	AdminPasswordHash   string `env:"ADMIN_PASSWORD_HASH"`

	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser     string `env:"SMTP_USER"`
	SMTPPass     string `env:"SMTP_PASS"`
	SMTPFrom     string `env:"SMTP_FROM"`
	SMTPFromName string `env:"SMTP_FROM_NAME"`
	SMTPUseTLS   bool   `env:"SMTP_USE_TLS" envDefault:"false"`
	NotifyEmail  string `env:"NOTIFY_EMAIL"`
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	Env         string `env:"APP_ENV" envDefault:"development"`
	ServerPort  string `env:"PORT" envDefault:"8080"`
	BaseURL     string `env:"BASE_URL" envDefault:"http://localhost:8080"`
	DBDriver    string `env:"DB_DRIVER" envDefault:"postgres"`
	DatabaseURL string `env:"DATABASE_URL" envDefault:"host=localhost user=postgres password=postgres dbname=hr port=5432 sslmode=disable"`
	AutoMigrate bool   `env:"AUTO_MIGRATE" envDefault:"true"`
	ResetDB     bool   `env:"RESET_DB" envDefault:"false"`

	RedisAddr string `env:"REDIS_ADDR"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	SessionSecret string        `env:"SESSION_SECRET,notEmpty"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"12h"`
	CookieSecure  bool          `env:"COOKIE_SECURE" envDefault:"false"`

	Storage StorageConfig `envPrefix:"STORAGE_"`

	UploadMaxBytes int64 `env:"UPLOAD_MAX_BYTES" envDefault:"10485760"`
	ResumeRequired bool  `env:"RESUME_REQUIRED" envDefault:"false"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`

	SMTP SMTPConfig `envPrefix:"SMTP_"`

	AdminEmail    string `env:"ADMIN_EMAIL"`
	AdminPassword string `env:"ADMIN_PASSWORD"`
}

// StorageConfig selects and configures the resume object store.
type StorageConfig struct {
	Type      string `env:"TYPE" envDefault:"local"` // local, s3
	BasePath  string `env:"BASE_PATH" envDefault:"./uploads/resumes"`
	BaseURL   string `env:"BASE_URL"`
	Bucket    string `env:"BUCKET" envDefault:"resumes"`
	Region    string `env:"REGION" envDefault:"auto"`
	Endpoint  string `env:"ENDPOINT"`
	AccessKey string `env:"ACCESS_KEY"`
	SecretKey string `env:"SECRET_KEY"`
}

// SMTPConfig configures staff notifications. An empty Host disables them.
type SMTPConfig struct {
	Host     string `env:"HOST"`
	Port     int    `env:"PORT" envDefault:"587"`
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD"`
	From     string `env:"FROM"`
	NotifyTo string `env:"NOTIFY_TO"`
}

// Load reads an optional .env file and builds Config from the environment.
func Load() (*Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Storage.Type == "local" && cfg.Storage.BaseURL == "" {
		cfg.Storage.BaseURL = cfg.BaseURL + "/uploads/resumes"
	}
	return &cfg, nil
}

// IsProduction reports whether the service runs with production defaults.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// StatelessSessions reports whether sessions live only in the signed cookie.
func (c *Config) StatelessSessions() bool {
	return c.RedisAddr == ""
}

package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"storefront/internal/core/domain/model/kernel"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const serverlessUploadsDir = "storefront-uploads"

type Config struct {
	HTTPPort string `env:"PORT" envDefault:"3001"`

	// DatabaseURL wins over the DB_* parts when set.
	DatabaseURL string `env:"DATABASE_URL"`
	DBHost      string `env:"DB_HOST" envDefault:"localhost"`
	DBPort      string `env:"DB_PORT" envDefault:"5432"`
	DBUser      string `env:"DB_USER" envDefault:"postgres"`
	DBPassword  string `env:"DB_PASSWORD"`
	DBName      string `env:"DB_NAME" envDefault:"storefront"`
	DBSslMode   string `env:"DB_SSLMODE" envDefault:"disable"`

	AdminUser string `env:"ADMIN_USER" envDefault:"admin"`
	AdminPass string `env:"ADMIN_PASS" envDefault:"mknstore"`

	FrontendURL  string   `env:"FRONTEND_URL"`
	FrontendURLs []string `env:"FRONTEND_URLS" envSeparator:","`
	AppEnv       string   `env:"APP_ENV" envDefault:"development"`

	UploadsDir string `env:"UPLOADS_DIR"`

	AmountParseMode          string        `env:"AMOUNT_PARSE_MODE" envDefault:"lenient"`
	StorageProbeInterval     time.Duration `env:"STORAGE_PROBE_INTERVAL" envDefault:"15s"`
	OpenAPIRequestValidation bool          `env:"OPENAPI_REQUEST_VALIDATION" envDefault:"true"`
	BodyLimit                string        `env:"BODY_LIMIT" envDefault:"50M"`
	LogLevel                 string        `env:"LOG_LEVEL" envDefault:"info"`

	// Serverless platform markers.
	LambdaFunctionName string `env:"AWS_LAMBDA_FUNCTION_NAME"`
	Vercel             string `env:"VERCEL"`
	KService           string `env:"K_SERVICE"`
}

// LoadConfig reads .env when present and then the process environment.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	_, modeErr := c.ParseMode()
	_, levelErr := c.SlogLevel()

	var intervalErr error
	if c.StorageProbeInterval <= 0 {
		intervalErr = fmt.Errorf("STORAGE_PROBE_INTERVAL must be positive, got %s", c.StorageProbeInterval)
	}

	return errors.Join(modeErr, levelErr, intervalErr)
}

// DSN returns DATABASE_URL or a keyword/value DSN assembled from the DB_* parts.
func (c Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}

	parts := []string{
		"host=" + c.DBHost,
		"port=" + c.DBPort,
		"user=" + c.DBUser,
		"dbname=" + c.DBName,
		"sslmode=" + c.DBSslMode,
	}
	if c.DBPassword != "" {
		parts = append(parts, "password="+c.DBPassword)
	}
	return strings.Join(parts, " ")
}

func (c Config) ParseMode() (kernel.ParseMode, error) {
	return kernel.ParseModeFromString(c.AmountParseMode)
}

func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return level, nil
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(strings.TrimSpace(c.AppEnv), "production")
}

func (c Config) IsServerless() bool {
	return c.LambdaFunctionName != "" || c.Vercel != "" || c.KService != ""
}

// AllowedOrigins prefers FRONTEND_URLS and falls back to FRONTEND_URL, which may
// itself be a comma-separated list.
func (c Config) AllowedOrigins() []string {
	raw := c.FrontendURLs
	if len(raw) == 0 && c.FrontendURL != "" {
		raw = strings.Split(c.FrontendURL, ",")
	}

	origins := make([]string, 0, len(raw))
	for _, o := range raw {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// ResolvedUploadsDir is UPLOADS_DIR, or a temp directory on serverless platforms
// where the working directory is read-only, or ./uploads.
func (c Config) ResolvedUploadsDir() string {
	switch {
	case c.UploadsDir != "":
		return c.UploadsDir
	case c.IsServerless():
		return filepath.Join(os.TempDir(), serverlessUploadsDir)
	default:
		return "uploads"
	}
}

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	DB        DBConfig
	S3        S3Config
	Log       LogConfig
	OCR       OCRConfig
	Gotenberg GotenbergConfig
	CORS      CORSConfig
	Queue     QueueConfig
}

// QueueConfig holds extraction queue worker settings.
type QueueConfig struct {
	PollIntervalSecs int `mapstructure:"poll_interval_secs"`
	Concurrency      int `mapstructure:"concurrency"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// OCRProviderConfig holds settings for a single vision-model provider.
type OCRProviderConfig struct {
	Provider     string `mapstructure:"provider"`
	APIKey       string `mapstructure:"api_key"`
	Endpoint     string `mapstructure:"endpoint"`
	DefaultModel string `mapstructure:"default_model"`
	TimeoutSecs  int    `mapstructure:"timeout_secs"`
}

// OCRConfig holds vision-model settings with multi-provider fallback.
type OCRConfig struct {
	Primary   OCRProviderConfig `mapstructure:"primary"`
	Secondary OCRProviderConfig `mapstructure:"secondary"`
}

// SecondaryConfig returns the secondary provider config, or nil if not configured.
func (o *OCRConfig) SecondaryConfig() *OCRProviderConfig {
	if o.Secondary.Provider != "" {
		return &o.Secondary
	}
	return nil
}

// GotenbergConfig holds settings for the document conversion service.
type GotenbergConfig struct {
	URL         string `mapstructure:"url"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// S3Config holds AWS S3 settings.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the ZOLLKIE_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("ZOLLKIE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "zollkie")
	v.SetDefault("db.password", "zollkie_secret")
	v.SetDefault("db.name", "zollkie_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// S3 defaults
	v.SetDefault("s3.region", "eu-central-1")
	v.SetDefault("s3.bucket", "zollkie-uploads")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.max_file_size_mb", 50)
	v.SetDefault("s3.presign_expiry", 3600)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Queue defaults
	v.SetDefault("queue.poll_interval_secs", 5)
	v.SetDefault("queue.concurrency", 3)

	// OCR defaults
	v.SetDefault("ocr.primary.provider", "claude")
	v.SetDefault("ocr.primary.api_key", "")
	v.SetDefault("ocr.primary.endpoint", "")
	v.SetDefault("ocr.primary.default_model", "")
	v.SetDefault("ocr.primary.timeout_secs", 120)
	v.SetDefault("ocr.secondary.provider", "")
	v.SetDefault("ocr.secondary.api_key", "")
	v.SetDefault("ocr.secondary.endpoint", "")
	v.SetDefault("ocr.secondary.default_model", "")
	v.SetDefault("ocr.secondary.timeout_secs", 120)

	// Gotenberg defaults
	v.SetDefault("gotenberg.url", "http://localhost:3500")
	v.SetDefault("gotenberg.timeout_secs", 60)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                  "ZOLLKIE_SERVER_PORT",
		"server.read_timeout":          "ZOLLKIE_SERVER_READ_TIMEOUT",
		"server.write_timeout":         "ZOLLKIE_SERVER_WRITE_TIMEOUT",
		"server.environment":           "ZOLLKIE_SERVER_ENVIRONMENT",
		"db.host":                      "ZOLLKIE_DB_HOST",
		"db.port":                      "ZOLLKIE_DB_PORT",
		"db.user":                      "ZOLLKIE_DB_USER",
		"db.password":                  "ZOLLKIE_DB_PASSWORD",
		"db.name":                      "ZOLLKIE_DB_NAME",
		"db.sslmode":                   "ZOLLKIE_DB_SSLMODE",
		"db.max_open":                  "ZOLLKIE_DB_MAX_OPEN",
		"db.max_idle":                  "ZOLLKIE_DB_MAX_IDLE",
		"s3.region":                    "ZOLLKIE_S3_REGION",
		"s3.bucket":                    "ZOLLKIE_S3_BUCKET",
		"s3.endpoint":                  "ZOLLKIE_S3_ENDPOINT",
		"s3.access_key":                "ZOLLKIE_S3_ACCESS_KEY",
		"s3.secret_key":                "ZOLLKIE_S3_SECRET_KEY",
		"s3.max_file_size_mb":          "ZOLLKIE_S3_MAX_FILE_SIZE_MB",
		"s3.presign_expiry":            "ZOLLKIE_S3_PRESIGN_EXPIRY",
		"log.level":                    "ZOLLKIE_LOG_LEVEL",
		"log.format":                   "ZOLLKIE_LOG_FORMAT",
		"cors.allowed_origins":         "ZOLLKIE_CORS_ALLOWED_ORIGINS",
		"queue.poll_interval_secs":     "ZOLLKIE_QUEUE_POLL_INTERVAL_SECS",
		"queue.concurrency":            "ZOLLKIE_QUEUE_CONCURRENCY",
		"ocr.primary.provider":         "ZOLLKIE_OCR_PRIMARY_PROVIDER",
		"ocr.primary.api_key":          "ZOLLKIE_OCR_PRIMARY_API_KEY",
		"ocr.primary.endpoint":         "ZOLLKIE_OCR_PRIMARY_ENDPOINT",
		"ocr.primary.default_model":    "ZOLLKIE_OCR_PRIMARY_DEFAULT_MODEL",
		"ocr.primary.timeout_secs":     "ZOLLKIE_OCR_PRIMARY_TIMEOUT_SECS",
		"ocr.secondary.provider":       "ZOLLKIE_OCR_SECONDARY_PROVIDER",
		"ocr.secondary.api_key":        "ZOLLKIE_OCR_SECONDARY_API_KEY",
		"ocr.secondary.endpoint":       "ZOLLKIE_OCR_SECONDARY_ENDPOINT",
		"ocr.secondary.default_model":  "ZOLLKIE_OCR_SECONDARY_DEFAULT_MODEL",
		"ocr.secondary.timeout_secs":   "ZOLLKIE_OCR_SECONDARY_TIMEOUT_SECS",
		"gotenberg.url":                "ZOLLKIE_GOTENBERG_URL",
		"gotenberg.timeout_secs":       "ZOLLKIE_GOTENBERG_TIMEOUT_SECS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if ZOLLKIE_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("ZOLLKIE_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		MaxFileSizeMB: v.GetInt64("s3.max_file_size_mb"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	cfg.OCR = OCRConfig{
		Primary: OCRProviderConfig{
			Provider:     v.GetString("ocr.primary.provider"),
			APIKey:       v.GetString("ocr.primary.api_key"),
			Endpoint:     v.GetString("ocr.primary.endpoint"),
			DefaultModel: v.GetString("ocr.primary.default_model"),
			TimeoutSecs:  v.GetInt("ocr.primary.timeout_secs"),
		},
		Secondary: OCRProviderConfig{
			Provider:     v.GetString("ocr.secondary.provider"),
			APIKey:       v.GetString("ocr.secondary.api_key"),
			Endpoint:     v.GetString("ocr.secondary.endpoint"),
			DefaultModel: v.GetString("ocr.secondary.default_model"),
			TimeoutSecs:  v.GetInt("ocr.secondary.timeout_secs"),
		},
	}

	cfg.Gotenberg = GotenbergConfig{
		URL:         v.GetString("gotenberg.url"),
		TimeoutSecs: v.GetInt("gotenberg.timeout_secs"),
	}

	cfg.Queue = QueueConfig{
		PollIntervalSecs: v.GetInt("queue.poll_interval_secs"),
		Concurrency:      v.GetInt("queue.concurrency"),
	}

	return cfg, nil
}

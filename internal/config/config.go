// Package config loads the server configuration from the environment,
// an optional .env file and an optional YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration of the server.
type Config struct {
	// HTTP Server
	APIURL           *url.URL
	Port             string
	GinMode          string
	CORSAllowOrigins []string
	EnablePprof      bool

	// Logging
	LogFormat string
	LogLevel  string

	// Database. Postgres is used when DBHost is set, sqlite in DataDir otherwise.
	DataDir    string
	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string

	// Cache
	RedisURL string
	CacheTTL time.Duration

	// AMQP
	AMQPURL      string
	AMQPExchange string

	// Sessions
	SessionTTL time.Duration

	// OCR
	TesseractPath string
	OCRLanguage   string
	MaxUploadSize int64
}

func defaults(v *viper.Viper) {
	v.SetDefault("api_url", "http://localhost:8080")
	v.SetDefault("port", "8080")
	v.SetDefault("gin_mode", "release")
	v.SetDefault("cors_allow_origins", "")
	v.SetDefault("enable_pprof", false)

	v.SetDefault("log_format", "")
	v.SetDefault("log_level", "")

	v.SetDefault("data_dir", "data")
	v.SetDefault("db_host", "")
	v.SetDefault("db_port", 5432)
	v.SetDefault("db_user", "")
	v.SetDefault("db_password", "")
	v.SetDefault("db_name", "cash_stuffing")

	v.SetDefault("redis_url", "")
	v.SetDefault("cache_ttl", 10*time.Minute)

	v.SetDefault("amqp_url", "")
	v.SetDefault("amqp_exchange", "cash-stuffing")

	v.SetDefault("session_ttl", 7*24*time.Hour)

	v.SetDefault("tesseract_path", "tesseract")
	v.SetDefault("ocr_language", "deu")
	v.SetDefault("max_upload_size", 10<<20)
}

// Load reads the configuration.
//
// Values from a .env file in the working directory never override variables
// that are already set in the environment. Environment variables take
// precedence over the file named in CONFIG_FILE.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	defaults(v)
	v.AutomaticEnv()

	if file := v.GetString("config_file"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", file, err)
		}
	}

	apiURL, err := url.Parse(v.GetString("api_url"))
	if err != nil {
		return nil, fmt.Errorf("environment variable API_URL must be a valid URL: %w", err)
	}

	return &Config{
		APIURL:           apiURL,
		Port:             v.GetString("port"),
		GinMode:          v.GetString("gin_mode"),
		CORSAllowOrigins: strings.Fields(v.GetString("cors_allow_origins")),
		EnablePprof:      v.GetBool("enable_pprof"),

		LogFormat: v.GetString("log_format"),
		LogLevel:  v.GetString("log_level"),

		DataDir:    v.GetString("data_dir"),
		DBHost:     v.GetString("db_host"),
		DBPort:     v.GetInt("db_port"),
		DBUser:     v.GetString("db_user"),
		DBPassword: v.GetString("db_password"),
		DBName:     v.GetString("db_name"),

		RedisURL: v.GetString("redis_url"),
		CacheTTL: v.GetDuration("cache_ttl"),

		AMQPURL:      v.GetString("amqp_url"),
		AMQPExchange: v.GetString("amqp_exchange"),

		SessionTTL: v.GetDuration("session_ttl"),

		TesseractPath: v.GetString("tesseract_path"),
		OCRLanguage:   v.GetString("ocr_language"),
		MaxUploadSize: v.GetInt64("max_upload_size"),
	}, nil
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errs []error

	if c.APIURL == nil || c.APIURL.Scheme == "" || c.APIURL.Host == "" {
		errs = append(errs, errors.New("API_URL must be an absolute URL"))
	}

	switch c.GinMode {
	case "debug", "release", "test":
	default:
		errs = append(errs, fmt.Errorf("invalid GIN_MODE '%s': must be one of debug, release, test", c.GinMode))
	}

	switch c.LogFormat {
	case "", "human", "json":
	default:
		errs = append(errs, fmt.Errorf("invalid LOG_FORMAT '%s': must be human or json", c.LogFormat))
	}

	if c.DBHost == "" && c.DataDir == "" {
		errs = append(errs, errors.New("DATA_DIR must be set when no DB_HOST is configured"))
	}

	if c.AMQPURL != "" {
		if parsed, err := url.Parse(c.AMQPURL); err != nil {
			errs = append(errs, fmt.Errorf("invalid AMQP URL: %w", err))
		} else if parsed.Scheme != "amqp" && parsed.Scheme != "amqps" {
			errs = append(errs, fmt.Errorf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsed.Scheme))
		} else if c.AMQPExchange == "" {
			errs = append(errs, errors.New("AMQP exchange name cannot be empty when AMQP URL is provided"))
		}
	}

	if c.CacheTTL <= 0 {
		errs = append(errs, errors.New("CACHE_TTL must be positive"))
	}

	if c.SessionTTL <= 0 {
		errs = append(errs, errors.New("SESSION_TTL must be positive"))
	}

	if c.MaxUploadSize <= 0 {
		errs = append(errs, errors.New("MAX_UPLOAD_SIZE must be positive"))
	}

	return errors.Join(errs...)
}

// Postgres reports if postgres is used instead of sqlite.
func (c *Config) Postgres() bool {
	return c.DBHost != ""
}

// SQLitePath returns the path of the sqlite database file.
func (c *Config) SQLitePath() string {
	return filepath.Join(c.DataDir, "gorm.db")
}

// PostgresDSN returns the connection string for postgres.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
}

// Addr returns the address the server listens on.
func (c *Config) Addr() string {
	return ":" + c.Port
}

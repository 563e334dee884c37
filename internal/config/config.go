package config

import (
	"errors"
	"os"
	"strconv"
)

// DatabaseConfig holds settings for the optional PostgreSQL connection.
// The relational routes are mounted only when URL is set.
type DatabaseConfig struct {
	URL                string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// MinIOConfig holds settings for the optional raw-PDF archive bucket.
// The archive capability is enabled only when Endpoint is set.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	Port             string
	JWTSecret        string
	UploadLimitBytes int
	Database         DatabaseConfig
	MinIO            MinIOConfig
}

// ErrJWTSecretRequired is returned by Load when JWT_SECRET is not set.
// Tokens must never be signed with a default literal secret.
var ErrJWTSecretRequired = errors.New("JWT_SECRET is required")

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() (*AppConfig, error) {
	cfg := &AppConfig{
		Port:             getEnv("PORT", "3001"), // default only for non-sensitive value
		JWTSecret:        getEnv("JWT_SECRET", ""),
		UploadLimitBytes: getEnvInt("UPLOAD_LIMIT_BYTES", 10<<20),
		Database: DatabaseConfig{
			URL:                getEnv("DATABASE_URL", ""),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
	}

	if cfg.JWTSecret == "" {
		return nil, ErrJWTSecretRequired
	}

	return cfg, nil
}

// HasDatabase reports whether the relational capability is configured.
func (c *AppConfig) HasDatabase() bool {
	return c.Database.URL != ""
}

// HasArchive reports whether the object-storage archive capability is configured.
func (c *AppConfig) HasArchive() bool {
	return c.MinIO.Endpoint != ""
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

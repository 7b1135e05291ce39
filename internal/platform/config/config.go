// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Loaded once at startup, then only read.
  - DI-Friendly: Passed to components (database, token service, cookies) via constructors.
  - Zero Hidden State: No global variables are used to store config.
*/
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Upload backends.
const (
	UploadBackendLocal = "local"
	UploadBackendS3    = "s3"
)

// # Configuration Schema

// Config holds all runtime configuration for the API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8000"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`
	APIPrefix   string `env:"API_PREFIX"   envDefault:"/api/v1"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Access token signing
	JWTSecretKey       string `env:"JWT_SECRET_KEY,required,notEmpty"`
	JWTAlgorithm       string `env:"JWT_ALGORITHM"        envDefault:"HS256"`
	JWTExpirationHours int    `env:"JWT_EXPIRATION_HOURS" envDefault:"24"`

	// Cross-Origin Resource Sharing
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://localhost:5173"`

	// Image uploads
	UploadBackend      string `env:"UPLOAD_BACKEND"       envDefault:"local"`
	UploadDir          string `env:"UPLOAD_DIR"           envDefault:"./static/uploads"`
	UploadPublicPrefix string `env:"UPLOAD_PUBLIC_PREFIX" envDefault:"/static/uploads"`

	// Object Storage (S3-compatible), used when UploadBackend is "s3"
	S3Bucket          string `env:"S3_BUCKET"`
	S3Region          string `env:"S3_REGION"            envDefault:"auto"`
	S3Endpoint        string `env:"S3_ENDPOINT"`
	S3AccessKeyID     string `env:"S3_ACCESS_KEY_ID"`
	S3SecretAccessKey string `env:"S3_SECRET_ACCESS_KEY"`
	S3PublicBaseURL   string `env:"S3_PUBLIC_BASE_URL"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {
	cfg := &Config{}

	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate checks cross-field constraints env tags cannot express.
func (c *Config) validate() error {
	if c.JWTExpirationHours <= 0 {
		return fmt.Errorf("config: JWT_EXPIRATION_HOURS must be positive, got %d", c.JWTExpirationHours)
	}

	switch c.UploadBackend {
	case UploadBackendLocal:
	case UploadBackendS3:
		if c.S3Bucket == "" {
			return fmt.Errorf("config: S3_BUCKET is required when UPLOAD_BACKEND=s3")
		}
	default:
		return fmt.Errorf("config: unknown UPLOAD_BACKEND %q", c.UploadBackend)
	}

	return nil
}

// TokenTTL is the lifetime of access tokens and of the cookie carrying them.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.JWTExpirationHours) * time.Hour
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
// Cookies are only marked Secure in production.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

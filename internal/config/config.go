// config.go
//
// Manufacturing quality management service: complaints, 8D reports and corrective actions
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of qms.
// qms is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// qms is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with qms.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port           string `yaml:"port" env:"PORT" env-default:"8080"`
	AllowedOrigins string `yaml:"allowed_origins" env:"ALLOWED_ORIGINS" env-default:"*"`
	LogLevel       string `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`

	// Database configuration
	DBType            string `yaml:"db_type" env:"DB_TYPE" env-default:"postgres"` // postgres, mysql, sqlite, sqlserver
	DBHost            string `yaml:"db_host" env:"DB_HOST" env-default:"localhost"`
	DBPort            string `yaml:"db_port" env:"DB_PORT" env-default:"5432"`
	DBDatabase        string `yaml:"db_database" env:"DB_DATABASE"`
	DBUser            string `yaml:"db_user" env:"DB_USER"`
	DBPassword        string `yaml:"-" env:"DB_PASSWORD"`
	DBSSL             bool   `yaml:"db_ssl" env:"DB_SSL" env-default:"false"`
	DBConnectionLimit int    `yaml:"db_connection_limit" env:"DB_CONNECTION_LIMIT" env-default:"20"`
	DBAutoMigrate     bool   `yaml:"db_auto_migrate" env:"DB_AUTO_MIGRATE"`

	// Identity provider configuration
	Auth AuthConfig `yaml:"auth"`

	// Object store configuration
	Storage StorageConfig `yaml:"storage"`
}

// AuthConfig selects and configures the bearer token verifier.
type AuthConfig struct {
	// Provider is "jwks" (any OIDC provider publishing a JWKS, e.g. Firebase) or "authorizer".
	Provider string `yaml:"provider" env:"AUTH_PROVIDER" env-default:"jwks"`
	// EnableVerification set to false parses tokens without checking signatures. Local development only.
	EnableVerification bool   `yaml:"enable_verification" env:"AUTH_ENABLE_VERIFICATION"`
	JWKSURL            string `yaml:"jwks_url" env:"AUTH_JWKS_URL" env-default:"https://www.googleapis.com/service_accounts/v1/jwk/securetoken@system.gserviceaccount.com"`
	Issuer             string `yaml:"issuer" env:"AUTH_ISSUER"`
	Audience           string `yaml:"audience" env:"AUTH_AUDIENCE"`

	// Authorizer configuration
	AuthzURL      string `yaml:"authz_url" env:"AUTHZ_URL"`
	AuthzClientID string `yaml:"authz_client_id" env:"AUTHZ_CLIENT_ID"`
}

// StorageConfig configures the attachment object store.
type StorageConfig struct {
	Type           string        `yaml:"type" env:"STORAGE_TYPE" env-default:"gcs"` // gcs, s3, memory
	Bucket         string        `yaml:"bucket" env:"STORAGE_BUCKET" env-default:"complaint-attachments-mfg"`
	Prefix         string        `yaml:"prefix" env:"STORAGE_PREFIX"`
	S3Region       string        `yaml:"s3_region" env:"S3_REGION" env-default:"us-east-1"`
	S3Endpoint     string        `yaml:"s3_endpoint" env:"S3_ENDPOINT"`
	MaxUploadBytes int64         `yaml:"max_upload_bytes" env:"MAX_UPLOAD_BYTES" env-default:"26214400"`
	SignedURLTTL   time.Duration `yaml:"signed_url_ttl" env:"SIGNED_URL_TTL" env-default:"1h"`
	// SigningKey signs memory store download links.
	SigningKey string `yaml:"-" env:"STORAGE_SIGNING_KEY"`
}

// Defaults returns the configuration before any file or environment is applied.
// Booleans that default to true are set here: env-default would overwrite an explicit false.
func Defaults() *Config {
	return &Config{
		DBAutoMigrate: true,
		Auth:          AuthConfig{EnableVerification: true},
	}
}

// Load loads configuration from environment variables, layered over an optional
// YAML file named by CONFIG_FILE.
func Load() (*Config, error) {
	cfg := Defaults()

	var err error
	if file := os.Getenv("CONFIG_FILE"); file != "" {
		err = cleanenv.ReadConfig(file, cfg)
	} else {
		err = cleanenv.ReadEnv(cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks required fields for the selected database, auth provider and store.
func (c *Config) Validate() error {
	if c.DBDatabase == "" {
		return fmt.Errorf("DB_DATABASE is required")
	}
	if c.DBType != "sqlite" && c.DBUser == "" {
		return fmt.Errorf("DB_USER is required")
	}

	switch c.Auth.Provider {
	case "jwks":
		if c.Auth.EnableVerification {
			if c.Auth.JWKSURL == "" {
				return fmt.Errorf("AUTH_JWKS_URL is required")
			}
			if c.Auth.Issuer == "" || c.Auth.Audience == "" {
				return fmt.Errorf("AUTH_ISSUER and AUTH_AUDIENCE are required")
			}
		}
	case "authorizer":
		if c.Auth.AuthzURL == "" {
			return fmt.Errorf("AUTHZ_URL is required")
		}
		if c.Auth.AuthzClientID == "" {
			return fmt.Errorf("AUTHZ_CLIENT_ID is required")
		}
	default:
		return fmt.Errorf("unsupported auth provider: %s", c.Auth.Provider)
	}

	switch c.Storage.Type {
	case "gcs", "s3":
		if c.Storage.Bucket == "" {
			return fmt.Errorf("STORAGE_BUCKET is required")
		}
	case "memory":
	default:
		return fmt.Errorf("unsupported storage type: %s", c.Storage.Type)
	}

	if c.Storage.MaxUploadBytes <= 0 {
		return fmt.Errorf("MAX_UPLOAD_BYTES must be positive")
	}

	return nil
}

// Origins returns the CORS allow-list as fiber expects it.
func (c *Config) Origins() string {
	parts := strings.Split(c.AllowedOrigins, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return strings.Join(parts, ",")
}

// ProviderURL returns the identity provider endpoint used for reachability checks.
func (c *Config) ProviderURL() string {
	if c.Auth.Provider == "authorizer" {
		return c.Auth.AuthzURL
	}
	return c.Auth.JWKSURL
}

// Package config defines environment configuration structs and loaders.
package config

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type AppConfig struct {
	Environment string `env:"ENVIRONMENT, default=prod"`

	Report  ReportEnvConfig
	Dataset DatasetEnvConfig
	Server  ServerEnvConfig
	Client  ClientEnvConfig
}

// ReportEnvConfig holds defaults for curve evaluation and report output.
type ReportEnvConfig struct {
	PositiveLabel string `env:"ROC_POSITIVE_LABEL, default=1"`
	Format        string `env:"ROC_REPORT_FORMAT, default=yaml"`
	IncludePoints bool   `env:"ROC_INCLUDE_POINTS, default=false"`
}

// DatasetEnvConfig configures how input tables are parsed. An empty
// Delimiter means a comma.
type DatasetEnvConfig struct {
	Delimiter string `env:"ROC_DELIMITER"`
	HasHeader bool   `env:"ROC_HAS_HEADER, default=false"`
}

// ServerEnvConfig configures the curve API server.
type ServerEnvConfig struct {
	Host            string `env:"SERVER_HOST, default=0.0.0.0"`
	Port            int    `env:"SERVER_PORT, default=8888"`
	BodyLimit       int    `env:"SERVER_BODY_LIMIT, default=4194304"`
	// CompressMinSize is the smallest response body sent zstd-compressed.
	CompressMinSize int    `env:"SERVER_COMPRESS_MIN_SIZE, default=64"`
}

// ClientEnvConfig configures the curve API client.
type ClientEnvConfig struct {
	BaseURL string        `env:"CLIENT_BASE_URL"`
	Timeout time.Duration `env:"CLIENT_TIMEOUT, default=30s"`
	Zstd    bool          `env:"CLIENT_ZSTD, default=true"`
}

// LoadConfig reads the application configuration from the process environment.
func LoadConfig(ctx context.Context) (*AppConfig, error) {
	return LoadConfigFrom(ctx, envconfig.OsLookuper())
}

// LoadConfigFrom reads the application configuration through lookuper.
func LoadConfigFrom(ctx context.Context, lookuper envconfig.Lookuper) (*AppConfig, error) {
	cfg := &AppConfig{}
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, err
	}
	return cfg, nil
}

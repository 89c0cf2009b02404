package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	CatalogStatic = "static"
	CatalogYAML   = "yaml"
	CatalogHTTP   = "http"
	CatalogSQLite = "sqlite"
)

type Config struct {
	AppEnv    string `env:"APP_ENV" envDefault:"dev"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	GRPCPort int `env:"GRPC_PORT" envDefault:"8081"`
	HTTPPort int `env:"HTTP_PORT" envDefault:"8080"`

	Client

	Catalog Catalog `envPrefix:"CATALOG_"`
}

// Client is the part of the configuration needed to reach the storefront
// server. cartctl loads only this.
type Client struct {
	GRPCAddr    string        `env:"STOREFRONT_GRPC_ADDR" envDefault:"localhost:8081"`
	CallTimeout time.Duration `env:"STOREFRONT_CALL_TIMEOUT" envDefault:"5s"`
}

type Catalog struct {
	Source       string        `env:"SOURCE" envDefault:"static"`
	File         string        `env:"FILE"`
	URL          string        `env:"URL" envDefault:"http://localhost:3500/products"`
	FetchTimeout time.Duration `env:"FETCH_TIMEOUT" envDefault:"5s"`
	SQLiteDSN    string        `env:"SQLITE_DSN" envDefault:"file:catalog.db"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.Catalog.Source = strings.ToLower(strings.TrimSpace(cfg.Catalog.Source))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func LoadClient() (Client, error) {
	var cfg Client
	if err := env.Parse(&cfg); err != nil {
		return Client{}, fmt.Errorf("parse env: %w", err)
	}
	if strings.TrimSpace(cfg.GRPCAddr) == "" {
		return Client{}, fmt.Errorf("config: STOREFRONT_GRPC_ADDR must not be empty")
	}
	if cfg.CallTimeout <= 0 {
		return Client{}, fmt.Errorf("config: STOREFRONT_CALL_TIMEOUT must be positive")
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Catalog.Source {
	case CatalogStatic, CatalogHTTP, CatalogSQLite:
	case CatalogYAML:
		if strings.TrimSpace(c.Catalog.File) == "" {
			return fmt.Errorf("config: CATALOG_FILE is required for the yaml catalog")
		}
	default:
		return fmt.Errorf("config: unknown CATALOG_SOURCE %q", c.Catalog.Source)
	}
	if c.Catalog.FetchTimeout <= 0 {
		return fmt.Errorf("config: CATALOG_FETCH_TIMEOUT must be positive")
	}
	return nil
}

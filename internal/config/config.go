package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/nmaclean/liftbase/internal/matcher"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Liftbase"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"liftbase"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	Matcher struct {
		Threshold   float64       `envconfig:"MATCHER_THRESHOLD" default:"0.7"`
		BatchWindow int           `envconfig:"MATCHER_BATCH_WINDOW" default:"10"`
		CatalogTTL  time.Duration `envconfig:"MATCHER_CATALOG_TTL" default:"30m"`
		ResultTTL   time.Duration `envconfig:"MATCHER_RESULT_TTL" default:"5m"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

// MatcherConfig merges the env-tunable knobs into the engine defaults. The
// index TTL follows the catalog TTL since the index is derived from it.
func (c *Config) MatcherConfig() matcher.Config {
	cfg := matcher.DefaultConfig()
	cfg.DefaultThreshold = c.Matcher.Threshold
	cfg.BatchWindow = c.Matcher.BatchWindow
	cfg.CatalogTTL = c.Matcher.CatalogTTL
	cfg.IndexTTL = c.Matcher.CatalogTTL
	cfg.ResultTTL = c.Matcher.ResultTTL

	return cfg
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}

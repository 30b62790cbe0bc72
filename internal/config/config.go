package config

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port           string `env:"PORT" envDefault:"8080"`
	DBDSN          string `env:"DB_DSN" envDefault:"file:misfitpups?mode=memory&cache=shared"`
	LogFile        string `env:"LOG_FILE"`
	TemplatesDir   string `env:"TEMPLATES_DIR" envDefault:"./web/templates"`
	StaticDir      string `env:"STATIC_DIR" envDefault:"./web/static"`
	TemplateReload bool   `env:"TEMPLATE_RELOAD" envDefault:"false"`
}

// Load reads the process environment. Callers that want .env support load
// it before calling Load.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	log.Printf("[config] PORT=%s DB_DSN=%s LOG_FILE=%s TEMPLATES_DIR=%s STATIC_DIR=%s TEMPLATE_RELOAD=%t",
		cfg.Port, cfg.DBDSN, cfg.LogFile, cfg.TemplatesDir, cfg.StaticDir, cfg.TemplateReload)
	return cfg, nil
}

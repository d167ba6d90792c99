package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"GameBot/model"
)

// Config holds the runtime configuration for the bot.
type Config struct {
	// BotToken is the Telegram bot API token.
	BotToken string `env:"BOT_TOKEN,required"`
	// Quorum is the number of distinct signups on one option that locks
	// a session to that option.
	Quorum int `env:"QUORUM" envDefault:"4"`
	// CatalogPath optionally points to a YAML file overriding the
	// built-in option catalog.
	CatalogPath string `env:"CATALOG_PATH"`
	// Debug enables debug-level logging.
	Debug bool `env:"DEBUG"`
}

// defaultCatalog mirrors the game variants the bot has always offered.
func defaultCatalog() model.Catalog {
	return model.Catalog{
		{ID: "1", Label: "1000/100"},
		{ID: "2", Label: "500/100"},
		{ID: "3", Label: "300/50"},
		{ID: "4", Label: "大老二"},
		{ID: "5", Label: "十三支"},
	}
}

// Load reads configuration from the environment (and a .env file when
// present) and resolves the option catalog.
func Load() (Config, model.Catalog, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Quorum < 1 {
		return Config{}, nil, fmt.Errorf("QUORUM must be >= 1, got %d", cfg.Quorum)
	}

	catalog := defaultCatalog()
	if cfg.CatalogPath != "" {
		loaded, err := LoadCatalog(cfg.CatalogPath)
		if err != nil {
			return Config{}, nil, err
		}
		catalog = loaded
	}

	return cfg, catalog, nil
}

// LoadCatalog reads an option catalog from a YAML file: a list of
// {id, label} entries, in display order.
func LoadCatalog(path string) (model.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	var catalog model.Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	if err := validateCatalog(catalog); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return catalog, nil
}

func validateCatalog(catalog model.Catalog) error {
	if len(catalog) == 0 {
		return fmt.Errorf("at least one option is required")
	}
	seen := make(map[string]bool, len(catalog))
	for i, opt := range catalog {
		if opt.ID == "" {
			return fmt.Errorf("options[%d]: id is required", i)
		}
		if opt.Label == "" {
			return fmt.Errorf("options[%d]: label is required", i)
		}
		if seen[opt.ID] {
			return fmt.Errorf("options[%d]: duplicate id %q", i, opt.ID)
		}
		seen[opt.ID] = true
	}
	return nil
}

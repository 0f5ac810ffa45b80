package config

import (
	"errors"
	"fmt"
	"strings"

	"storefront/exporter/internal/domain"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Storefront StorefrontConfig `mapstructure:"storefront"`
	Export     ExportConfig     `mapstructure:"export"`
	Categories []CategoryConfig `mapstructure:"categories"`
	Log        LogConfig        `mapstructure:"log"`
}

// StorefrontConfig holds settings for the products.json endpoints
type StorefrontConfig struct {
	Timeout              int      `mapstructure:"timeout"` // seconds, per request
	PageLimit            int      `mapstructure:"page_limit"`
	MaxRequestsPerSecond int      `mapstructure:"max_requests_per_second"` // 0 disables pacing
	UserAgent            string   `mapstructure:"user_agent"`
	Proxies              []string `mapstructure:"proxies"`
}

// ExportConfig holds CSV output settings
type ExportConfig struct {
	OutputDir string `mapstructure:"output_dir"`
}

// CategoryConfig maps a category display name to its collection URL
type CategoryConfig struct {
	Name string `mapstructure:"name"`
	URL  string `mapstructure:"url"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads configuration from path, or from ./config.yaml when path is
// empty. Environment variables override file values and a .env file in the
// working directory is loaded first. A missing ./config.yaml is not an error.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file loaded, using process environment")
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
	}

	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		log.Warn("config.yaml not found in current directory, using defaults")
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// CategoryList returns the configured categories in processing order
func (c *Config) CategoryList() []domain.Category {
	categories := make([]domain.Category, 0, len(c.Categories))
	for _, category := range c.Categories {
		categories = append(categories, domain.Category{
			Name: category.Name,
			URL:  category.URL,
		})
	}
	return categories
}

func (c *Config) validate() error {
	if c.Storefront.Timeout <= 0 {
		return fmt.Errorf("storefront.timeout must be positive, got %d", c.Storefront.Timeout)
	}
	if c.Storefront.PageLimit <= 0 {
		return fmt.Errorf("storefront.page_limit must be positive, got %d", c.Storefront.PageLimit)
	}
	if c.Storefront.MaxRequestsPerSecond < 0 {
		return fmt.Errorf("storefront.max_requests_per_second must not be negative")
	}
	if c.Export.OutputDir == "" {
		return fmt.Errorf("export.output_dir is required")
	}
	if len(c.Categories) == 0 {
		return fmt.Errorf("at least one category is required")
	}
	for i, category := range c.Categories {
		if category.Name == "" || category.URL == "" {
			return fmt.Errorf("categories[%d] needs both name and url", i)
		}
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("storefront.timeout", 5)
	v.SetDefault("storefront.page_limit", 250)
	v.SetDefault("storefront.max_requests_per_second", 0)
	v.SetDefault("storefront.user_agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	v.SetDefault("storefront.proxies", []string{})

	v.SetDefault("export.output_dir", "data")

	v.SetDefault("categories", []map[string]any{
		{"name": "Robe Fleurie", "url": "https://robe-fleurie.fr/collections/robe-fleurie/products.json"},
		{"name": "Robe Fleurie Femme", "url": "https://robe-fleurie.fr/collections/robe-fleurie-femme/products.json"},
	})

	v.SetDefault("log.level", "info")
}

// Package config loads server and engine configuration from a YAML
// file with sane defaults for every key, so a missing file still
// yields a runnable configuration.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config is the full application configuration
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Costing  CostingConfig  `mapstructure:"costing"`
	Forecast ForecastConfig `mapstructure:"forecast"`
}

// AppConfig holds application-level settings
type AppConfig struct {
	Name     string `mapstructure:"name"`
	LogLevel string `mapstructure:"log_level"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// DatabaseConfig holds the SQLite database location
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// CostingConfig holds the shop rates used by BOM costing
type CostingConfig struct {
	CostPerGram            float64 `mapstructure:"cost_per_gram"`
	LaborRatePerHour       float64 `mapstructure:"labor_rate_per_hour"`
	ElectricityRatePerHour float64 `mapstructure:"electricity_rate_per_hour"`
	MarginRate             float64 `mapstructure:"margin_rate"`
	FeeRate                float64 `mapstructure:"fee_rate"`
	FlatFee                float64 `mapstructure:"flat_fee"`
}

// ForecastConfig holds inventory forecasting settings
type ForecastConfig struct {
	WindowDays          int     `mapstructure:"window_days"`
	DefaultReorderGrams float64 `mapstructure:"default_reorder_grams"`
}

// Load reads configuration from the given YAML file. A missing file
// is not an error; defaults apply. Environment variables prefixed
// PRINTOPS_ override file values.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("app.name", "printops")
	v.SetDefault("app.log_level", "info")
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("database.path", "./printops.db")
	v.SetDefault("costing.cost_per_gram", 0.02)
	v.SetDefault("costing.labor_rate_per_hour", 2.50)
	v.SetDefault("costing.electricity_rate_per_hour", 0.12)
	v.SetDefault("costing.margin_rate", 0.20)
	v.SetDefault("costing.fee_rate", 0.095)
	v.SetDefault("costing.flat_fee", 0.25)
	v.SetDefault("forecast.window_days", 30)
	v.SetDefault("forecast.default_reorder_grams", 250)

	v.SetEnvPrefix("PRINTOPS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			if _, statErr := os.Stat(configPath); statErr == nil {
				return nil, fmt.Errorf("read config %s: %w", configPath, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

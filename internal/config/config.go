package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/cleared-dev/forecast/internal/model"
)

// FileName is the workspace configuration file.
const FileName = "forecast.yaml"

// Config represents the top-level forecast.yaml configuration.
type Config struct {
	Business BusinessConfig `yaml:"business"`
	Defaults DefaultsConfig `yaml:"defaults"`
	Storage  StorageConfig  `yaml:"storage"`
	Export   ExportConfig   `yaml:"export"`
	Log      LogConfig      `yaml:"log"`
	Git      GitConfig      `yaml:"git"`
}

// BusinessConfig identifies the business being modelled.
type BusinessConfig struct {
	Name string `yaml:"name"`
}

// DefaultsConfig fills parameters a parameter file leaves out. Expenses and
// Revenues are templates used when a file has no expenses or revenues key at
// all; an explicit empty list stays empty.
type DefaultsConfig struct {
	TaxRatePercent       float64             `yaml:"tax_rate_percent"`
	InflationRatePercent float64             `yaml:"inflation_rate_percent"`
	HorizonYears         int                 `yaml:"horizon_years"`
	Expenses             []model.ExpenseItem `yaml:"expenses"`
	Revenues             []model.RevenueItem `yaml:"revenues"`
}

// StorageConfig locates the scenario database.
type StorageConfig struct {
	Path string `yaml:"path"` // relative to the workspace root
}

// ExportConfig controls where exports are written.
type ExportConfig struct {
	Dir string `yaml:"dir"`
}

// LogConfig controls log verbosity.
type LogConfig struct {
	Level string `yaml:"level"` // zerolog level name
}

// GitConfig controls git integration.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a forecast.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default("")
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new workspace.
func Default(businessName string) *Config {
	return &Config{
		Business: BusinessConfig{
			Name: businessName,
		},
		Defaults: DefaultsConfig{
			TaxRatePercent:       9,
			InflationRatePercent: 3,
			HorizonYears:         5,
			Expenses: []model.ExpenseItem{{LineItem: model.LineItem{
				ID:                1,
				Name:              "Website Hosting",
				Amount:            1200,
				Frequency:         model.FrequencyAnnually,
				GrowthRatePercent: 5,
				Category:          "Technology",
			}}},
			Revenues: []model.RevenueItem{{
				LineItem: model.LineItem{
					ID:                1,
					Name:              "Basic Plan",
					Amount:            29,
					Frequency:         model.FrequencyMonthly,
					GrowthRatePercent: 15,
					Category:          "Subscriptions",
				},
				RevenueType:    model.RevenueSubscription,
				EstimatedUnits: 100,
			}},
		},
		Storage: StorageConfig{
			Path: filepath.Join("scenarios", "scenarios.db"),
		},
		Export: ExportConfig{
			Dir: "exports",
		},
		Log: LogConfig{
			Level: "info",
		},
		Git: GitConfig{
			AutoCommit:  true,
			AuthorName:  "Forecast",
			AuthorEmail: "forecast@cleared.dev",
		},
	}
}

// Env holds environment overrides. Unset variables leave the file value alone.
type Env struct {
	StoragePath *string `env:"FORECAST_STORAGE_PATH"`
	LogLevel    *string `env:"FORECAST_LOG_LEVEL"`
	AutoCommit  *bool   `env:"FORECAST_AUTO_COMMIT"`
}

// ApplyEnv loads <root>/.env if present, then overlays FORECAST_* variables
// onto cfg. Variables already set in the process environment win over .env.
func ApplyEnv(root string, cfg *Config) error {
	dotenv := filepath.Join(root, ".env")
	if _, err := os.Stat(dotenv); err == nil {
		if err := godotenv.Load(dotenv); err != nil {
			return fmt.Errorf("loading %s: %w", dotenv, err)
		}
	}

	var e Env
	if err := env.Parse(&e); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if e.StoragePath != nil {
		cfg.Storage.Path = *e.StoragePath
	}
	if e.LogLevel != nil {
		cfg.Log.Level = *e.LogLevel
	}
	if e.AutoCommit != nil {
		cfg.Git.AutoCommit = *e.AutoCommit
	}
	return nil
}

// StoragePath resolves the scenario database path against the workspace root.
func (c *Config) StoragePath(root string) string {
	if filepath.IsAbs(c.Storage.Path) {
		return c.Storage.Path
	}
	return filepath.Join(root, c.Storage.Path)
}

// ExportDir resolves the export directory against the workspace root.
func (c *Config) ExportDir(root string) string {
	if filepath.IsAbs(c.Export.Dir) {
		return c.Export.Dir
	}
	return filepath.Join(root, c.Export.Dir)
}

package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config is the optional run profile: brand identity, data provenance and
// output paths. Every field has a default matching the built-in Nike 2025
// analysis, so a missing file or empty profile still produces a full run.
type Config struct {
	Brand         string `mapstructure:"brand"`
	Period        string `mapstructure:"period"`
	SourceKind    string `mapstructure:"source_kind"`
	SourcePath    string `mapstructure:"source_path"`
	CSVPath       string `mapstructure:"csv_path"`
	DashboardPath string `mapstructure:"dashboard_path"`
}

// Default returns the configuration used when no profile file is given.
func Default() Config {
	return Config{
		Brand:         "Nike",
		Period:        "2025",
		SourceKind:    "static",
		CSVPath:       "nike_social_media_analysis_2025.csv",
		DashboardPath: "nike_dashboard.html",
	}
}

// Load reads a profile file and merges it over the defaults.
func Load(profilePath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(profilePath)

	defaults := Default()
	v.SetDefault("brand", defaults.Brand)
	v.SetDefault("period", defaults.Period)
	v.SetDefault("source_kind", defaults.SourceKind)
	v.SetDefault("csv_path", defaults.CSVPath)
	v.SetDefault("dashboard_path", defaults.DashboardPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

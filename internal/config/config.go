// Package config handles configuration loading for finsight.
// It supports YAML config files with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/finsight/finsight/pkg/models"
)

// Config represents the complete application configuration.
type Config struct {
	Engine  models.Config `mapstructure:"engine"  yaml:"engine"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
	Output  OutputConfig  `mapstructure:"output"  yaml:"output"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `mapstructure:"format" yaml:"format"` // "console" or "json"
}

// OutputConfig holds report output settings.
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format"` // "text" or "json"
}

// Load reads the configuration from file and environment variables.
// Config file search order:
//  1. ./config/config.yaml (project root)
//  2. ~/.finsight/config.yaml (home directory)
//  3. /etc/finsight/config.yaml (system)
//
// Environment variables override config file values.
// Format: FINSIGHT_<SECTION>_<KEY>, e.g., FINSIGHT_ENGINE_PROJECTION_YEARS
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(filepath.Join(homeDir(), ".finsight"))
	v.AddConfigPath("/etc/finsight")

	v.SetEnvPrefix("FINSIGHT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found — that's fine, use defaults + env vars
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &cfg, nil
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetEnvPrefix("FINSIGHT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &cfg, nil
}

// setDefaults mirrors models.DefaultConfig so env-only overrides bind.
func setDefaults(v *viper.Viper) {
	def := models.DefaultConfig()

	v.SetDefault("engine.market_risk_premium", def.MarketRiskPremium)
	v.SetDefault("engine.terminal_growth_rate", def.TerminalGrowthRate)
	v.SetDefault("engine.projection_years", def.ProjectionYears)
	v.SetDefault("engine.use_analyst_target", def.UseAnalystTarget)
	v.SetDefault("engine.return_period", string(def.ReturnPeriod))
	v.SetDefault("engine.var_confidence", def.VaRConfidence)
	v.SetDefault("engine.min_data_points", def.MinDataPoints)
	v.SetDefault("engine.use_supplied_beta", def.UseSuppliedBeta)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("output.format", "text")
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}

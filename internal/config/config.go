package config

import (
	"strings"

	"github.com/spf13/viper"

	"heartscope/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Data   DataConfig   `mapstructure:"data"`
	Log    LogConfig    `mapstructure:"log"`
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port string `mapstructure:"port"`
}

// DataConfig holds dataset input settings
type DataConfig struct {
	// File is the dataset path, CSV or XLSX, relative to the working
	// directory unless absolute.
	File string `mapstructure:"file"`
	// SampleRows is how many leading rows the Home page shows verbatim.
	SampleRows int `mapstructure:"sample_rows"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads configuration with precedence: env > config file > defaults.
// Environment variables use the HEARTSCOPE_ prefix with underscores for
// nesting, e.g. HEARTSCOPE_DATA_FILE.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("HEARTSCOPE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.port", "8080")
	v.SetDefault("data.file", "heart.csv")
	v.SetDefault("data.sample_rows", 10)
	v.SetDefault("log.level", "info")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrap(err, "failed to read config file")
		}
	} else {
		v.SetConfigName("heartscope")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		// Missing default config file is fine; env + defaults carry it.
		if err := v.ReadInConfig(); err != nil {
			if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
				return nil, errors.Wrap(err, "failed to read config file")
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal configuration")
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Data.File == "" {
		return errors.ConfigInvalid("data.file is required")
	}
	if cfg.Server.Port == "" {
		return errors.ConfigInvalid("server.port is required")
	}
	if cfg.Data.SampleRows <= 0 {
		return errors.ConfigInvalid("data.sample_rows must be positive")
	}
	return nil
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/cloudchase/ollama-tool/registry"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the tool's settings after defaults, the config file and the
// environment have been merged.
type Config struct {
	APIBase    string        `mapstructure:"api_base"`
	OllamaBin  string        `mapstructure:"ollama_bin"`
	CatalogURL string        `mapstructure:"catalog_url"`
	Timeout    time.Duration `mapstructure:"timeout"`
	LogLevel   string        `mapstructure:"log_level"`
}

const (
	DefaultAPIBase   = "http://localhost:11434"
	DefaultOllamaBin = "ollama"
	DefaultTimeout   = 5 * time.Minute
	DefaultLogLevel  = "warn"
)

var envKeys = map[string]string{
	"api_base":    "OLLAMA_API_BASE",
	"ollama_bin":  "OLLAMA_BIN",
	"catalog_url": "OLLAMA_CATALOG_URL",
	"timeout":     "OLLAMA_TIMEOUT",
	"log_level":   "OLLAMA_TOOL_LOG_LEVEL",
}

// DefaultConfigDir returns the directory searched for config.yaml when no
// explicit file is given (~/.config/ollama-tool).
func DefaultConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "ollama-tool")
}

// Load reads configuration. An explicit configFile must exist; without one,
// config.yaml in DefaultConfigDir is used if present. A .env file in the
// working directory is loaded into the environment first.
func Load(configFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()
	v.SetDefault("api_base", DefaultAPIBase)
	v.SetDefault("ollama_bin", DefaultOllamaBin)
	v.SetDefault("catalog_url", registry.DefaultCatalogURL)
	v.SetDefault("timeout", DefaultTimeout)
	v.SetDefault("log_level", DefaultLogLevel)

	for key, env := range envKeys {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(DefaultConfigDir())
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	u, err := url.Parse(c.APIBase)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("api_base %q is not an absolute http(s) URL", c.APIBase)
	}
	if c.OllamaBin == "" {
		return errors.New("ollama_bin is required")
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", c.Timeout)
	}
	return nil
}

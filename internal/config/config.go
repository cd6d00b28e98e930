package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "WIRECRM_"

// Transport modes.
const (
	ModeHTTP  = "http"
	ModeStdio = "stdio"
)

// Config defines server configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server" envPrefix:"SERVER_"`
	DB        DBConfig        `yaml:"db" envPrefix:"DB_"`
	Log       LogConfig       `yaml:"log" envPrefix:"LOG_"`
	Transport TransportConfig `yaml:"transport" envPrefix:"TRANSPORT_"`
	UI        UIConfig        `yaml:"ui" envPrefix:"UI_"`
}

type ServerConfig struct {
	Host string `yaml:"host" env:"HOST"`
	Port int    `yaml:"port" env:"PORT"`
}

type DBConfig struct {
	Path string `yaml:"path" env:"PATH"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"LEVEL"`
	// Path, when set, sends logs to a size-capped file.
	Path string `yaml:"path" env:"PATH"`
}

type TransportConfig struct {
	Mode string `yaml:"mode" env:"MODE"`
}

type UIConfig struct {
	// Locale drives currency formatting.
	Locale string `yaml:"locale" env:"LOCALE"`
	// DatasetPath replaces the embedded demo dataset.
	DatasetPath string `yaml:"dataset_path" env:"DATASET_PATH"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		DB: DBConfig{
			Path: "wirecrm.db",
		},
		Log: LogConfig{
			Level: "info",
		},
		Transport: TransportConfig{
			Mode: ModeHTTP,
		},
		UI: UIConfig{
			Locale: "en-US",
		},
	}
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv(EnvPrefix + "CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports configuration values the server cannot start with.
func (c Config) Validate() error {
	var errs []error
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("invalid server port %d", c.Server.Port))
	}
	switch c.Transport.Mode {
	case ModeHTTP, ModeStdio:
	default:
		errs = append(errs, fmt.Errorf("invalid transport mode %q", c.Transport.Mode))
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("invalid log level %q", c.Log.Level))
	}
	return errors.Join(errs...)
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

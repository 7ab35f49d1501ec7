package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gsetup/pkg/logging"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	userConfigDir  = ".config/gsetup"
	configFileName = "config.yaml"
)

// osUserHomeDir is swapped in tests.
var osUserHomeDir = os.UserHomeDir

func GetDefaultConfigPathOrPanic() string {
	homeDir, err := osUserHomeDir()
	if err != nil {
		panic(fmt.Errorf("could not determine user config directory: %w", err))
	}

	return filepath.Join(homeDir, userConfigDir)
}

// envOverrides holds raw environment values. Zero values mean "not set".
type envOverrides struct {
	Scopes          []string      `env:"GSETUP_SCOPES" envSeparator:","`
	RedirectURL     string        `env:"GSETUP_REDIRECT_URL"`
	ListenHost      string        `env:"GSETUP_LISTEN_HOST"`
	Port            int           `env:"GSETUP_PORT"`
	CallbackPath    string        `env:"GSETUP_CALLBACK_PATH"`
	EnvFile         string        `env:"GSETUP_ENV_FILE"`
	AuthURL         string        `env:"GSETUP_AUTH_URL"`
	TokenURL        string        `env:"GSETUP_TOKEN_URL"`
	CallbackTimeout time.Duration `env:"GSETUP_CALLBACK_TIMEOUT"`
}

// LoadConfig loads configuration from config.yaml in configPath, then applies
// GSETUP_* environment overrides. A missing file yields the defaults.
func LoadConfig(configPath string) (Config, error) {
	config := GetDefaultConfig()

	configFilePath := filepath.Join(configPath, configFileName)
	data, err := os.ReadFile(configFilePath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		logging.Debug("ConfigLoader", "No config.yaml found at %s, using defaults", configFilePath)
	case err != nil:
		return Config{}, fmt.Errorf("error reading config from %s: %w", configFilePath, err)
	default:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return Config{}, fmt.Errorf("error loading config from %s: %w", configFilePath, err)
		}
		logging.Info("ConfigLoader", "Loaded configuration from %s", configFilePath)
	}

	if err := applyEnv(&config); err != nil {
		return Config{}, err
	}

	return config, nil
}

func applyEnv(config *Config) error {
	var raw envOverrides
	if err := env.Parse(&raw); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	if len(raw.Scopes) > 0 {
		config.Scopes = raw.Scopes
	}
	if raw.RedirectURL != "" {
		config.RedirectURL = raw.RedirectURL
	}
	if raw.ListenHost != "" {
		config.ListenHost = raw.ListenHost
	}
	if raw.Port != 0 {
		config.Port = raw.Port
	}
	if raw.CallbackPath != "" {
		config.CallbackPath = raw.CallbackPath
	}
	if raw.EnvFile != "" {
		config.EnvFile = raw.EnvFile
	}
	if raw.AuthURL != "" {
		config.AuthURL = raw.AuthURL
	}
	if raw.TokenURL != "" {
		config.TokenURL = raw.TokenURL
	}
	if raw.CallbackTimeout != 0 {
		config.CallbackTimeout = raw.CallbackTimeout
	}
	return nil
}

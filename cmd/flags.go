package cmd

import (
	"fmt"
	"time"

	"gsetup/internal/config"
	"gsetup/internal/credentials"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"
)

// handshakeFlags are shared by the commands that run the browser flow.
type handshakeFlags struct {
	envFile     string
	openBrowser bool
	timeout     time.Duration
}

func (f *handshakeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.envFile, "env-file", "", "Path of the credentials file to write (default from config, .env)")
	cmd.Flags().BoolVar(&f.openBrowser, "open-browser", false, "Open the authorization URL in the default browser")
	cmd.Flags().DurationVar(&f.timeout, "timeout", 0, "Give up if no browser callback arrives in time (0 waits forever)")
}

// config loads the configuration, applies the flags and validates it.
func (f *handshakeFlags) config() (config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return config.Config{}, err
	}
	if f.envFile != "" {
		cfg.EnvFile = f.envFile
	}
	if err := validateConfig(cfg); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// clientEnv reads the client from the same variables the credentials file
// uses, so an exported .env can be reused.
type clientEnv struct {
	ID     string `env:"GOOGLE_CLIENT_ID"`
	Secret string `env:"GOOGLE_CLIENT_SECRET"`
}

// resolveClient returns the OAuth client from flags, falling back to the
// environment. The secret is only required when requireSecret is set.
func resolveClient(id, secret string, requireSecret bool) (credentials.Client, error) {
	var fromEnv clientEnv
	if err := env.Parse(&fromEnv); err != nil {
		return credentials.Client{}, fmt.Errorf("parse env: %w", err)
	}

	client := credentials.Client{ID: id, Secret: secret}
	if client.ID == "" {
		client.ID = fromEnv.ID
	}
	if client.Secret == "" {
		client.Secret = fromEnv.Secret
	}

	if client.ID == "" {
		return credentials.Client{}, fmt.Errorf("client ID is required: use --client-id or set %s", credentials.KeyClientID)
	}
	if requireSecret && client.Secret == "" {
		return credentials.Client{}, fmt.Errorf("client secret is required: use --client-secret or set %s", credentials.KeyClientSecret)
	}
	return client, nil
}

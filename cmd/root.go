package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"gsetup/internal/config"
	"gsetup/internal/credentials"
	"gsetup/internal/oauth"
	"gsetup/pkg/logging"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// Exit codes for CLI commands.
const (
	// ExitCodeSuccess indicates successful execution, including a setup the
	// operator stopped before the end.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error (bad config, port in use,
	// credentials not written).
	ExitCodeError = 1
	// ExitCodeAuthRequired indicates no usable credentials file exists.
	ExitCodeAuthRequired = 2
	// ExitCodeAuthFailed indicates the provider rejected the token exchange.
	ExitCodeAuthFailed = 3
)

// Persistent flags.
var (
	configPath string
	logLevel   string
	logFile    string
	quiet      bool
)

// logCloser is the rotating log file opened for --log-file, if any.
var logCloser io.Closer

// rootCmd represents the base command for the gsetup application.
// It is the entry point when the application is called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "gsetup",
	Short: "Create Google OAuth credentials for local development",
	Long: `gsetup walks you through creating a Google Cloud project and an OAuth
client, then runs the OAuth authorization-code flow in your browser and writes
the client credentials and tokens to a .env file.`,
	// SilenceUsage prevents Cobra from printing the usage message on errors that are handled by the application.
	SilenceUsage:      true,
	PersistentPreRunE: initLogging,
}

// SetVersion sets the version for the root command.
// This function is typically called from the main package to inject the application version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

// Execute is the main entry point for the CLI application.
// This function is called by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "gsetup version %s\n" .Version}}`)

	// Ctrl+C cancels the wait for the browser callback and releases the port.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	closeLogFile()
	if err != nil {
		os.Exit(getExitCode(err))
	}
}

// getExitCode determines the appropriate exit code based on the error type.
// This provides semantic exit codes for scripting and automation.
func getExitCode(err error) int {
	if err == nil {
		return ExitCodeSuccess
	}

	var exchangeErr *oauth.ExchangeError
	if errors.As(err, &exchangeErr) {
		return ExitCodeAuthFailed
	}

	if errors.Is(err, credentials.ErrIncomplete) || errors.Is(err, os.ErrNotExist) {
		return ExitCodeAuthRequired
	}

	// Persist failures, bind failures and everything else.
	return ExitCodeError
}

// initLogging configures the logger from the persistent flags and tags the
// run with a fresh id.
func initLogging(cmd *cobra.Command, args []string) error {
	level, err := logging.ParseLevel(logLevel)
	if err != nil {
		return err
	}

	closeLogFile()
	var output io.Writer = os.Stderr
	if logFile != "" {
		w := logging.OpenFile(logFile, logging.DefaultFileOptions)
		logCloser = w
		output = w
	}

	logging.InitForCLI(level, output)
	logging.SetRunID(uuid.NewString())
	return nil
}

func closeLogFile() {
	if logCloser != nil {
		_ = logCloser.Close()
		logCloser = nil
	}
}

// loadConfig loads config.yaml from --config-path (or the default location)
// and the GSETUP_* environment.
func loadConfig() (config.Config, error) {
	path := configPath
	if path == "" {
		path = config.GetDefaultConfigPathOrPanic()
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// validateConfig returns cfg's validation error, prefixed for the operator.
func validateConfig(cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config-path", "", "Directory containing config.yaml (default $HOME/.config/gsetup)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file, rotated by size, instead of stderr")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress progress output")

	rootCmd.AddCommand(newVersionCmd())
}

package cmd

import (
	"errors"

	"gsetup/internal/wizard"
	"gsetup/pkg/logging"

	"github.com/spf13/cobra"
)

var setupFlags handshakeFlags

// promptCloser is a wizard prompter holding the terminal.
type promptCloser interface {
	wizard.Prompter
	Close() error
}

// newPrompter is swapped in tests.
var newPrompter = func() (promptCloser, error) {
	return wizard.NewReadlinePrompter()
}

// setupCmd represents the setup command
var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create a Google OAuth client and generate credentials",
	Long: `Walk through the Google Cloud console steps needed for an OAuth client,
then authorize it in the browser and write the credentials file.

Each step prints a console link and asks for confirmation. Answering "n"
stops the setup without writing anything.

Examples:
  gsetup setup                         # Guided setup, writes ./.env
  gsetup setup --open-browser          # Open the authorization URL automatically
  gsetup setup --env-file secrets.env  # Write somewhere else`,
	Args: cobra.NoArgs,
	RunE: runSetup,
}

func init() {
	setupFlags.register(setupCmd)
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := setupFlags.config()
	if err != nil {
		return err
	}

	prompter, err := newPrompter()
	if err != nil {
		return err
	}
	client, err := wizard.New(cfg, prompter, cmd.OutOrStdout()).Run(ctx)
	// The terminal must be released before the spinner takes over.
	_ = prompter.Close()

	if errors.Is(err, wizard.ErrSetupIncomplete) {
		logging.Info("CLI", "Setup not completed, nothing written")
		return nil
	}
	if err != nil {
		return err
	}

	h := &handshake{
		cfg:         cfg,
		client:      client,
		out:         cmd.OutOrStdout(),
		openBrowser: setupFlags.openBrowser,
		quiet:       quiet,
		timeout:     setupFlags.timeout,
	}
	return h.run(ctx)
}

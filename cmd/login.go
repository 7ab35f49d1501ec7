package cmd

import (
	"github.com/spf13/cobra"
)

// Login-specific flags
var (
	loginFlags        handshakeFlags
	loginClientID     string
	loginClientSecret string
)

// loginCmd represents the login command
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authorize an existing OAuth client and write credentials",
	Long: `Run the OAuth authorization-code flow for an OAuth client that already
exists, skipping the console steps of "gsetup setup".

The client is taken from --client-id/--client-secret or from the
GOOGLE_CLIENT_ID/GOOGLE_CLIENT_SECRET environment variables.

Examples:
  gsetup login --client-id <id> --client-secret <secret>
  GOOGLE_CLIENT_ID=<id> GOOGLE_CLIENT_SECRET=<secret> gsetup login
  gsetup login --timeout 5m            # Give up after five minutes`,
	Args: cobra.NoArgs,
	RunE: runLogin,
}

func init() {
	loginFlags.register(loginCmd)
	loginCmd.Flags().StringVar(&loginClientID, "client-id", "", "OAuth client ID")
	loginCmd.Flags().StringVar(&loginClientSecret, "client-secret", "", "OAuth client secret")
	rootCmd.AddCommand(loginCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	cfg, err := loginFlags.config()
	if err != nil {
		return err
	}

	client, err := resolveClient(loginClientID, loginClientSecret, true)
	if err != nil {
		return err
	}

	h := &handshake{
		cfg:         cfg,
		client:      client,
		out:         cmd.OutOrStdout(),
		openBrowser: loginFlags.openBrowser,
		quiet:       quiet,
		timeout:     loginFlags.timeout,
	}
	return h.run(cmd.Context())
}

package cmd

import (
	"fmt"

	"gsetup/internal/oauth"

	"github.com/spf13/cobra"
)

var urlClientID string

// urlCmd represents the url command
var urlCmd = &cobra.Command{
	Use:   "url",
	Short: "Print the authorization URL for an OAuth client",
	Long: `Print the Google authorization URL for the given client without starting
the callback server. Useful to check scopes and the redirect URL.

Examples:
  gsetup url --client-id <id>
  GOOGLE_CLIENT_ID=<id> gsetup url`,
	Args: cobra.NoArgs,
	RunE: runURL,
}

func init() {
	urlCmd.Flags().StringVar(&urlClientID, "client-id", "", "OAuth client ID")
	rootCmd.AddCommand(urlCmd)
}

func runURL(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	client, err := resolveClient(urlClientID, "", false)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), oauth.BuildAuthorizationURL(cfg, client))
	return nil
}

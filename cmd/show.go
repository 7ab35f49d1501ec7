package cmd

import (
	"fmt"
	"io"

	"gsetup/internal/credentials"
	pkgstrings "gsetup/pkg/strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

var (
	showEnvFile string
	showReveal  bool
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the generated credentials file",
	Long: `Print the credentials written by "gsetup setup" or "gsetup login" as a
table. The client secret and tokens are masked unless --reveal is given.

Exits with code 2 if the file is missing or incomplete.

Examples:
  gsetup show
  gsetup show --env-file secrets.env
  gsetup show --reveal`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

func init() {
	showCmd.Flags().StringVar(&showEnvFile, "env-file", "", "Path of the credentials file (default from config, .env)")
	showCmd.Flags().BoolVar(&showReveal, "reveal", false, "Print secrets unmasked")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	path := cfg.EnvFile
	if showEnvFile != "" {
		path = showEnvFile
	}

	file, err := credentials.Load(path)
	if err != nil {
		return fmt.Errorf("no usable credentials at %s, run 'gsetup setup' first: %w", path, err)
	}

	renderCredentials(cmd.OutOrStdout(), file, showReveal)
	return nil
}

// renderCredentials prints the persisted keys in file order.
func renderCredentials(out io.Writer, file *credentials.File, reveal bool) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{
		text.FgHiCyan.Sprint("KEY"),
		text.FgHiCyan.Sprint("VALUE"),
	})

	for _, key := range credentials.Keys {
		value := file.Values[key]
		if key != credentials.KeyClientID && !reveal {
			value = mask(value)
		}
		if value == "" {
			value = text.FgYellow.Sprint("(empty)")
		}
		t.AppendRow(table.Row{key, value})
	}

	t.Render()
}

func mask(s string) string {
	return pkgstrings.MaskSecret(s, 4)
}

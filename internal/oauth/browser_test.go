package oauth

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrowserCommand(t *testing.T) {
	const target = "https://accounts.google.com/o/oauth2/auth?client_id=abc"

	tests := []struct {
		goos     string
		wantArgs []string
	}{
		{"linux", []string{"xdg-open", target}},
		{"freebsd", []string{"xdg-open", target}},
		{"darwin", []string{"open", target}},
		{"windows", []string{"rundll32", "url.dll,FileProtocolHandler", target}},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			cmd, err := browserCommand(tt.goos, target)
			require.NoError(t, err)
			assert.Equal(t, tt.wantArgs, cmd.Args)
		})
	}
}

func TestBrowserCommand_Unsupported(t *testing.T) {
	_, err := browserCommand("plan9", "https://example.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported platform")
}

func TestOpenBrowser_StartFailure(t *testing.T) {
	original := execCommand
	defer func() { execCommand = original }()

	execCommand = func(name string, args ...string) *exec.Cmd {
		return exec.Command("/nonexistent/gsetup-browser-test")
	}

	err := OpenBrowser("https://example.com")
	if err == nil {
		// Platforms without a browser command return before starting anything.
		t.Skip("no browser command on this platform")
	}
	assert.Contains(t, err.Error(), "browser")
}

package oauth

import (
	"fmt"
	"os/exec"
	"runtime"
)

// execCommand is swapped in tests.
var execCommand = exec.Command

// browserCommand returns the command that opens url on goos.
func browserCommand(goos, url string) (*exec.Cmd, error) {
	switch goos {
	case "linux", "freebsd", "openbsd", "netbsd":
		return execCommand("xdg-open", url), nil
	case "darwin":
		return execCommand("open", url), nil
	case "windows":
		return execCommand("rundll32", "url.dll,FileProtocolHandler", url), nil
	default:
		return nil, fmt.Errorf("unsupported platform: %s", goos)
	}
}

// OpenBrowser opens the authorization URL in the default web browser.
// The command is started but not waited for.
func OpenBrowser(url string) error {
	cmd, err := browserCommand(runtime.GOOS, url)
	if err != nil {
		return err
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}

	// Reap the child so it does not linger as a zombie.
	go func() { _ = cmd.Wait() }()
	return nil
}

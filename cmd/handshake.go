package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"gsetup/internal/config"
	"gsetup/internal/credentials"
	"gsetup/internal/oauth"
	"gsetup/pkg/logging"

	"github.com/briandowns/spinner"
	"github.com/jedib0t/go-pretty/v6/text"
)

// handshake runs the browser part of the flow: print the authorization URL,
// receive the callback, exchange the code and write the credentials file.
type handshake struct {
	cfg    config.Config
	client credentials.Client
	out    io.Writer

	openBrowser bool
	quiet       bool
	// timeout overrides cfg.CallbackTimeout when positive.
	timeout time.Duration

	// exchanger defaults to an oauth.Exchanger for cfg.
	exchanger oauth.TokenExchanger
	// openURL defaults to oauth.OpenBrowser.
	openURL func(string) error
	// listening is called with the bound address once the server accepts
	// connections.
	listening func(addr string)
}

func (h *handshake) run(ctx context.Context) error {
	exchanger := h.exchanger
	if exchanger == nil {
		exchanger = oauth.NewExchanger(h.cfg, nil)
	}
	persister := credentials.FilePersister{Path: h.cfg.EnvFile}

	server := oauth.NewCallbackServer(h.cfg, h.client, exchanger, persister)
	if err := server.Listen(); err != nil {
		return err
	}
	if h.listening != nil {
		h.listening(server.Addr())
	}

	authURL := oauth.BuildAuthorizationURL(h.cfg, h.client)
	if !h.quiet {
		fmt.Fprintf(h.out, "\n%s\n\n", text.Colors{text.Bold, text.FgCyan}.Sprint("Please go to the following URL and log in with your Google account"))
		fmt.Fprintln(h.out, "Choose advanced settings and access the app if your app is not verified.")
		fmt.Fprintln(h.out)
	}
	fmt.Fprintln(h.out, authURL)
	if !h.quiet {
		fmt.Fprintln(h.out)
	}

	if h.openBrowser {
		openURL := h.openURL
		if openURL == nil {
			openURL = oauth.OpenBrowser
		}
		if err := openURL(authURL); err != nil {
			logging.Warn("CLI", "Could not open browser automatically: %v", err)
		}
	}

	timeout := h.cfg.CallbackTimeout
	if h.timeout > 0 {
		timeout = h.timeout
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	var s *spinner.Spinner
	if !h.quiet {
		s = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(h.out))
		s.Suffix = fmt.Sprintf(" Waiting for the browser callback on %s...", h.cfg.RedirectURL)
		s.Start()
	}

	_, err := server.Serve(ctx)

	if s != nil {
		s.Stop()
	}

	switch {
	case err == nil:
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("no browser callback received within %s: %w", timeout, err)
	case errors.Is(err, context.Canceled):
		return fmt.Errorf("interrupted while waiting for the browser callback: %w", err)
	default:
		if !h.quiet {
			fmt.Fprintf(h.out, "%s\n", text.FgRed.Sprint("❌ Token generation failed"))
		}
		return err
	}

	if !h.quiet {
		fmt.Fprintf(h.out, "%s Credentials written to %s\n", text.FgGreen.Sprint("✓"), h.cfg.EnvFile)
	}
	return nil
}

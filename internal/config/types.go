package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/oauth2"
)

// Config holds the process-wide settings of an authorization flow.
// It is loaded once at startup and passed by value to the components
// that need it; nothing reads it from package state.
type Config struct {
	// Scopes requested in the authorization URL, joined by a single space.
	Scopes []string `yaml:"scopes"`

	// RedirectURL is the URL the provider sends the browser back to. It must
	// match the redirect URI registered on the OAuth client byte for byte.
	RedirectURL string `yaml:"redirectURL"`

	// ListenHost is the interface the callback server binds to.
	ListenHost string `yaml:"listenHost"`

	// Port is the callback server port. 0 picks a free port, which is only
	// useful in tests since the redirect URL then cannot match.
	Port int `yaml:"port"`

	// CallbackPath is the HTTP path the callback server handles.
	CallbackPath string `yaml:"callbackPath"`

	// EnvFile is where the obtained credentials are written.
	EnvFile string `yaml:"envFile"`

	// AuthURL and TokenURL are the provider endpoints.
	AuthURL  string `yaml:"authURL"`
	TokenURL string `yaml:"tokenURL"`

	// CallbackTimeout bounds how long the callback server waits for the
	// browser. Zero waits until interrupted.
	CallbackTimeout time.Duration `yaml:"callbackTimeout"`

	// APIs lists the Google APIs the operator is asked to enable.
	APIs []API `yaml:"apis"`
}

// API is a Google API that must be enabled on the project.
type API struct {
	// Name is the display name, e.g. "Google Drive API".
	Name string `yaml:"name"`
	// ID is the service name, e.g. "drive.googleapis.com".
	ID string `yaml:"id"`
}

// LibraryURL returns the console page where the API is enabled.
func (a API) LibraryURL() string {
	return ConsoleBaseURL + "/apis/library/" + a.ID
}

// Endpoint returns the OAuth2 endpoint built from AuthURL and TokenURL.
func (c Config) Endpoint() oauth2.Endpoint {
	return oauth2.Endpoint{
		AuthURL:   c.AuthURL,
		TokenURL:  c.TokenURL,
		AuthStyle: oauth2.AuthStyleInParams,
	}
}

// ListenAddress returns the host:port the callback server binds to.
func (c Config) ListenAddress() string {
	return net.JoinHostPort(c.ListenHost, strconv.Itoa(c.Port))
}

// Validate checks that the configuration can drive a flow end to end.
func (c Config) Validate() error {
	var errs []error

	if len(c.Scopes) == 0 {
		errs = append(errs, errors.New("at least one scope is required"))
	}
	for i, s := range c.Scopes {
		if s == "" {
			errs = append(errs, fmt.Errorf("scope %d is empty", i))
		}
	}

	if c.Port < 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("port %d is out of range", c.Port))
	}

	if c.CallbackPath == "" || c.CallbackPath[0] != '/' {
		errs = append(errs, fmt.Errorf("callback path %q must start with /", c.CallbackPath))
	}

	if c.EnvFile == "" {
		errs = append(errs, errors.New("env file path is required"))
	}

	if c.AuthURL == "" || c.TokenURL == "" {
		errs = append(errs, errors.New("authorization and token endpoints are required"))
	}

	if c.CallbackTimeout < 0 {
		errs = append(errs, errors.New("callback timeout cannot be negative"))
	}

	errs = append(errs, c.validateRedirectURL()...)

	return errors.Join(errs...)
}

func (c Config) validateRedirectURL() []error {
	u, err := url.Parse(c.RedirectURL)
	if err != nil {
		return []error{fmt.Errorf("invalid redirect URL %q: %w", c.RedirectURL, err)}
	}
	if u.Scheme != "http" {
		return []error{fmt.Errorf("redirect URL %q must use http; the callback server does not terminate TLS", c.RedirectURL)}
	}
	if u.Host == "" {
		return []error{fmt.Errorf("redirect URL %q has no host", c.RedirectURL)}
	}

	var errs []error
	if c.Port != 0 {
		port := u.Port()
		if port == "" {
			port = "80"
		}
		if port != strconv.Itoa(c.Port) {
			errs = append(errs, fmt.Errorf("redirect URL port %s does not match callback port %d", port, c.Port))
		}
	}

	path := u.Path
	if path == "" {
		path = "/"
	}
	if c.CallbackPath != "" && path != c.CallbackPath {
		errs = append(errs, fmt.Errorf("redirect URL path %q does not match callback path %q", path, c.CallbackPath))
	}
	return errs
}

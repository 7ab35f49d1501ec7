package config

import (
	"golang.org/x/oauth2/google"
)

const (
	// DefaultPort is the port the callback server listens on.
	DefaultPort = 3888

	// DefaultRedirectURL must be registered as an authorized redirect URI
	// on the OAuth client.
	DefaultRedirectURL = "http://localhost:3888"

	// DefaultListenHost keeps the callback server off external interfaces.
	DefaultListenHost = "127.0.0.1"

	// DefaultCallbackPath is the path the provider redirects to.
	DefaultCallbackPath = "/"

	// DefaultEnvFile is relative to the working directory.
	DefaultEnvFile = ".env"

	// ConsoleBaseURL is the Google Cloud console used by the setup steps.
	ConsoleBaseURL = "https://console.developers.google.com"
)

// DefaultScopes are the scopes requested when none are configured.
var DefaultScopes = []string{
	"https://www.googleapis.com/auth/spreadsheets",
	"https://www.googleapis.com/auth/drive",
}

// DefaultAPIs are the APIs the operator enables during setup.
var DefaultAPIs = []API{
	{Name: "Google Drive API", ID: "drive.googleapis.com"},
	{Name: "Google Sheets API", ID: "sheets.googleapis.com"},
}

// GetDefaultConfig returns the default configuration.
func GetDefaultConfig() Config {
	return Config{
		Scopes:       append([]string(nil), DefaultScopes...),
		RedirectURL:  DefaultRedirectURL,
		ListenHost:   DefaultListenHost,
		Port:         DefaultPort,
		CallbackPath: DefaultCallbackPath,
		EnvFile:      DefaultEnvFile,
		AuthURL:      google.Endpoint.AuthURL,
		TokenURL:     google.Endpoint.TokenURL,
		APIs:         append([]API(nil), DefaultAPIs...),
	}
}

package oauth

import (
	"golang.org/x/oauth2"

	"gsetup/internal/config"
	"gsetup/internal/credentials"
)

// oauth2Config builds the x/oauth2 client configuration shared by the
// authorization and token requests. Both must carry the same redirect URL.
func oauth2Config(cfg config.Config, client credentials.Client) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     client.ID,
		ClientSecret: client.Secret,
		Endpoint:     cfg.Endpoint(),
		RedirectURL:  cfg.RedirectURL,
		Scopes:       cfg.Scopes,
	}
}

// BuildAuthorizationURL returns the URL the operator opens in a browser.
//
// The URL requests response_type=code and access_type=offline so that the
// provider issues a refresh token. Scopes are joined by a single space. No
// state parameter is sent and nothing is validated here; an empty client id
// produces a URL the provider rejects.
func BuildAuthorizationURL(cfg config.Config, client credentials.Client) string {
	return oauth2Config(cfg, client).AuthCodeURL("", oauth2.AccessTypeOffline)
}

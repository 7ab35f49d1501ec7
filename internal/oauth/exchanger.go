package oauth

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	"gsetup/internal/config"
	"gsetup/internal/credentials"
)

// DefaultHTTPTimeout is the default timeout for the token request.
const DefaultHTTPTimeout = 30 * time.Second

// TokenExchanger trades an authorization code for tokens.
type TokenExchanger interface {
	Exchange(ctx context.Context, client credentials.Client, code string) (*oauth2.Token, error)
}

// ExchangerFunc adapts a function to the TokenExchanger interface.
type ExchangerFunc func(ctx context.Context, client credentials.Client, code string) (*oauth2.Token, error)

// Exchange implements TokenExchanger.
func (f ExchangerFunc) Exchange(ctx context.Context, client credentials.Client, code string) (*oauth2.Token, error) {
	return f(ctx, client, code)
}

// Exchanger performs the authorization-code grant against the configured
// token endpoint. It makes a single attempt; failures are returned as is,
// typically as *oauth2.RetrieveError for provider rejections.
type Exchanger struct {
	cfg        config.Config
	httpClient *http.Client
}

// NewExchanger creates an Exchanger. If httpClient is nil a client with
// DefaultHTTPTimeout is used.
func NewExchanger(cfg config.Config, httpClient *http.Client) *Exchanger {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultHTTPTimeout}
	}
	return &Exchanger{cfg: cfg, httpClient: httpClient}
}

// Exchange implements TokenExchanger. The redirect URI sent is the one the
// authorization URL was built with.
func (e *Exchanger) Exchange(ctx context.Context, client credentials.Client, code string) (*oauth2.Token, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, e.httpClient)
	return oauth2Config(e.cfg, client).Exchange(ctx, code)
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "no scopes",
			mutate:  func(c *Config) { c.Scopes = nil },
			wantErr: "at least one scope",
		},
		{
			name:    "empty scope",
			mutate:  func(c *Config) { c.Scopes = []string{"a", ""} },
			wantErr: "scope 1 is empty",
		},
		{
			name:    "https redirect",
			mutate:  func(c *Config) { c.RedirectURL = "https://localhost:3888" },
			wantErr: "must use http",
		},
		{
			name:    "port mismatch",
			mutate:  func(c *Config) { c.Port = 4000 },
			wantErr: "does not match callback port 4000",
		},
		{
			name:    "path mismatch",
			mutate:  func(c *Config) { c.RedirectURL = "http://localhost:3888/callback" },
			wantErr: "does not match callback path",
		},
		{
			name: "matching non-root path",
			mutate: func(c *Config) {
				c.RedirectURL = "http://localhost:3888/callback"
				c.CallbackPath = "/callback"
			},
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.Port = 70000 },
			wantErr: "out of range",
		},
		{
			name: "random port skips port match",
			mutate: func(c *Config) {
				c.Port = 0
			},
		},
		{
			name:    "empty env file",
			mutate:  func(c *Config) { c.EnvFile = "" },
			wantErr: "env file path is required",
		},
		{
			name:    "missing token endpoint",
			mutate:  func(c *Config) { c.TokenURL = "" },
			wantErr: "endpoints are required",
		},
		{
			name:    "bad callback path",
			mutate:  func(c *Config) { c.CallbackPath = "cb" },
			wantErr: "must start with /",
		},
		{
			name:    "negative timeout",
			mutate:  func(c *Config) { c.CallbackTimeout = -1 },
			wantErr: "cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := GetDefaultConfig()
			tt.mutate(&c)

			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_ListenAddress(t *testing.T) {
	c := GetDefaultConfig()
	assert.Equal(t, "127.0.0.1:3888", c.ListenAddress())

	c.ListenHost = "::1"
	assert.Equal(t, "[::1]:3888", c.ListenAddress())
}

func TestConfig_Endpoint(t *testing.T) {
	c := GetDefaultConfig()
	c.AuthURL = "https://example.com/auth"
	c.TokenURL = "https://example.com/token"

	ep := c.Endpoint()
	assert.Equal(t, "https://example.com/auth", ep.AuthURL)
	assert.Equal(t, "https://example.com/token", ep.TokenURL)
}

func TestAPI_LibraryURL(t *testing.T) {
	api := API{Name: "Google Drive API", ID: "drive.googleapis.com"}
	assert.Equal(t, "https://console.developers.google.com/apis/library/drive.googleapis.com", api.LibraryURL())
}

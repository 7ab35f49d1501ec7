package credentials

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/oauth2"

	"gsetup/pkg/logging"
)

// Keys written to the env file.
const (
	KeyClientID     = "GOOGLE_CLIENT_ID"
	KeyClientSecret = "GOOGLE_CLIENT_SECRET"
	KeyAccessToken  = "GOOGLE_ACCESS_TOKEN"
	KeyRefreshToken = "GOOGLE_REFRESH_TOKEN"
)

// Keys lists the persisted keys in file order.
var Keys = []string{KeyClientID, KeyClientSecret, KeyAccessToken, KeyRefreshToken}

// header is the comment line that opens the credentials block.
const header = "# Google Credentials"

// trailer is the whitespace line that closes the block. Existing tooling
// reads files with this exact shape, so it is kept byte for byte.
const trailer = "       "

// fileMode keeps the client secret and tokens readable by the owner only.
const fileMode = 0600

// Client is the OAuth client the operator registered.
type Client struct {
	ID     string
	Secret string
}

// Render returns the env file contents for the given client and token.
// A missing refresh token is written as an empty value.
func Render(client Client, token *oauth2.Token) string {
	var access, refresh string
	if token != nil {
		access = token.AccessToken
		refresh = token.RefreshToken
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(header + "\n")
	fmt.Fprintf(&b, "%s=%s\n", KeyClientID, client.ID)
	fmt.Fprintf(&b, "%s=%s\n", KeyClientSecret, client.Secret)
	fmt.Fprintf(&b, "%s=%s\n", KeyAccessToken, access)
	fmt.Fprintf(&b, "%s=%s\n", KeyRefreshToken, refresh)
	b.WriteString(trailer)
	return b.String()
}

// Write overwrites path with the credentials block. Any existing file is
// replaced, never merged.
func Write(path string, client Client, token *oauth2.Token) error {
	if err := os.WriteFile(path, []byte(Render(client, token)), fileMode); err != nil {
		return fmt.Errorf("failed to write credentials to %s: %w", path, err)
	}
	// WriteFile keeps the mode of an existing file; tighten it.
	if err := os.Chmod(path, fileMode); err != nil {
		return fmt.Errorf("failed to restrict permissions on %s: %w", path, err)
	}

	logging.Info("Credentials", "Credentials written to %s (refresh token present: %t)",
		path, token != nil && token.RefreshToken != "")
	return nil
}

// Persister stores the outcome of a successful token exchange.
type Persister interface {
	Persist(client Client, token *oauth2.Token) error
}

// FilePersister writes credentials to a fixed path.
type FilePersister struct {
	Path string
}

// Persist implements Persister.
func (p FilePersister) Persist(client Client, token *oauth2.Token) error {
	return Write(p.Path, client, token)
}

// PersisterFunc adapts a function to the Persister interface.
type PersisterFunc func(client Client, token *oauth2.Token) error

// Persist implements Persister.
func (f PersisterFunc) Persist(client Client, token *oauth2.Token) error {
	return f(client, token)
}

// Parse reads line-oriented KEY=VALUE pairs. Blank lines and lines starting
// with # are skipped. Values are taken verbatim after the first '='; keys are
// trimmed. A later duplicate key wins.
func Parse(r io.Reader) (map[string]string, error) {
	values := make(map[string]string)
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("line %d: expected KEY=VALUE", lineNo)
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("line %d: empty key", lineNo)
		}
		values[key] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return values, nil
}

// File is a parsed credentials file.
type File struct {
	Client       Client
	AccessToken  string
	RefreshToken string
	// Values holds every pair found, including keys gsetup does not write.
	Values map[string]string
}

// ErrIncomplete is returned by Load when a required key is missing.
var ErrIncomplete = errors.New("credentials file is incomplete")

// Load reads and parses the credentials file at path.
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open credentials file: %w", err)
	}
	defer f.Close()

	values, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	var missing []string
	for _, k := range []string{KeyClientID, KeyClientSecret, KeyAccessToken} {
		if _, ok := values[k]; !ok {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing %s", ErrIncomplete, strings.Join(missing, ", "))
	}

	return &File{
		Client: Client{
			ID:     values[KeyClientID],
			Secret: values[KeyClientSecret],
		},
		AccessToken:  values[KeyAccessToken],
		RefreshToken: values[KeyRefreshToken],
		Values:       values,
	}, nil
}

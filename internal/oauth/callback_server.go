package oauth

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/sync/errgroup"

	"gsetup/internal/config"
	"gsetup/internal/credentials"
	"gsetup/pkg/logging"
)

const subsystem = "CallbackServer"

// shutdownTimeout bounds how long Stop waits for the in-flight response.
const shutdownTimeout = 5 * time.Second

// State is the lifecycle state of a CallbackServer.
type State int32

const (
	StateIdle State = iota
	StateListening
	StateHandling
	StateSucceeded
	StateFailed
	StateStopped
)

// String makes State satisfy the fmt.Stringer interface.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateListening:
		return "listening"
	case StateHandling:
		return "handling"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// CallbackServer is a temporary local HTTP server that receives the
// provider's redirect, exchanges the code and persists the credentials.
// It handles exactly one callback, then shuts down whether that callback
// succeeded or not.
type CallbackServer struct {
	cfg       config.Config
	client    credentials.Client
	exchanger TokenExchanger
	persister credentials.Persister

	listener net.Listener
	server   *http.Server
	once     sync.Once
	stopOnce sync.Once
	done     chan struct{}
	stopped  chan struct{}
	state    atomic.Int32

	mu    sync.Mutex
	token *oauth2.Token
	err   error
}

// NewCallbackServer creates a callback server. Nothing is bound until
// Listen or Serve is called.
func NewCallbackServer(cfg config.Config, client credentials.Client, exchanger TokenExchanger, persister credentials.Persister) *CallbackServer {
	return &CallbackServer{
		cfg:       cfg,
		client:    client,
		exchanger: exchanger,
		persister: persister,
		done:      make(chan struct{}),
		stopped:   make(chan struct{}),
	}
}

// Listen binds the configured address. A bind failure (typically the port
// being in use) is returned unchanged in the error chain.
func (s *CallbackServer) Listen() error {
	addr := s.cfg.ListenAddress()

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to start callback server on %s: %w", addr, err)
	}
	s.listener = listener

	mux := http.NewServeMux()
	mux.HandleFunc(callbackPattern(s.cfg.CallbackPath), s.handleCallback)

	s.server = &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.setState(StateListening)
	logging.Info(subsystem, "Listening for the OAuth callback on %s", listener.Addr())
	return nil
}

// callbackPattern matches the callback path exactly, so stray requests such
// as /favicon.ico never consume the single callback.
func callbackPattern(path string) string {
	if strings.HasSuffix(path, "/") {
		return "GET " + path + "{$}"
	}
	return "GET " + path
}

// Serve runs the server until the first callback has been handled or ctx is
// done. It returns the obtained token, an *ExchangeError or *PersistError
// for a failed callback, or ctx.Err() when cancelled first.
func (s *CallbackServer) Serve(ctx context.Context) (*oauth2.Token, error) {
	if s.listener == nil {
		if err := s.Listen(); err != nil {
			return nil, err
		}
	}

	// Requests inherit ctx so that cancelling aborts an in-flight exchange.
	s.server.BaseContext = func(net.Listener) context.Context { return ctx }

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := s.server.Serve(s.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("callback server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		select {
		case <-s.done:
			logging.Debug(subsystem, "Callback handled, shutting down")
		case <-gctx.Done():
			logging.Debug(subsystem, "Context done before callback, shutting down")
		case <-s.stopped:
		}
		s.Stop()
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	select {
	case <-s.done:
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.token, s.err
	default:
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return nil, ErrStopped
}

// handleCallback handles the OAuth callback request.
func (s *CallbackServer) handleCallback(w http.ResponseWriter, r *http.Request) {
	var handled bool
	s.once.Do(func() {
		handled = true
		s.processCallback(w, r)
	})

	if !handled {
		logging.Warn(subsystem, "Ignoring request to %s: callback already processed", r.URL.Path)
		http.Error(w, "Callback already processed", http.StatusConflict)
	}
}

// processCallback exchanges the code and persists the result.
// This is called exactly once via sync.Once.
func (s *CallbackServer) processCallback(w http.ResponseWriter, r *http.Request) {
	s.setState(StateHandling)

	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("X-Frame-Options", "DENY")
	w.Header().Set("Referrer-Policy", "no-referrer")
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")

	query := r.URL.Query()
	code := query.Get("code")
	if code == "" {
		logging.Warn(subsystem, "Callback carries no code (provider error: %q)", query.Get("error"))
	}

	token, err := s.exchanger.Exchange(r.Context(), s.client, code)
	if err != nil {
		logging.Error(subsystem, err, "Token exchange failed")
		fmt.Fprintf(w, "Error during token generation: %s", errorPayload(err))
		s.finish(nil, &ExchangeError{Err: err})
		return
	}

	if err := s.persister.Persist(s.client, token); err != nil {
		logging.Error(subsystem, err, "Writing credentials failed")
		fmt.Fprintf(w, "Error during token generation: %s", errorPayload(err))
		s.finish(nil, &PersistError{Err: err})
		return
	}

	fmt.Fprint(w, s.successMessage())
	s.finish(token, nil)
}

func (s *CallbackServer) successMessage() string {
	if filepath.IsAbs(s.cfg.EnvFile) {
		return fmt.Sprintf("File %s generated", s.cfg.EnvFile)
	}
	return fmt.Sprintf("File %s generated at your root folder", s.cfg.EnvFile)
}

func (s *CallbackServer) finish(token *oauth2.Token, err error) {
	s.mu.Lock()
	s.token = token
	s.err = err
	s.mu.Unlock()

	if err != nil {
		s.setState(StateFailed)
	} else {
		s.setState(StateSucceeded)
	}
	close(s.done)
}

// Stop gracefully shuts down the callback server and releases the port.
// It is safe to call more than once.
func (s *CallbackServer) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopped)
		if s.server != nil {
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			_ = s.server.Shutdown(ctx)
		}
		if s.listener != nil {
			_ = s.listener.Close()
		}
		s.setState(StateStopped)
	})
}

// Done is closed once the single callback has been handled.
func (s *CallbackServer) Done() <-chan struct{} {
	return s.done
}

// State returns the current lifecycle state.
func (s *CallbackServer) State() State {
	return State(s.state.Load())
}

func (s *CallbackServer) setState(st State) {
	s.state.Store(int32(st))
	logging.Debug(subsystem, "State changed to %s", st)
}

// Addr returns the bound address, or "" before Listen.
func (s *CallbackServer) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

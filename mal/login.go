package mal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/malq-cli/malq/constant"
	"github.com/malq-cli/malq/log"
)

// LoginOptions tunes the authorization code flow.
type LoginOptions struct {
	// Addr is the loopback address receiving the redirect, constant.ListenAddress by default.
	Addr string
	// RedirectURI is sent to both endpoints when set. It must match the client's registration.
	RedirectURI string
	// Method defaults to ChallengePlain.
	Method ChallengeMethod
	// OnURL receives the authorization URL once the listener is up.
	OnURL func(authURL string)
	// OpenBrowser, when set, is asked to open the authorization URL. Its failure is only logged.
	OpenBrowser func(authURL string) error
}

// Login runs the OAuth2 authorization code flow with PKCE. It waits for the
// browser redirect on a local listener until ctx is done, redeems the code,
// and stores the token in the client's credential store.
func (c *Client) Login(ctx context.Context, options LoginOptions) error {
	if c.credentials.ClientID() == "" {
		return ErrNoClientID
	}

	if options.Addr == "" {
		options.Addr = constant.ListenAddress
	}

	challenge, err := newPKCE(options.Method)
	if err != nil {
		return err
	}

	state := uuid.NewString()
	authURL := c.authURL(challenge, state, options.RedirectURI)

	code, err := awaitCode(ctx, options, authURL, state)
	if err != nil {
		return err
	}

	log.Info("authorization code received, exchanging")

	token, err := c.exchange(ctx, code, challenge, options.RedirectURI)
	if err != nil {
		return err
	}

	if err := c.credentials.Set(token); err != nil {
		return fmt.Errorf("save token: %w", err)
	}

	log.WithField("location", c.credentials.Location()).Info("logged in")
	return nil
}

// awaitCode owns the listener for as long as the flow waits for the redirect.
func awaitCode(ctx context.Context, options LoginOptions, authURL, state string) (string, error) {
	listener, err := net.Listen("tcp", options.Addr)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrListen, err)
	}

	handler := newCallbackHandler(state)
	server := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		if err := server.Serve(listener); !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.WithField("addr", listener.Addr().String()).Info("waiting for authorization redirect")

	if options.OnURL != nil {
		options.OnURL(authURL)
	}

	if options.OpenBrowser != nil {
		if err := options.OpenBrowser(authURL); err != nil {
			log.Warn("failed to open browser: " + err.Error())
		}
	}

	select {
	case result := <-handler.result:
		return result.code, result.err
	case err := <-serveErr:
		return "", fmt.Errorf("%w: %w", ErrListen, err)
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("%w: %w", ErrAuthorizationTimeout, ctx.Err())
		}
		return "", ctx.Err()
	}
}

type callbackResult struct {
	code string
	err  error
}

// callbackHandler inspects redirects one at a time, in arrival order, until
// one carries a code for this flow.
type callbackHandler struct {
	mu     sync.Mutex
	state  string
	once   sync.Once
	result chan callbackResult
}

func newCallbackHandler(state string) *callbackHandler {
	return &callbackHandler{state: state, result: make(chan callbackResult, 1)}
}

func (h *callbackHandler) finish(result callbackResult) {
	h.once.Do(func() {
		h.result <- result
	})
}

func (h *callbackHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	// pairs that parse are kept even when others don't
	query, err := url.ParseQuery(r.URL.RawQuery)

	code := query.Get("code")
	if code == "" && err != nil {
		writePage(w, http.StatusBadRequest, "Authentication Failed", "The redirect could not be read.")
		h.finish(callbackResult{err: fmt.Errorf("%w: %w", ErrMalformedCallback, err)})
		return
	}

	if code == "" {
		message := "No authorization code found in the redirect."
		if reason := query.Get("error"); reason != "" {
			message = "MyAnimeList answered: " + reason
		}
		writePage(w, http.StatusBadRequest, "Authentication Failed", message)
		return
	}

	if query.Get("state") != h.state {
		writePage(w, http.StatusBadRequest, "Authentication Failed", "This redirect belongs to a different login attempt.")
		return
	}

	writePage(w, http.StatusOK, "Authentication Successful", "You may close this tab and return to the terminal.")
	h.finish(callbackResult{code: code})
}

package mal

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/malq-cli/malq/auth"
	"github.com/malq-cli/malq/constant"
	"github.com/malq-cli/malq/log"
	"github.com/malq-cli/malq/network"
	"golang.org/x/oauth2"
)

// Options configures a Client. Zero values fall back to the public API.
type Options struct {
	// Credentials supplies the client id and, once logged in, the bearer token.
	Credentials *auth.Store
	// BaseURL is the API origin, constant.MalAPI by default.
	BaseURL string
	// HTTPClient defaults to network.Client.
	HTTPClient *http.Client
	// Endpoint holds the OAuth2 authorize and token URLs used by Login.
	Endpoint oauth2.Endpoint
}

// Client issues MyAnimeList API calls with the credentials of its store.
type Client struct {
	credentials *auth.Store
	baseURL     string
	http        *http.Client
	endpoint    oauth2.Endpoint
}

func New(options Options) *Client {
	c := &Client{
		credentials: options.Credentials,
		baseURL:     strings.TrimRight(options.BaseURL, "/"),
		http:        options.HTTPClient,
		endpoint:    options.Endpoint,
	}

	if c.credentials == nil {
		c.credentials = auth.NewStore("", nil)
	}
	if c.baseURL == "" {
		c.baseURL = constant.MalAPI
	}
	if c.http == nil {
		c.http = network.Client
	}
	if c.endpoint.AuthURL == "" || c.endpoint.TokenURL == "" {
		c.endpoint = Endpoint
	}

	return c
}

// Credentials returns the store the client reads tokens from.
func (c *Client) Credentials() *auth.Store {
	return c.credentials
}

// params is an ordered query string. Field lists go in raw so their commas
// and braces reach the API unescaped.
type params []string

func (p *params) set(key, value string) {
	*p = append(*p, url.QueryEscape(key)+"="+url.QueryEscape(value))
}

func (p *params) setInt(key string, value int) {
	p.set(key, strconv.Itoa(value))
}

func (p *params) raw(key, value string) {
	*p = append(*p, key+"="+value)
}

func (p params) encode() string {
	return strings.Join(p, "&")
}

func (c *Client) url(path string, query params) string {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.encode()
	}
	return u
}

// authorize picks the bearer token when one is held and the client id header otherwise.
func (c *Client) authorize(req *http.Request, token string) error {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
		return nil
	}

	clientID := c.credentials.ClientID()
	if clientID == "" {
		return ErrNoClientID
	}
	req.Header.Set("X-MAL-CLIENT-ID", clientID)
	return nil
}

func (c *Client) get(ctx context.Context, path string, query params, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url(path, query), nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}

	if err := c.authorize(req, c.credentials.Token()); err != nil {
		return err
	}

	return c.do(req, out)
}

// mutate sends an authenticated write. It never touches the network without a token.
func (c *Client) mutate(ctx context.Context, method, path string, form url.Values, out any) error {
	token := c.credentials.Token()
	if token == "" {
		return ErrNotAuthenticated
	}

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path, nil), body)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	if err := c.authorize(req, token); err != nil {
		return err
	}

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	entry := log.WithField("method", req.Method).WithField("path", req.URL.Path)

	resp, err := c.http.Do(req)
	if err != nil {
		entry.Error(err)
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read body: %w", ErrTransport, err)
	}

	entry.WithField("status", resp.StatusCode).Debug("mal response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &RequestError{
			Method:     req.Method,
			Path:       req.URL.Path,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	if out == nil || len(body) == 0 {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return nil
}

func animePageURL(id int) string {
	return constant.MalWeb + "/anime/" + strconv.Itoa(id)
}

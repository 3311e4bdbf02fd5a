package mal

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/malq-cli/malq/constant"
	"golang.org/x/oauth2"
)

// Endpoint is the MyAnimeList OAuth2 endpoint. Credentials go in the form body.
var Endpoint = oauth2.Endpoint{
	AuthURL:   constant.MalAuthorize,
	TokenURL:  constant.MalToken,
	AuthStyle: oauth2.AuthStyleInParams,
}

// ChallengeMethod is how the PKCE challenge is derived from the verifier.
// MyAnimeList only implements plain, where both are equal.
type ChallengeMethod string

const (
	ChallengePlain ChallengeMethod = "plain"
	ChallengeS256  ChallengeMethod = "S256"
)

func ParseChallengeMethod(s string) (ChallengeMethod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "plain":
		return ChallengePlain, nil
	case "s256":
		return ChallengeS256, nil
	default:
		return "", fmt.Errorf("%w: unknown challenge method %q", ErrValidation, s)
	}
}

type pkce struct {
	verifier  string
	challenge string
	method    ChallengeMethod
}

func newPKCE(method ChallengeMethod) (pkce, error) {
	verifier := oauth2.GenerateVerifier()

	switch method {
	case ChallengePlain, "":
		return pkce{verifier: verifier, challenge: verifier, method: ChallengePlain}, nil
	case ChallengeS256:
		return pkce{verifier: verifier, challenge: oauth2.S256ChallengeFromVerifier(verifier), method: ChallengeS256}, nil
	default:
		return pkce{}, fmt.Errorf("%w: unknown challenge method %q", ErrValidation, method)
	}
}

func (c *Client) oauthConfig(redirectURI string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:    c.credentials.ClientID(),
		Endpoint:    c.endpoint,
		RedirectURL: redirectURI,
	}
}

func (c *Client) authURL(p pkce, state, redirectURI string) string {
	return c.oauthConfig(redirectURI).AuthCodeURL(
		state,
		oauth2.SetAuthURLParam("code_challenge", p.challenge),
		oauth2.SetAuthURLParam("code_challenge_method", string(p.method)),
	)
}

// exchange redeems an authorization code. Any response carrying an
// access_token counts as success; anything else fails with the raw body.
func (c *Client) exchange(ctx context.Context, code string, p pkce, redirectURI string) (string, error) {
	form := url.Values{}
	form.Set("client_id", c.credentials.ClientID())
	form.Set("code", code)
	form.Set("code_verifier", p.verifier)
	form.Set("grant_type", "authorization_code")
	if redirectURI != "" {
		form.Set("redirect_uri", redirectURI)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenExchange, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenExchange, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenExchange, err)
	}

	var token struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(body, &token); err != nil || token.AccessToken == "" {
		return "", fmt.Errorf("%w: %s", ErrNoAccessToken, strings.TrimSpace(string(body)))
	}

	return token.AccessToken, nil
}

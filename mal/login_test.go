package mal

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/malq-cli/malq/auth"
	. "github.com/smartystreets/goconvey/convey"
	"golang.org/x/oauth2"
)

func freeAddr() string {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		panic(err)
	}
	defer l.Close()
	return l.Addr().String()
}

// redirect plays the browser: it hits the listener with rawQuery and returns the status.
func redirect(addr, rawQuery string) int {
	resp, err := http.Get("http://" + addr + "/callback?" + rawQuery)
	if err != nil {
		return 0
	}
	defer resp.Body.Close()
	return resp.StatusCode
}

func newLoginClient(tokenStub *apiStub, clientID string) *Client {
	return New(Options{
		Credentials: auth.NewStore(clientID, nil),
		HTTPClient:  tokenStub.Client(),
		Endpoint: oauth2.Endpoint{
			AuthURL:  "https://myanimelist.test/v1/oauth2/authorize",
			TokenURL: tokenStub.URL + "/v1/oauth2/token",
		},
	})
}

func TestLogin(t *testing.T) {
	Convey("Given a token endpoint that grants tokens", t, func() {
		tokenStub := newAPIStub(http.StatusOK, `{"token_type":"Bearer","expires_in":2678400,"access_token":"fresh-token","refresh_token":"r"}`)
		Reset(tokenStub.Close)

		c := newLoginClient(tokenStub, "cid")
		addr := freeAddr()
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		Reset(cancel)

		Convey("When the browser is redirected back with a code", func() {
			var authURL *url.URL
			statuses := make(chan int, 3)

			err := c.Login(ctx, LoginOptions{
				Addr: addr,
				OnURL: func(raw string) {
					authURL, _ = url.Parse(raw)
					state := authURL.Query().Get("state")
					go func() {
						statuses <- redirect(addr, "error=access_denied")
						statuses <- redirect(addr, "code=abc&state=someone-else")
						statuses <- redirect(addr, "code=abc&state="+url.QueryEscape(state))
					}()
				},
			})

			Convey("Then the token is stored", func() {
				So(err, ShouldBeNil)
				So(c.Credentials().Token(), ShouldEqual, "fresh-token")
				So(c.Credentials().Authenticated(), ShouldBeTrue)
			})

			Convey("Then redirects without a matching code were answered and ignored", func() {
				So(<-statuses, ShouldEqual, http.StatusBadRequest)
				So(<-statuses, ShouldEqual, http.StatusBadRequest)
				So(<-statuses, ShouldEqual, http.StatusOK)
			})

			Convey("Then the authorization URL carries a plain challenge", func() {
				query := authURL.Query()
				So(authURL.Host, ShouldEqual, "myanimelist.test")
				So(query.Get("response_type"), ShouldEqual, "code")
				So(query.Get("client_id"), ShouldEqual, "cid")
				So(query.Get("code_challenge_method"), ShouldEqual, "plain")
				So(query.Get("state"), ShouldNotBeEmpty)
				So(query.Has("redirect_uri"), ShouldBeFalse)
			})

			Convey("Then the code is redeemed with the verifier", func() {
				So(tokenStub.hits(), ShouldEqual, 1)

				req := tokenStub.last()
				So(req.Method, ShouldEqual, http.MethodPost)
				So(req.URI, ShouldEqual, "/v1/oauth2/token")

				form, _ := url.ParseQuery(req.Body)
				So(form.Get("grant_type"), ShouldEqual, "authorization_code")
				So(form.Get("client_id"), ShouldEqual, "cid")
				So(form.Get("code"), ShouldEqual, "abc")
				So(form.Get("code_verifier"), ShouldEqual, authURL.Query().Get("code_challenge"))
				So(len(form.Get("code_verifier")), ShouldBeBetweenOrEqual, 43, 128)
			})

			Convey("Then the listener is closed", func() {
				So(redirect(addr, "code=late"), ShouldEqual, 0)
			})
		})

		Convey("When S256 is requested", func() {
			var challenge, method string

			err := c.Login(ctx, LoginOptions{
				Addr:        addr,
				Method:      ChallengeS256,
				RedirectURI: "http://" + addr + "/callback",
				OnURL: func(raw string) {
					u, _ := url.Parse(raw)
					challenge = u.Query().Get("code_challenge")
					method = u.Query().Get("code_challenge_method")
					go redirect(addr, "code=abc&state="+url.QueryEscape(u.Query().Get("state")))
				},
			})

			Convey("Then the challenge is derived from the verifier", func() {
				So(err, ShouldBeNil)
				So(method, ShouldEqual, "S256")

				form, _ := url.ParseQuery(tokenStub.last().Body)
				So(challenge, ShouldEqual, oauth2.S256ChallengeFromVerifier(form.Get("code_verifier")))
				So(form.Get("redirect_uri"), ShouldEqual, "http://"+addr+"/callback")
			})
		})

		Convey("When the redirect carries a code next to pairs that cannot be parsed", func() {
			err := c.Login(ctx, LoginOptions{
				Addr: addr,
				OnURL: func(raw string) {
					u, _ := url.Parse(raw)
					go redirect(addr, "code=abc&state="+url.QueryEscape(u.Query().Get("state"))+"&x=1;y=2")
				},
			})

			Convey("Then the code is still redeemed", func() {
				So(err, ShouldBeNil)
				So(c.Credentials().Token(), ShouldEqual, "fresh-token")

				form, _ := url.ParseQuery(tokenStub.last().Body)
				So(form.Get("code"), ShouldEqual, "abc")
			})
		})

		Convey("When the redirect query cannot be parsed", func() {
			err := c.Login(ctx, LoginOptions{
				Addr: addr,
				OnURL: func(string) {
					go redirect(addr, "code=%zz")
				},
			})

			Convey("Then the login fails before any exchange", func() {
				So(errors.Is(err, ErrMalformedCallback), ShouldBeTrue)
				So(tokenStub.hits(), ShouldEqual, 0)
				So(c.Credentials().Authenticated(), ShouldBeFalse)
			})
		})

		Convey("When opening the browser fails", func() {
			err := c.Login(ctx, LoginOptions{
				Addr: addr,
				OpenBrowser: func(raw string) error {
					u, _ := url.Parse(raw)
					go redirect(addr, "code=abc&state="+url.QueryEscape(u.Query().Get("state")))
					return errors.New("no display")
				},
			})

			Convey("Then the flow still completes", func() {
				So(err, ShouldBeNil)
				So(c.Credentials().Token(), ShouldEqual, "fresh-token")
			})
		})
	})

	Convey("Given a token endpoint that refuses the code", t, func() {
		tokenStub := newAPIStub(http.StatusBadRequest, `{"error":"invalid_grant","message":"authorization code expired"}`)
		Reset(tokenStub.Close)

		c := newLoginClient(tokenStub, "cid")
		addr := freeAddr()

		Convey("Then the response body is reported", func() {
			err := c.Login(context.Background(), LoginOptions{
				Addr: addr,
				OnURL: func(raw string) {
					u, _ := url.Parse(raw)
					go redirect(addr, "code=abc&state="+url.QueryEscape(u.Query().Get("state")))
				},
			})

			So(errors.Is(err, ErrNoAccessToken), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "invalid_grant")
			So(c.Credentials().Authenticated(), ShouldBeFalse)
		})
	})

	Convey("Given a login nobody completes", t, func() {
		tokenStub := newAPIStub(http.StatusOK, `{}`)
		Reset(tokenStub.Close)
		c := newLoginClient(tokenStub, "cid")

		Convey("When the deadline passes", func() {
			ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
			defer cancel()

			err := c.Login(ctx, LoginOptions{Addr: freeAddr()})

			Convey("Then it times out", func() {
				So(errors.Is(err, ErrAuthorizationTimeout), ShouldBeTrue)
				So(errors.Is(err, context.DeadlineExceeded), ShouldBeTrue)
			})
		})

		Convey("When the context is cancelled", func() {
			ctx, cancel := context.WithCancel(context.Background())

			err := c.Login(ctx, LoginOptions{Addr: freeAddr(), OnURL: func(string) { cancel() }})

			Convey("Then the cancellation is returned as is", func() {
				So(errors.Is(err, context.Canceled), ShouldBeTrue)
				So(errors.Is(err, ErrAuthorizationTimeout), ShouldBeFalse)
			})
		})
	})

	Convey("Given an address that is taken", t, func() {
		taken, err := net.Listen("tcp", "127.0.0.1:0")
		So(err, ShouldBeNil)
		Reset(func() { _ = taken.Close() })

		tokenStub := newAPIStub(http.StatusOK, `{}`)
		Reset(tokenStub.Close)
		c := newLoginClient(tokenStub, "cid")

		Convey("Then Login fails to listen", func() {
			err := c.Login(context.Background(), LoginOptions{Addr: taken.Addr().String()})
			So(errors.Is(err, ErrListen), ShouldBeTrue)
		})
	})

	Convey("Given no client id", t, func() {
		tokenStub := newAPIStub(http.StatusOK, `{}`)
		Reset(tokenStub.Close)
		c := newLoginClient(tokenStub, "")

		Convey("Then Login refuses to start", func() {
			err := c.Login(context.Background(), LoginOptions{Addr: freeAddr()})
			So(errors.Is(err, ErrNoClientID), ShouldBeTrue)
		})
	})
}

package mal

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/malq-cli/malq/auth"
	"github.com/malq-cli/malq/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

type captured struct {
	Method string
	URI    string
	Header http.Header
	Body   string
}

// apiStub answers every request with the same status and body and keeps a copy of each request.
type apiStub struct {
	*httptest.Server

	mu       sync.Mutex
	requests []captured
}

func newAPIStub(status int, body string) *apiStub {
	stub := &apiStub{}
	stub.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)

		stub.mu.Lock()
		stub.requests = append(stub.requests, captured{
			Method: r.Method,
			URI:    r.URL.RequestURI(),
			Header: r.Header.Clone(),
			Body:   string(data),
		})
		stub.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	return stub
}

func (s *apiStub) hits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

func (s *apiStub) last() captured {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests[len(s.requests)-1]
}

func fixture(name string) string {
	data, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		panic(err)
	}
	return string(data)
}

func newTestClient(stub *apiStub, clientID, token string) *Client {
	store := auth.NewStore(clientID, nil)
	if token != "" {
		_ = store.Set(token)
	}
	return New(Options{Credentials: store, BaseURL: stub.URL, HTTPClient: stub.Client()})
}

func TestNew(t *testing.T) {
	Convey("Given a client with zero options", t, func() {
		c := New(Options{})

		Convey("Then it targets the public API", func() {
			So(c.baseURL, ShouldEqual, "https://api.myanimelist.net/v2")
			So(c.endpoint.TokenURL, ShouldEqual, "https://myanimelist.net/v1/oauth2/token")
			So(c.Credentials(), ShouldNotBeNil)
			So(c.Credentials().Authenticated(), ShouldBeFalse)
		})
	})

	Convey("Given a base URL with a trailing slash", t, func() {
		c := New(Options{BaseURL: "http://localhost:9999/v2/"})

		Convey("Then paths are joined without a double slash", func() {
			So(c.url("/anime/1", nil), ShouldEqual, "http://localhost:9999/v2/anime/1")
		})
	})
}

func TestAuthorizationHeaders(t *testing.T) {
	Convey("Given an API stub", t, func() {
		stub := newAPIStub(http.StatusOK, fixture("katanagatari.json"))
		Reset(stub.Close)

		Convey("When no token is held", func() {
			c := newTestClient(stub, "my-client-id", "")
			_, err := c.Anime(6594).Run(context.Background())
			So(err, ShouldBeNil)

			Convey("Then the client id header is sent alone", func() {
				req := stub.last()
				So(req.Header.Get("X-MAL-CLIENT-ID"), ShouldEqual, "my-client-id")
				So(req.Header.Get("Authorization"), ShouldBeEmpty)
			})
		})

		Convey("When a token is held", func() {
			c := newTestClient(stub, "my-client-id", "tok-123")
			_, err := c.Anime(6594).Run(context.Background())
			So(err, ShouldBeNil)

			Convey("Then the bearer token replaces the client id", func() {
				req := stub.last()
				So(req.Header.Get("Authorization"), ShouldEqual, "Bearer tok-123")
				So(req.Header.Get("X-MAL-CLIENT-ID"), ShouldBeEmpty)
			})
		})

		Convey("When there is neither a token nor a client id", func() {
			c := newTestClient(stub, "", "")
			_, err := c.Anime(6594).Run(context.Background())

			Convey("Then nothing is sent", func() {
				So(errors.Is(err, ErrNoClientID), ShouldBeTrue)
				So(stub.hits(), ShouldEqual, 0)
			})
		})
	})
}

func TestRequestFailures(t *testing.T) {
	Convey("Given an API that answers 404", t, func() {
		stub := newAPIStub(http.StatusNotFound, `{"error":"not_found","message":""}`+"\n")
		Reset(stub.Close)
		c := newTestClient(stub, "id", "")

		Convey("When an entry is fetched", func() {
			anime, err := c.Anime(1).Run(context.Background())

			Convey("Then a RequestError carries status and body", func() {
				So(anime, ShouldBeNil)
				So(errors.Is(err, ErrRequestFailed), ShouldBeTrue)

				var reqErr *RequestError
				So(errors.As(err, &reqErr), ShouldBeTrue)
				So(reqErr.StatusCode, ShouldEqual, http.StatusNotFound)
				So(reqErr.Method, ShouldEqual, http.MethodGet)
				So(reqErr.Body, ShouldEqual, `{"error":"not_found","message":""}`)
				So(reqErr.Error(), ShouldContainSubstring, "404")
			})
		})
	})

	Convey("Given an API that answers with something other than JSON", t, func() {
		stub := newAPIStub(http.StatusOK, "<html>maintenance</html>")
		Reset(stub.Close)
		c := newTestClient(stub, "id", "")

		Convey("Then decoding fails with ErrDecode", func() {
			_, err := c.Anime(1).Run(context.Background())
			So(errors.Is(err, ErrDecode), ShouldBeTrue)
		})
	})

	Convey("Given an API that is not listening", t, func() {
		stub := newAPIStub(http.StatusOK, "{}")
		stub.Close()
		c := newTestClient(stub, "id", "")

		Convey("Then the failure is a transport error", func() {
			_, err := c.Anime(1).Run(context.Background())
			So(errors.Is(err, ErrTransport), ShouldBeTrue)
		})
	})
}

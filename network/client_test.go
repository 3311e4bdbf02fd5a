package network

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/malq-cli/malq/constant"
	. "github.com/smartystreets/goconvey/convey"
)

func TestClient(t *testing.T) {
	Convey("Given a client", t, func() {
		var agent string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			agent = r.Header.Get("User-Agent")
		}))
		defer server.Close()

		client := New(time.Second)

		Convey("The timeout is applied", func() {
			So(client.Timeout, ShouldEqual, time.Second)
		})

		Convey("The malq user agent is added", func() {
			resp, err := client.Get(server.URL)
			So(err, ShouldBeNil)
			_ = resp.Body.Close()
			So(agent, ShouldEqual, constant.UserAgent)
		})

		Convey("An explicit user agent is kept", func() {
			req, _ := http.NewRequest(http.MethodGet, server.URL, nil)
			req.Header.Set("User-Agent", "custom")
			resp, err := client.Do(req)
			So(err, ShouldBeNil)
			_ = resp.Body.Close()
			So(agent, ShouldEqual, "custom")
		})
	})
}

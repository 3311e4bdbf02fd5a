package open

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestBrowser(t *testing.T) {
	Convey("Browser refuses non-http URLs", t, func() {
		So(Browser("file:///etc/passwd"), ShouldNotBeNil)
		So(Browser("javascript:alert(1)"), ShouldNotBeNil)
	})
}

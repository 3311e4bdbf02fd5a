package log

import (
	"bytes"
	"testing"

	"github.com/malq-cli/malq/filesystem"
	"github.com/malq-cli/malq/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Given logging is disabled", t, func() {
		viper.Set(key.LogsWrite, false)
		So(Setup(), ShouldBeNil)

		Convey("Nothing is emitted", func() {
			var buf bytes.Buffer
			configure(&buf)
			Info("hidden")
			So(buf.Len(), ShouldEqual, 0)
		})
	})

	Convey("Given logging is enabled", t, func() {
		viper.Set(key.LogsWrite, true)
		defer viper.Set(key.LogsWrite, false)

		Convey("Setup creates the daily file", func() {
			So(Setup(), ShouldBeNil)
			So(enabled, ShouldBeTrue)
		})
	})
}

func TestEntries(t *testing.T) {
	Convey("Given an explicit output", t, func() {
		var buf bytes.Buffer
		viper.Set(key.LogsLevel, "debug")
		SetOutput(&buf)

		Convey("Structured fields are written", func() {
			WithField("status", 200).WithField("path", "/anime/1").Debug("response")
			So(buf.String(), ShouldContainSubstring, "status=200")
			So(buf.String(), ShouldContainSubstring, "path=/anime/1")
		})

		Convey("Levels below the threshold are dropped", func() {
			viper.Set(key.LogsLevel, "warn")
			SetOutput(&buf)
			Debugf("quiet %d", 1)
			So(buf.String(), ShouldNotContainSubstring, "quiet")
		})
	})
}

package config

import (
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
	Convey("Config Setup", t, func() {
		Convey("Should initialize without a config file", func() {
			So(Setup(), ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			So(Setup(), ShouldBeNil)
			for name := range Default {
				So(viper.IsSet(name), ShouldBeTrue)
			}
			So(viper.GetString(key.AuthListenAddress), ShouldEqual, "127.0.0.1:8080")
			So(viper.GetString(key.AuthChallengeMethod), ShouldEqual, "plain")
			So(viper.GetString(key.MalClientID), ShouldBeEmpty)
		})

		Convey("Environment variables override defaults", func() {
			t.Setenv("MALQ_MAL_CLIENT_ID", "from-env")
			So(Setup(), ShouldBeNil)
			So(viper.GetString(key.MalClientID), ShouldEqual, "from-env")
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("auth.listen_address"), ShouldEqual, "auth_listen_address")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given a registered field", t, func() {
		field := Default[key.AuthTimeout]

		Convey("Env is prefixed with the application name", func() {
			So(field.Env(), ShouldEqual, "MALQ_AUTH_TIMEOUT")
		})

		Convey("Its type name follows the default value", func() {
			So(field.typeName(), ShouldEqual, "int")
		})

		Convey("Pretty rendering includes key and env", func() {
			pretty := field.Pretty()
			So(pretty, ShouldContainSubstring, key.AuthTimeout)
			So(pretty, ShouldContainSubstring, "MALQ_AUTH_TIMEOUT")
		})
	})
}

package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/lifo-cli/lifo/filesystem"
	"github.com/lifo-cli/lifo/key"
	"github.com/lifo-cli/lifo/where"
	"github.com/samber/lo"
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

		Convey("No log file is created", func() {
			files := lo.Must(filesystem.API().ReadDir(where.Logs()))
			So(files, ShouldBeEmpty)
		})
	})

	Convey("Given logging is enabled", t, func() {
		viper.Set(key.LogsWrite, true)
		defer viper.Set(key.LogsWrite, false)
		So(Setup(), ShouldBeNil)

		Convey("A dated log file exists", func() {
			files := lo.Must(filesystem.API().ReadDir(where.Logs()))
			So(files, ShouldHaveLength, 1)
			So(files[0].Name(), ShouldEndWith, ".log")
		})
	})
}

func TestConfigure(t *testing.T) {
	Convey("Given JSON output at debug level", t, func() {
		viper.Set(key.LogsJson, true)
		viper.Set(key.LogsLevel, "debug")
		defer viper.Set(key.LogsJson, false)
		defer viper.Set(key.LogsLevel, "info")

		var buf bytes.Buffer
		So(configure(&buf), ShouldBeNil)

		With(Fields{"op": "push"}).Debug("executed")
		Trace("hidden")

		var entry map[string]any
		So(json.Unmarshal(buf.Bytes(), &entry), ShouldBeNil)
		So(entry["op"], ShouldEqual, "push")
		So(entry["msg"], ShouldEqual, "executed")
	})
}

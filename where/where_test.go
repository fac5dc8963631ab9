package where

import (
	"path/filepath"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/streamfront/streamfront/filesystem"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config() honors the override variable", func() {
			t.Setenv(EnvConfigPath, "/custom/streamfront")
			path := Config()
			So(path, ShouldEqual, "/custom/streamfront")
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Logs() lives under Config()", func() {
			t.Setenv(EnvConfigPath, "/custom/streamfront")
			So(Logs(), ShouldEqual, filepath.Join("/custom/streamfront", "logs"))
			So(lo.Must(filesystem.API().IsDir(Logs())), ShouldBeTrue)
		})

		Convey("History() is a file path and is not created", func() {
			t.Setenv(EnvConfigPath, "/custom/streamfront")
			path := History()
			So(filepath.Base(path), ShouldEqual, "history.json")
			So(lo.Must(filesystem.API().Exists(path)), ShouldBeFalse)
		})

		Convey("Cache() and Temp() exist", func() {
			So(lo.Must(filesystem.API().IsDir(Cache())), ShouldBeTrue)
			So(lo.Must(filesystem.API().IsDir(Temp())), ShouldBeTrue)
		})
	})
}

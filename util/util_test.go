package util

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/streamfront/streamfront/filesystem"
)

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "source", "sources"), ShouldEqual, "1 source")
		So(Quantify(3, "source", "sources"), ShouldEqual, "3 sources")
		So(Quantify(0, "source", "sources"), ShouldEqual, "0 sources")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("drive"), ShouldEqual, "Drive")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestClampMax(t *testing.T) {
	Convey("Clamp and Max", t, func() {
		So(Clamp(150.0, 0, 100), ShouldEqual, 100.0)
		So(Clamp(-1, 0, 100), ShouldEqual, 0)
		So(Clamp(42, 0, 100), ShouldEqual, 42)
		So(Max(1, 5, 2), ShouldEqual, 5)
		So(Max[int](), ShouldEqual, 0)
	})
}

func TestDelete(t *testing.T) {
	Convey("Given files in memory", t, func() {
		filesystem.SetMemMapFs()
		fs := filesystem.API()
		So(fs.MkdirAll("/dir/sub", 0o755), ShouldBeNil)
		So(fs.WriteFile("/dir/sub/a.txt", []byte("a"), 0o644), ShouldBeNil)
		So(fs.WriteFile("/file.txt", []byte("b"), 0o644), ShouldBeNil)

		Convey("Delete removes a single file", func() {
			So(Delete("/file.txt"), ShouldBeNil)
			exists, _ := fs.Exists("/file.txt")
			So(exists, ShouldBeFalse)
		})

		Convey("Delete removes a directory tree", func() {
			So(Delete("/dir"), ShouldBeNil)
			exists, _ := fs.DirExists("/dir")
			So(exists, ShouldBeFalse)
		})

		Convey("Delete reports missing paths", func() {
			So(Delete("/missing"), ShouldNotBeNil)
		})
	})
}

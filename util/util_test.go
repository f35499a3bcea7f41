package util

import (
	"testing"

	"github.com/lifo-cli/lifo/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "item", "items"), ShouldEqual, "1 item")
		So(Quantify(2, "item", "items"), ShouldEqual, "2 items")
		So(Quantify(0, "item", "items"), ShouldEqual, "0 items")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("hello"), ShouldEqual, "Hello")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestTruncate(t *testing.T) {
	Convey("Truncate", t, func() {
		So(Truncate("[1 2 3 4 5]", 6), ShouldEqual, "[1 2 …")
		So(Truncate("[1 2]", 10), ShouldEqual, "[1 2]")
		So(Truncate("[1 2]", 0), ShouldEqual, "[1 2]")
	})
}

func TestFileStem(t *testing.T) {
	Convey("FileStem", t, func() {
		So(FileStem("path/to/undo.lua"), ShouldEqual, "undo")
		So(FileStem("file"), ShouldEqual, "file")
	})
}

func TestMaxMin(t *testing.T) {
	Convey("Max/Min", t, func() {
		So(Max(1, 5, 2), ShouldEqual, 5)
		So(Min(1, 5, 2), ShouldEqual, 1)
		So(Max[int](), ShouldEqual, 0)
	})
}

func TestDelete(t *testing.T) {
	Convey("Delete", t, func() {
		filesystem.SetMemMapFs()
		fs := filesystem.API()
		lo.Must0(fs.MkdirAll("/logs/old", 0o755))
		lo.Must0(fs.WriteFile("/logs/old/a.log", []byte("x"), 0o644))
		lo.Must0(fs.WriteFile("/history.json", []byte("{}"), 0o644))

		So(Delete("/logs"), ShouldBeNil)
		So(lo.Must(fs.Exists("/logs/old/a.log")), ShouldBeFalse)
		So(Delete("/history.json"), ShouldBeNil)
		So(lo.Must(fs.Exists("/history.json")), ShouldBeFalse)
		So(Delete("/missing"), ShouldNotBeNil)
	})
}

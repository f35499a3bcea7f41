package filesystem

import (
	"os"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestApi(t *testing.T) {
	Convey("Filesystem API", t, func() {
		Convey("Should default to OsFs", func() {
			SetOsFs()
			fs := API()
			So(fs, ShouldNotBeNil)
			So(fs.Name(), ShouldEqual, "OsFs")
		})

		Convey("Should switch to MemMapFs", func() {
			SetMemMapFs()
			fs := API()
			So(fs, ShouldNotBeNil)
			So(fs.Name(), ShouldEqual, "MemMapFS")
		})
	})
}

func TestReadAll(t *testing.T) {
	Convey("Given an in-memory filesystem", t, func() {
		SetMemMapFs()
		So(API().WriteFile("/script.lifo", []byte("push 1"), 0o644), ShouldBeNil)

		Convey("Files are read through the backend", func() {
			data, err := ReadAll("/script.lifo", nil)
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "push 1")
		})

		Convey("The stdin path reads the given reader", func() {
			data, err := ReadAll(Stdin, strings.NewReader("pop"))
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "pop")
		})

		Convey("Missing files are an error", func() {
			_, err := ReadAll("/missing", nil)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestGacheFs(t *testing.T) {
	Convey("GacheFs writes through the active backend", t, func() {
		SetMemMapFs()
		fs := GacheFs{}

		So(fs.MkdirAll("/cache/lifo", os.ModePerm), ShouldBeNil)
		f, err := fs.OpenFile("/cache/lifo/history.json", os.O_CREATE|os.O_WRONLY, 0o644)
		So(err, ShouldBeNil)
		_, err = f.Write([]byte("{}"))
		So(err, ShouldBeNil)
		So(f.Close(), ShouldBeNil)

		data, err := API().ReadFile("/cache/lifo/history.json")
		So(err, ShouldBeNil)
		So(string(data), ShouldEqual, "{}")
	})
}

package inline

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/lifo-cli/lifo/script"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRun(t *testing.T) {
	Convey("Given a script", t, func() {
		var out bytes.Buffer
		src := "push 1 2 3\npeek; pop; pop\nsize\npush 5; array\n"

		Convey("When running it in text mode", func() {
			err := Run(strings.NewReader(src), &Options{Out: &out})

			Convey("Then only results with output are printed", func() {
				So(err, ShouldBeNil)
				So(out.String(), ShouldEqual, "3\n3\n2\n1\n[1 5]\n")
			})
		})

		Convey("When running it with a trace", func() {
			var trace bytes.Buffer
			err := Run(strings.NewReader(src), &Options{Out: &out, Trace: &trace})

			Convey("Then every instruction and the ledger are traced", func() {
				So(err, ShouldBeNil)
				So(trace.String(), ShouldStartWith, "1: push 1 2 3\n2: peek\n")
				So(trace.String(), ShouldContainSubstring, "ledger: ")
				So(trace.String(), ShouldContainSubstring, "live 0")
			})
		})

		Convey("When running it in json mode", func() {
			err := Run(strings.NewReader(src), &Options{Out: &out, Json: true, Name: "demo"})
			So(err, ShouldBeNil)

			var output Output
			So(json.Unmarshal(out.Bytes(), &output), ShouldBeNil)

			Convey("Then the output holds results, stacks and a balanced ledger", func() {
				So(output.Script, ShouldEqual, "demo")
				So(output.Results, ShouldHaveLength, 7)
				So(*output.Results[1].Value, ShouldEqual, "3")
				So(output.Stacks["main"], ShouldResemble, []string{"1", "5"})
				So(output.Ledger.Balanced(), ShouldBeTrue)
				So(output.Error, ShouldBeEmpty)
			})
		})

		Convey("When filtering results", func() {
			filter, err := ParseResultFilter("pop")
			So(err, ShouldBeNil)

			err = Run(strings.NewReader(src), &Options{Out: &out, Filter: mo.Some(filter)})
			So(err, ShouldBeNil)
			So(out.String(), ShouldEqual, "3\n2\n")
		})
	})

	Convey("Given a script that fails halfway", t, func() {
		var out bytes.Buffer
		err := Run(strings.NewReader("push 1\nfree ghost\npush 2"), &Options{Out: &out, Json: true})

		Convey("Then the error is returned and reported", func() {
			So(errors.Is(err, script.ErrUnknownStack), ShouldBeTrue)

			var output Output
			So(json.Unmarshal(out.Bytes(), &output), ShouldBeNil)
			So(output.Results, ShouldHaveLength, 1)
			So(output.Error, ShouldContainSubstring, "unknown stack")
			So(output.Ledger.Balanced(), ShouldBeTrue)
		})
	})

	Convey("Given a script that does not parse", t, func() {
		var out bytes.Buffer
		err := Run(strings.NewReader("shove 1"), &Options{Out: &out, Json: true})

		So(errors.Is(err, script.ErrUnknownOp), ShouldBeTrue)

		var output Output
		So(json.Unmarshal(out.Bytes(), &output), ShouldBeNil)
		So(output.Results, ShouldBeEmpty)
		So(output.Error, ShouldContainSubstring, "shove")
	})

	Convey("Long lines are truncated to the width", t, func() {
		var out bytes.Buffer
		err := Run(strings.NewReader("push 1 2 3 4 5 6 7 8 9; array"), &Options{Out: &out, Width: 6})
		So(err, ShouldBeNil)
		So(out.String(), ShouldEqual, "[1 2 …\n")
	})
}

func TestParseResultFilter(t *testing.T) {
	Convey("Given filter descriptions", t, func() {
		Convey("Known keywords are accepted in any case", func() {
			filter, err := ParseResultFilter("Pop, peek")
			So(err, ShouldBeNil)
			So(filter(&script.Result{Op: "peek"}), ShouldBeTrue)
			So(filter(&script.Result{Op: "size"}), ShouldBeFalse)
		})

		Convey("Unknown keywords and empty lists are rejected", func() {
			_, err := ParseResultFilter("pop,shove")
			So(err, ShouldNotBeNil)
			_, err = ParseResultFilter(" , ")
			So(err, ShouldNotBeNil)
		})
	})
}

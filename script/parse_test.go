package script

import (
	"errors"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParseLine(t *testing.T) {
	Convey("Given a line with several statements", t, func() {
		instructions, err := ParseLine("push 1 2 3; pop # drop the top", 7)

		Convey("Then each statement becomes an instruction", func() {
			So(err, ShouldBeNil)
			So(instructions, ShouldHaveLength, 2)
			So(instructions[0].Op, ShouldEqual, OpPush)
			So(instructions[0].Args, ShouldResemble, []string{"1", "2", "3"})
			So(instructions[1].Op, ShouldEqual, OpPop)
			So(instructions[1].Line, ShouldEqual, 7)
		})
	})

	Convey("Given quoted words", t, func() {
		instructions, err := ParseLine(`push "a b" "" "x;#y"`, 1)

		Convey("Then quotes group and escape their content", func() {
			So(err, ShouldBeNil)
			So(instructions[0].Args, ShouldResemble, []string{"a b", "", "x;#y"})
		})

		Convey("Then the instruction renders back with the same quoting", func() {
			So(instructions[0].String(), ShouldEqual, `push "a b" "" "x;#y"`)
		})
	})

	Convey("Keywords are case insensitive", t, func() {
		instructions, err := ParseLine("PUSH 1", 1)
		So(err, ShouldBeNil)
		So(instructions[0].Op, ShouldEqual, OpPush)
	})

	Convey("Blank lines and comments parse to nothing", t, func() {
		instructions, err := ParseLine("   # nothing here", 1)
		So(err, ShouldBeNil)
		So(instructions, ShouldBeEmpty)
	})

	Convey("Given a misspelled keyword", t, func() {
		_, err := ParseLine("pusj 1", 3)

		Convey("Then the error suggests the closest keyword", func() {
			var parseErr *ParseError
			So(errors.As(err, &parseErr), ShouldBeTrue)
			So(errors.Is(err, ErrUnknownOp), ShouldBeTrue)
			So(parseErr.Line, ShouldEqual, 3)
			So(parseErr.Suggestion.OrEmpty(), ShouldEqual, "push")
			So(err.Error(), ShouldEqual, `line 3: unknown operation "pusj", did you mean push?`)
		})
	})

	Convey("A keyword far from every operation has no suggestion", t, func() {
		_, err := ParseLine("zzzzzzzzzz", 1)
		var parseErr *ParseError
		So(errors.As(err, &parseErr), ShouldBeTrue)
		So(parseErr.Suggestion.IsAbsent(), ShouldBeTrue)
	})

	Convey("Wrong argument counts are rejected", t, func() {
		for _, text := range []string{"push", "pop 1", "contains", "clone a b", "free a b"} {
			_, err := ParseLine(text, 1)
			So(errors.Is(err, ErrArity), ShouldBeTrue)
		}
	})

	Convey("An unterminated string is a syntax error", t, func() {
		_, err := ParseLine(`push "abc`, 2)
		So(errors.Is(err, ErrSyntax), ShouldBeTrue)
	})
}

func TestParse(t *testing.T) {
	Convey("Given a multi-line script", t, func() {
		script := strings.Join([]string{
			"# setup",
			"push 1 2",
			"",
			"size; peek",
		}, "\n")

		instructions, err := Parse(strings.NewReader(script))

		Convey("Then lines are numbered from one", func() {
			So(err, ShouldBeNil)
			So(instructions, ShouldHaveLength, 3)
			So(instructions[0].Line, ShouldEqual, 2)
			So(instructions[1].Line, ShouldEqual, 4)
			So(instructions[2].Op, ShouldEqual, OpPeek)
		})
	})

	Convey("Parsing stops at the first bad line", t, func() {
		_, err := Parse(strings.NewReader("push 1\npop 2\nshove"))
		var parseErr *ParseError
		So(errors.As(err, &parseErr), ShouldBeTrue)
		So(parseErr.Line, ShouldEqual, 2)
	})

	Convey("Lines longer than the default scanner buffer are read whole", t, func() {
		instructions, err := Parse(strings.NewReader("push " + strings.Repeat("x ", 40000) + "\npop"))
		So(err, ShouldBeNil)
		So(instructions, ShouldHaveLength, 2)
		So(instructions[0].Args, ShouldHaveLength, 40000)
		So(instructions[1].Line, ShouldEqual, 2)
	})
}

func TestTarget(t *testing.T) {
	Convey("Instructions target the current stack unless they name one", t, func() {
		target := func(text string) string {
			instructions, err := ParseLine(text, 1)
			So(err, ShouldBeNil)
			return instructions[0].Target("main")
		}

		So(target("push 1"), ShouldEqual, "main")
		So(target("free"), ShouldEqual, "main")
		So(target("free spare"), ShouldEqual, "spare")
		So(target("clone copy"), ShouldEqual, "copy")
		So(target("use other"), ShouldEqual, "other")
	})
}

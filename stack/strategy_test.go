package stack

import (
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

type word struct {
	runes    []rune
	released *int
}

func (w *word) Clone() *word {
	return &word{runes: append([]rune(nil), w.runes...), released: w.released}
}

func (w *word) Release() {
	*w.released++
	w.runes = nil
}

func (w *word) Compare(other *word) int {
	return strings.Compare(string(w.runes), string(other.runes))
}

type blob struct {
	bytes []byte
}

func (b *blob) Clone() *blob { return &blob{bytes: append([]byte(nil), b.bytes...)} }

func (b *blob) Release() { b.bytes = nil }

func TestNewOf(t *testing.T) {
	Convey("Given an element type implementing Comparable", t, func() {
		released := 0
		s := NewOf[*word]()
		original := &word{runes: []rune("hello"), released: &released}
		s.Push(original)

		Convey("Push goes through Clone", func() {
			original.runes[0] = 'j'
			So(string(s.Peek().MustGet().runes), ShouldEqual, "hello")
		})

		Convey("Contains goes through Compare", func() {
			So(s.Contains(&word{runes: []rune("hello")}), ShouldBeTrue)
			So(s.Contains(&word{runes: []rune("world")}), ShouldBeFalse)
		})

		Convey("Clear goes through Release", func() {
			s.Clear()
			So(released, ShouldEqual, 1)
		})
	})

	Convey("Given an element type without Compare", t, func() {
		s := NewOf[*blob]()
		s.Push(&blob{bytes: []byte("x")})

		Convey("Contains panics", func() {
			So(func() { s.Contains(&blob{}) }, ShouldPanicWith, ErrNoCompare)
		})
	})
}

func TestNewOrdered(t *testing.T) {
	Convey("Given a stack of strings", t, func() {
		s := NewOrdered[string]()
		s.Push("a")
		s.Push("b")

		So(s.Contains("a"), ShouldBeTrue)
		So(s.Contains("c"), ShouldBeFalse)
		So(s.String(), ShouldEqual, "[a b]")
	})
}

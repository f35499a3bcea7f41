package element

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestItem(t *testing.T) {
	Convey("Given an item on a ledger", t, func() {
		ledger := NewLedger()
		item := New(ledger, "abc")

		Convey("It is counted as allocated", func() {
			So(ledger.Allocated, ShouldEqual, 1)
			So(ledger.Live(), ShouldEqual, 1)
		})

		Convey("A copy does not share the buffer", func() {
			dup := item.Copy()
			item.Set("xyz")
			So(dup.Text(), ShouldEqual, "abc")
			So(ledger.Allocated, ShouldEqual, 2)
		})

		Convey("Release wipes the item and balances the ledger", func() {
			item.Release()
			So(item.Released(), ShouldBeTrue)
			So(item.Text(), ShouldBeEmpty)
			So(ledger.Balanced(), ShouldBeTrue)
		})

		Convey("A second release is a violation", func() {
			item.Release()
			item.Release()
			So(ledger.Released, ShouldEqual, 1)
			So(ledger.Violations, ShouldEqual, 1)
			So(ledger.Balanced(), ShouldBeFalse)
		})
	})

	Convey("Given items without a ledger", t, func() {
		item := New(nil, "1")
		So(func() { item.Copy().Release() }, ShouldNotPanic)
		So((*Ledger)(nil).Live(), ShouldEqual, 0)
	})
}

func TestCompare(t *testing.T) {
	Convey("Given numeric looking items", t, func() {
		ten, nine := New(nil, "10"), New(nil, "9")

		Convey("Lexical compare orders by bytes", func() {
			So(Compare(ten, nine), ShouldBeLessThan, 0)
		})

		Convey("Numeric compare orders by value", func() {
			So(CompareNumeric(ten, nine), ShouldBeGreaterThan, 0)
			So(CompareNumeric(New(nil, "1.0"), New(nil, "1")), ShouldEqual, 0)
		})

		Convey("Numeric compare falls back to lexical", func() {
			So(CompareNumeric(New(nil, "a"), nine), ShouldBeGreaterThan, 0)
		})
	})
}

func TestNewStack(t *testing.T) {
	Convey("Given a stack of items", t, func() {
		ledger := NewLedger()
		s := NewStack(4, true)

		for _, text := range []string{"1", "2", "3"} {
			item := New(ledger, text)
			s.Push(item)
			item.Release()
		}

		Convey("The stack owns its copies", func() {
			So(ledger.Live(), ShouldEqual, 3)
			So(s.Contains(New(nil, "2.0")), ShouldBeTrue)
		})

		Convey("Popped items are the caller's to release", func() {
			popped := s.Pop().MustGet()
			So(popped.Text(), ShouldEqual, "3")
			popped.Release()
			s.Free()
			So(ledger.Balanced(), ShouldBeTrue)
		})
	})
}

package stack

import (
	"fmt"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

// box is a heap-allocated int so that copies and aliases are distinguishable.
type box struct {
	v        int
	released bool
}

type tracker struct {
	copies   int
	releases int
}

func (tr *tracker) copy(b *box) *box {
	tr.copies++
	return &box{v: b.v}
}

func (tr *tracker) release(b *box) {
	tr.releases++
	b.released = true
}

func compareBoxes(a, b *box) int {
	return a.v - b.v
}

func (b *box) String() string {
	return fmt.Sprint(b.v)
}

func newBoxStack(tr *tracker) *Stack[*box] {
	return New[*box](tr.copy, tr.release, compareBoxes)
}

func pushInts(s *Stack[*box], values ...int) {
	for _, v := range values {
		s.Push(&box{v: v})
	}
}

func TestNew(t *testing.T) {
	Convey("Given the constructors", t, func() {
		Convey("New allocates the default capacity", func() {
			s := New[int](Identity[int], Discard[int], nil)
			So(s.Cap(), ShouldEqual, DefaultCapacity)
			So(s.Len(), ShouldEqual, 0)
			So(s.IsEmpty(), ShouldBeTrue)
		})

		Convey("NewSized honours the requested capacity", func() {
			So(NewSized[int](3, Identity[int], Discard[int], nil).Cap(), ShouldEqual, 3)
			So(NewSized[int](0, Identity[int], Discard[int], nil).Cap(), ShouldEqual, DefaultCapacity)
		})

		Convey("A missing copy or release strategy panics", func() {
			So(func() { New[int](nil, Discard[int], nil) }, ShouldPanicWith, ErrMissingStrategy)
			So(func() { New[int](Identity[int], nil, nil) }, ShouldPanicWith, ErrMissingStrategy)
		})
	})
}

func TestPushPop(t *testing.T) {
	Convey("Given a stack of boxes", t, func() {
		tr := &tracker{}
		s := newBoxStack(tr)

		Convey("Pops come back in reverse push order", func() {
			pushInts(s, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
			for want := 10; want >= 1; want-- {
				So(s.Pop().MustGet().v, ShouldEqual, want)
			}
			So(s.Pop().IsAbsent(), ShouldBeTrue)
		})

		Convey("Push stores a copy, not the caller's value", func() {
			original := &box{v: 7}
			s.Push(original)
			original.v = 100

			got := s.Pop().MustGet()
			So(got, ShouldNotPointTo, original)
			So(got.v, ShouldEqual, 7)
			So(compareBoxes(got, &box{v: 7}), ShouldEqual, 0)
			So(tr.copies, ShouldEqual, 1)
		})

		Convey("Pop transfers ownership without releasing", func() {
			pushInts(s, 1)
			got := s.Pop().MustGet()
			So(got.released, ShouldBeFalse)
			So(tr.releases, ShouldEqual, 0)
		})

		Convey("Pop clears the vacated slot", func() {
			pushInts(s, 1, 2)
			s.Pop()
			So(s.data[1], ShouldBeNil)
		})

		Convey("Size follows pushes and pops", func() {
			pushInts(s, 1, 2, 3, 4, 5)
			s.Pop()
			s.Pop()
			So(s.Len(), ShouldEqual, 3)
			So(s.IsEmpty(), ShouldBeFalse)
			s.Pop()
			s.Pop()
			s.Pop()
			So(s.Len(), ShouldEqual, 0)
			So(s.IsEmpty(), ShouldBeTrue)
		})
	})
}

func TestPeek(t *testing.T) {
	Convey("Given a stack", t, func() {
		tr := &tracker{}
		s := newBoxStack(tr)

		Convey("Peek on an empty stack is None", func() {
			So(s.Peek().IsAbsent(), ShouldBeTrue)
		})

		Convey("Peek lends the top without removing it", func() {
			pushInts(s, 1, 2)
			top := s.Peek().MustGet()
			So(top.v, ShouldEqual, 2)
			So(s.Len(), ShouldEqual, 2)
			So(s.Pop().MustGet(), ShouldPointTo, top)
		})
	})
}

func TestCapacity(t *testing.T) {
	Convey("Given a stack with the default capacity", t, func() {
		s := NewOrdered[int]()

		Convey("Capacity doubles exactly when a push finds the stack full", func() {
			for i := 0; i < DefaultCapacity; i++ {
				s.Push(i)
			}
			So(s.Cap(), ShouldEqual, DefaultCapacity)

			s.Push(DefaultCapacity)
			So(s.Cap(), ShouldEqual, DefaultCapacity*2)

			for s.Len() < s.Cap() {
				s.Push(0)
			}
			So(s.Cap(), ShouldEqual, DefaultCapacity*2)
			s.Push(0)
			So(s.Cap(), ShouldEqual, DefaultCapacity*4)
		})

		Convey("Capacity never shrinks on pop or clear", func() {
			for i := 0; i < 20; i++ {
				s.Push(i)
			}
			grown := s.Cap()
			for i := 0; i < 10; i++ {
				s.Pop()
			}
			So(s.Cap(), ShouldEqual, grown)
			s.Clear()
			So(s.Cap(), ShouldEqual, grown)
			So(s.Len(), ShouldEqual, 0)
		})

		Convey("Growth preserves the elements", func() {
			for i := 0; i < 100; i++ {
				s.Push(i)
			}
			So(s.Len(), ShouldEqual, 100)
			So(s.ToSlice()[99], ShouldEqual, 99)
			So(s.ToSlice()[0], ShouldEqual, 0)
		})
	})
}

func TestClearAndFree(t *testing.T) {
	Convey("Given a stack of boxes", t, func() {
		tr := &tracker{}
		s := newBoxStack(tr)
		pushInts(s, 1, 2, 3)
		stored := append([]*box(nil), s.data[:s.size]...)

		Convey("Clear releases every element once", func() {
			s.Clear()
			So(tr.releases, ShouldEqual, 3)
			So(s.IsEmpty(), ShouldBeTrue)
			for _, b := range stored {
				So(b.released, ShouldBeTrue)
			}
		})

		Convey("Clear releases from the top down", func() {
			var order []int
			s := New[*box](tr.copy, func(b *box) { order = append(order, b.v) }, nil)
			pushInts(s, 1, 2, 3)
			s.Clear()
			So(order, ShouldResemble, []int{3, 2, 1})
		})

		Convey("Free releases the elements and the storage", func() {
			s.Free()
			So(tr.releases, ShouldEqual, 3)
			So(s.Cap(), ShouldEqual, 0)
		})

		Convey("Popped elements are not released again by Clear", func() {
			popped := s.Pop().MustGet()
			s.Clear()
			So(tr.releases, ShouldEqual, 2)
			So(popped.released, ShouldBeFalse)
		})
	})
}

func TestContains(t *testing.T) {
	Convey("Given a stack with a compare strategy", t, func() {
		tr := &tracker{}
		s := newBoxStack(tr)

		Convey("An empty stack contains nothing", func() {
			So(s.Contains(&box{v: 1}), ShouldBeFalse)
		})

		Convey("Only equal elements are found", func() {
			pushInts(s, 1, 2, 3)
			So(s.Contains(&box{v: 2}), ShouldBeTrue)
			So(s.Contains(&box{v: 4}), ShouldBeFalse)
		})

		Convey("The scan stops at the first match", func() {
			calls := 0
			counting := New[*box](tr.copy, tr.release, func(a, b *box) int {
				calls++
				return compareBoxes(a, b)
			})
			pushInts(counting, 5, 6, 7)
			So(counting.Contains(&box{v: 5}), ShouldBeTrue)
			So(calls, ShouldEqual, 1)
		})
	})

	Convey("Given a stack without a compare strategy", t, func() {
		s := New[int](Identity[int], Discard[int], nil)
		s.Push(1)

		Convey("Contains panics", func() {
			So(func() { s.Contains(1) }, ShouldPanicWith, ErrNoCompare)
		})
	})
}

func TestClone(t *testing.T) {
	Convey("Given a stack of boxes", t, func() {
		tr := &tracker{}
		s := newBoxStack(tr)
		pushInts(s, 1, 2, 3)
		clone := s.Clone()

		Convey("The clone has equal contents in the same order", func() {
			So(clone.Len(), ShouldEqual, s.Len())
			for i := 0; i < s.Len(); i++ {
				So(clone.data[i].v, ShouldEqual, s.data[i].v)
				So(clone.data[i], ShouldNotPointTo, s.data[i])
			}
		})

		Convey("Popping the clone leaves the source alone", func() {
			clone.Pop()
			clone.Pop()
			So(s.Len(), ShouldEqual, 3)
			So(s.Peek().MustGet().v, ShouldEqual, 3)
		})

		Convey("Popping the source leaves the clone alone", func() {
			s.Pop()
			So(clone.Len(), ShouldEqual, 3)
			So(clone.Peek().MustGet().v, ShouldEqual, 3)
		})

		Convey("The clone keeps the strategies", func() {
			So(clone.Contains(&box{v: 2}), ShouldBeTrue)
			clone.Clear()
			So(tr.releases, ShouldEqual, 3)
		})
	})
}

func TestReverse(t *testing.T) {
	Convey("Given a stack of boxes", t, func() {
		tr := &tracker{}
		s := newBoxStack(tr)

		Convey("Reversing an empty stack does nothing", func() {
			s.Reverse()
			So(s.IsEmpty(), ShouldBeTrue)
		})

		Convey("Reverse flips the order without copying or releasing", func() {
			pushInts(s, 1, 2, 3, 4)
			copies := tr.copies
			s.Reverse()
			So(s.String(), ShouldEqual, "[4 3 2 1]")
			So(tr.copies, ShouldEqual, copies)
			So(tr.releases, ShouldEqual, 0)
		})

		Convey("Reverse is an involution", func() {
			pushInts(s, 1, 2, 3, 4, 5)
			s.Reverse()
			s.Reverse()
			So(s.String(), ShouldEqual, "[1 2 3 4 5]")
		})
	})
}

func TestToSlice(t *testing.T) {
	Convey("Given a stack of boxes", t, func() {
		tr := &tracker{}
		s := newBoxStack(tr)

		Convey("An empty stack yields nil", func() {
			So(s.ToSlice(), ShouldBeNil)
			So(len(s.ToSlice()), ShouldEqual, 0)
		})

		Convey("Elements come out bottom to top as copies", func() {
			pushInts(s, 1, 2, 3)
			out := s.ToSlice()
			So(out, ShouldHaveLength, 3)
			So([]int{out[0].v, out[1].v, out[2].v}, ShouldResemble, []int{1, 2, 3})
			So(out[2], ShouldNotPointTo, s.Peek().MustGet())
			So(s.Len(), ShouldEqual, 3)
		})
	})
}

func TestNilStack(t *testing.T) {
	Convey("Given a nil stack", t, func() {
		var s *Stack[int]

		Convey("Queries report an empty stack", func() {
			So(s.IsEmpty(), ShouldBeTrue)
			So(s.Len(), ShouldEqual, 0)
			So(s.Cap(), ShouldEqual, 0)
			So(s.Pop().IsAbsent(), ShouldBeTrue)
			So(s.Peek().IsAbsent(), ShouldBeTrue)
			So(s.Contains(1), ShouldBeFalse)
			So(s.ToSlice(), ShouldBeNil)
			So(s.Clone(), ShouldBeNil)
			So(s.String(), ShouldEqual, "[]")
		})

		Convey("Mutators do nothing", func() {
			So(func() {
				s.Push(1)
				s.Clear()
				s.Reverse()
				s.Free()
			}, ShouldNotPanic)
		})
	})
}

func TestScenario(t *testing.T) {
	Convey("Given integer strategies", t, func() {
		s := NewOrdered[int]()
		s.Push(1)
		s.Push(2)
		s.Push(3)

		So(s.Peek().MustGet(), ShouldEqual, 3)
		So(s.Pop().MustGet(), ShouldEqual, 3)
		So(s.Pop().MustGet(), ShouldEqual, 2)
		So(s.Len(), ShouldEqual, 1)

		s.Push(5)
		So(s.ToSlice(), ShouldResemble, []int{1, 5})
	})
}

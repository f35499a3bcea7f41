package tui

import (
	"github.com/lifo-cli/lifo/script"
	"github.com/lifo-cli/lifo/stack"
	"github.com/samber/mo"
)

// revision is a saved state of one named stack. A nil stack records that the name did not exist.
type revision struct {
	name  string
	op    string
	items *script.Stack
}

// undoHistory is itself a stack: pushing a revision clones the stack it refers to,
// and releasing a revision frees its clone.
type undoHistory struct {
	revisions *stack.Stack[revision]
}

func newUndoHistory() *undoHistory {
	return &undoHistory{
		revisions: stack.New[revision](
			func(r revision) revision {
				return revision{name: r.name, op: r.op, items: r.items.Clone()}
			},
			func(r revision) {
				r.items.Free()
			},
			nil,
		),
	}
}

// record saves the current state of the stack an instruction is about to change.
func (u *undoHistory) record(session *script.Session, ins script.Instruction) {
	name := ins.Target(session.Current())
	live, _ := session.Stack(name)
	u.revisions.Push(revision{name: name, op: ins.Op.String(), items: live})
}

// restore reinstates the most recent revision. The session takes ownership of its stack.
func (u *undoHistory) restore(session *script.Session) mo.Option[revision] {
	r, ok := u.revisions.Pop().Get()
	if !ok {
		return mo.None[revision]()
	}

	session.Replace(r.name, r.items)
	return mo.Some(r)
}

// drop discards the most recent revision, used when the instruction it guarded failed.
func (u *undoHistory) drop() {
	if r, ok := u.revisions.Pop().Get(); ok {
		r.items.Free()
	}
}

func (u *undoHistory) len() int {
	return u.revisions.Len()
}

func (u *undoHistory) free() {
	u.revisions.Free()
}

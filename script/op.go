// Package script parses and executes line-oriented operation scripts against named stacks.
package script

import (
	"slices"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
)

// Op is a stack operation.
type Op int

const (
	OpPush Op = iota + 1
	OpPop
	OpPeek
	OpClear
	OpSize
	OpCap
	OpEmpty
	OpContains
	OpClone
	OpReverse
	OpArray
	OpUse
	OpFree
	OpStacks
)

// arity is the accepted argument count range; max < 0 means unbounded.
type arity struct {
	min, max int
}

type opDef struct {
	name  string
	usage string
	arity arity
	// mutates is set for operations that change the contents of some stack.
	mutates bool
}

var ops = map[Op]opDef{
	OpPush:     {"push", "push <value>...", arity{1, -1}, true},
	OpPop:      {"pop", "pop", arity{0, 0}, true},
	OpPeek:     {"peek", "peek", arity{0, 0}, false},
	OpClear:    {"clear", "clear", arity{0, 0}, true},
	OpSize:     {"size", "size", arity{0, 0}, false},
	OpCap:      {"cap", "cap", arity{0, 0}, false},
	OpEmpty:    {"empty", "empty", arity{0, 0}, false},
	OpContains: {"contains", "contains <value>", arity{1, 1}, false},
	OpClone:    {"clone", "clone <name>", arity{1, 1}, true},
	OpReverse:  {"reverse", "reverse", arity{0, 0}, true},
	OpArray:    {"array", "array", arity{0, 0}, false},
	OpUse:      {"use", "use <name>", arity{1, 1}, false},
	OpFree:     {"free", "free [name]", arity{0, 1}, true},
	OpStacks:   {"stacks", "stacks", arity{0, 0}, false},
}

var byName = lo.Associate(lo.Entries(ops), func(e lo.Entry[Op, opDef]) (string, Op) {
	return e.Value.name, e.Key
})

// LookupOp resolves an operation by name.
func LookupOp(name string) (Op, bool) {
	op, ok := byName[name]
	return op, ok
}

// String returns the operation's script keyword.
func (o Op) String() string {
	if def, ok := ops[o]; ok {
		return def.name
	}
	return "unknown"
}

// Usage returns a one-line synopsis of the operation.
func (o Op) Usage() string {
	return ops[o].usage
}

// Mutates reports whether the operation may change the contents of a stack.
func (o Op) Mutates() bool {
	return ops[o].mutates
}

// Ops returns every operation keyword, sorted.
func Ops() []string {
	names := lo.Keys(byName)
	slices.Sort(names)
	return names
}

// Complete returns operation keywords matching a partial input, best match first.
func Complete(prefix string) []string {
	if prefix == "" {
		return Ops()
	}

	ranks := fuzzy.RankFindFold(prefix, Ops())
	slices.SortStableFunc(ranks, func(a, b fuzzy.Rank) int {
		return a.Distance - b.Distance
	})

	return lo.Map(ranks, func(r fuzzy.Rank, _ int) string {
		return r.Target
	})
}

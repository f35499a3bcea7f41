package script

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/lifo-cli/lifo/element"
	"github.com/lifo-cli/lifo/log"
	"github.com/lifo-cli/lifo/stack"
	"github.com/samber/lo"
)

// MainStack is the stack selected when a session starts.
const MainStack = "main"

var (
	ErrUnknownStack = errors.New("unknown stack")
	ErrSameStack    = errors.New("cannot clone a stack onto itself")
)

// Stack is the stack type driven by scripts.
type Stack = stack.Stack[*element.Item]

// Options configures a Session.
type Options struct {
	// Capacity is the initial capacity of every stack the session creates.
	Capacity int
	// Numeric makes contains compare numbers by value.
	Numeric bool
	// Ledger receives every item allocation; a fresh one is created if nil.
	Ledger *element.Ledger
}

// Session owns a set of named stacks and the items flowing through them.
// Items popped or exported by an operation are released by the session once their
// text has been recorded in the Result.
type Session struct {
	stacks  map[string]*Stack
	current string
	ledger  *element.Ledger
	options Options
}

// NewSession returns a session whose current stack is MainStack.
func NewSession(options Options) *Session {
	if options.Ledger == nil {
		options.Ledger = element.NewLedger()
	}

	return &Session{
		stacks:  make(map[string]*Stack),
		current: MainStack,
		ledger:  options.Ledger,
		options: options,
	}
}

func (s *Session) newStack() *Stack {
	return element.NewStack(s.options.Capacity, s.options.Numeric)
}

// Current returns the name of the selected stack.
func (s *Session) Current() string {
	return s.current
}

// Ledger returns the ownership ledger of the session's items.
func (s *Session) Ledger() *element.Ledger {
	return s.ledger
}

// Stack returns the named stack, if it exists. The session keeps ownership.
func (s *Session) Stack(name string) (*Stack, bool) {
	st, ok := s.stacks[name]
	return st, ok
}

// Top returns the selected stack, creating it on first use.
func (s *Session) Top() *Stack {
	st, ok := s.stacks[s.current]
	if !ok {
		st = s.newStack()
		s.stacks[s.current] = st
	}
	return st
}

// Names returns the names of all stacks, sorted.
func (s *Session) Names() []string {
	names := lo.Keys(s.stacks)
	slices.Sort(names)
	return names
}

// Replace installs st under name, freeing whatever stack was there before.
// A nil st removes name altogether.
func (s *Session) Replace(name string, st *Stack) {
	if old, ok := s.stacks[name]; ok && old != st {
		old.Free()
	}

	if st == nil {
		delete(s.stacks, name)
		return
	}
	s.stacks[name] = st
}

// Texts returns the contents of st bottom to top.
func Texts(st *Stack) []string {
	items := st.ToSlice()
	return lo.Map(items, func(item *element.Item, _ int) string {
		defer item.Release()
		return item.Text()
	})
}

// Snapshot returns the contents of every stack, bottom to top.
func (s *Session) Snapshot() map[string][]string {
	return lo.MapValues(s.stacks, func(st *Stack, _ string) []string {
		return Texts(st)
	})
}

// Run executes instructions in order and stops at the first failure.
// The results of the instructions executed so far are returned either way.
func (s *Session) Run(instructions []Instruction) ([]*Result, error) {
	results := make([]*Result, 0, len(instructions))
	for _, ins := range instructions {
		result, err := s.Execute(ins)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}
	return results, nil
}

// Execute runs a single instruction.
func (s *Session) Execute(ins Instruction) (*Result, error) {
	st := s.Top()
	result := &Result{Line: ins.Line, Op: ins.Op.String(), Stack: s.current}

	switch ins.Op {
	case OpPush:
		for _, arg := range ins.Args {
			item := element.New(s.ledger, arg)
			st.Push(item)
			item.Release()
		}
		result.setCount(st.Len())
	case OpPop:
		if item, ok := st.Pop().Get(); ok {
			result.setValue(item.Text())
			item.Release()
		} else {
			result.Missing = true
		}
	case OpPeek:
		if item, ok := st.Peek().Get(); ok {
			result.setValue(item.Text())
		} else {
			result.Missing = true
		}
	case OpClear:
		st.Clear()
		result.setCount(0)
	case OpSize:
		result.setCount(st.Len())
	case OpCap:
		result.setCount(st.Cap())
	case OpEmpty:
		result.setFlag(st.IsEmpty())
	case OpContains:
		probe := element.New(s.ledger, ins.Args[0])
		result.setFlag(st.Contains(probe))
		probe.Release()
	case OpClone:
		name := ins.Args[0]
		if name == s.current {
			return nil, fmt.Errorf("line %d: clone %s: %w", ins.Line, name, ErrSameStack)
		}
		s.Replace(name, st.Clone())
		result.Stack = name
		result.setValues(Texts(s.stacks[name]))
	case OpReverse:
		st.Reverse()
		result.setValues(Texts(st))
	case OpArray:
		result.setValues(Texts(st))
		result.setCount(st.Len())
	case OpUse:
		s.current = ins.Args[0]
		result.Stack = s.current
		result.setCount(s.Top().Len())
	case OpFree:
		name := s.current
		if len(ins.Args) > 0 {
			name = ins.Args[0]
		}
		victim, ok := s.stacks[name]
		if !ok {
			return nil, fmt.Errorf("line %d: free %s: %w", ins.Line, name, ErrUnknownStack)
		}
		victim.Free()
		delete(s.stacks, name)
		if name == s.current {
			s.current = MainStack
		}
		result.Stack = name
	case OpStacks:
		result.setValues(s.Names())
	default:
		return nil, fmt.Errorf("line %d: %w: %s", ins.Line, ErrUnknownOp, ins.Op)
	}

	log.With(log.Fields{
		"line":  ins.Line,
		"op":    ins.Op.String(),
		"stack": result.Stack,
		"size":  st.Len(),
	}).Debug("executed")

	return result, nil
}

// Close frees every stack. The session must not be used afterwards.
func (s *Session) Close() {
	for name, st := range s.stacks {
		st.Free()
		delete(s.stacks, name)
	}

	if !s.ledger.Balanced() {
		log.Warnf("session closed with unbalanced ledger: %s", s.ledger)
	}
}

// Describe renders the selected stack on one line, e.g. "main: [1 2 3]".
func (s *Session) Describe() string {
	var b strings.Builder
	b.WriteString(s.current)
	b.WriteString(": ")
	b.WriteString(s.Top().String())
	return b.String()
}

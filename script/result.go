package script

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Result is the outcome of one executed instruction.
type Result struct {
	Line  int    `json:"line" jsonschema:"description=Script line the instruction was read from"`
	Op    string `json:"op" jsonschema:"description=Operation keyword"`
	Stack string `json:"stack" jsonschema:"description=Stack the operation applied to"`

	Value   *string  `json:"value,omitempty" jsonschema:"description=Element returned by pop or peek"`
	Values  []string `json:"values,omitempty" jsonschema:"description=Elements bottom to top, or stack names"`
	Count   *int     `json:"count,omitempty" jsonschema:"description=Size or capacity"`
	Flag    *bool    `json:"flag,omitempty" jsonschema:"description=Answer of empty or contains"`
	Missing bool     `json:"missing,omitempty" jsonschema:"description=Set when pop or peek found the stack empty"`
}

func (r *Result) setValue(v string)    { r.Value = lo.ToPtr(v) }
func (r *Result) setValues(v []string) { r.Values = v }
func (r *Result) setCount(n int)       { r.Count = lo.ToPtr(n) }
func (r *Result) setFlag(b bool)       { r.Flag = lo.ToPtr(b) }

// String renders the result the way the run command prints it.
func (r *Result) String() string {
	switch {
	case r.Missing:
		return fmt.Sprintf("%s: empty", r.Op)
	case r.Value != nil:
		return *r.Value
	case r.Flag != nil:
		return strconv.FormatBool(*r.Flag)
	case r.Values != nil && lookup(r.Op) == OpStacks:
		return strings.Join(r.Values, "\n")
	case r.Values != nil:
		return "[" + strings.Join(r.Values, " ") + "]"
	case r.Count != nil:
		return strconv.Itoa(*r.Count)
	default:
		return ""
	}
}

// Quiet reports whether the result carries no output worth printing,
// which is the case for plain mutations.
func (r *Result) Quiet() bool {
	op := lookup(r.Op)
	return op == OpPush || op == OpClear || op == OpUse || op == OpFree || op == OpClone
}

func lookup(name string) Op {
	op, _ := LookupOp(name)
	return op
}

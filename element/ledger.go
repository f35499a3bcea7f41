package element

import (
	"fmt"

	"github.com/lifo-cli/lifo/log"
)

// Ledger counts item allocations and releases so that ownership leaks and double
// releases can be reported. A nil *Ledger counts nothing.
type Ledger struct {
	Allocated  int `json:"allocated" jsonschema:"description=Items created, including copies made by stacks."`
	Released   int `json:"released" jsonschema:"description=Items released."`
	Violations int `json:"violations" jsonschema:"description=Releases of an item that was already released."`
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

func (l *Ledger) allocated() {
	if l != nil {
		l.Allocated++
	}
}

func (l *Ledger) releasedOne() {
	if l != nil {
		l.Released++
	}
}

func (l *Ledger) violation(i *Item) {
	if l == nil {
		return
	}

	l.Violations++
	log.Warnf("item %p released twice", i)
}

// Live returns the number of items allocated but not yet released.
func (l *Ledger) Live() int {
	if l == nil {
		return 0
	}

	return l.Allocated - l.Released
}

// Balanced reports whether every allocated item was released exactly once.
func (l *Ledger) Balanced() bool {
	return l.Live() == 0 && (l == nil || l.Violations == 0)
}

func (l *Ledger) String() string {
	if l == nil {
		return "no ledger"
	}

	return fmt.Sprintf("allocated %d, released %d, live %d, violations %d", l.Allocated, l.Released, l.Live(), l.Violations)
}

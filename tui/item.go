package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lifo-cli/lifo/icon"
	"github.com/lifo-cli/lifo/script"
	"github.com/lifo-cli/lifo/style"
	"github.com/lifo-cli/lifo/util"
	"github.com/samber/mo"
)

// stackItem implements list.Item for one named stack of the session.
type stackItem struct {
	name     string
	size     int
	capacity int
	current  bool
	top      mo.Option[string]
}

func newStackItem(name string, st *script.Stack, current bool) *stackItem {
	item := &stackItem{
		name:     name,
		size:     st.Len(),
		capacity: st.Cap(),
		current:  current,
	}

	if top, ok := st.Peek().Get(); ok {
		item.top = mo.Some(top.Text())
	}

	return item
}

func (t *stackItem) Title() string {
	if t.current {
		return t.name + " " + lipgloss.NewStyle().Bold(true).Foreground(style.AccentColor).Render(icon.Get(icon.Top))
	}
	return t.name
}

func (t *stackItem) Description() string {
	parts := []string{
		util.Quantify(t.size, "element", "elements"),
		fmt.Sprintf("capacity %d", t.capacity),
	}

	if top, ok := t.top.Get(); ok {
		parts = append(parts, "top "+util.Truncate(top, 20))
	}

	return strings.Join(parts, " • ")
}

func (t *stackItem) FilterValue() string {
	return t.name
}

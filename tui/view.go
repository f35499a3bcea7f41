package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lifo-cli/lifo/constant"
	"github.com/lifo-cli/lifo/icon"
	"github.com/lifo-cli/lifo/key"
	"github.com/lifo-cli/lifo/script"
	"github.com/lifo-cli/lifo/style"
	"github.com/lifo-cli/lifo/util"
	"github.com/muesli/reflow/wrap"
	"github.com/spf13/viper"
)

var (
	listExtraPaddingStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)
	paddingStyle          = lipgloss.NewStyle().Padding(1, 2)
	stackBoxStyle         = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(style.BorderColor).
				Padding(0, 1)
	opNameStyle           = lipgloss.NewStyle().Width(10).Foreground(style.AccentColor)
)

// reservedLines is the height taken by everything in the edit view except the stack itself.
const reservedLines = maxOutputLines + 12

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case editState:
		output = b.viewEdit()
	case stacksState:
		output = b.viewStacks()
	case helpState:
		output = b.viewHelp()
	default:
		output = "Unknown state"
	}

	return b.notifier.View(output)
}

func (b *statefulBubble) viewEdit() string {
	lines := []string{
		style.Title(constant.Lifo) + " " + style.Faint(b.session.Current()),
		"",
		b.renderStack(),
		"",
	}

	if viper.GetBool(key.TUIShowCapacity) {
		lines = append(lines, b.renderCapacity(), "")
	}

	lines = append(lines, b.renderOutput()...)
	lines = append(lines, "", b.inputC.View())

	if s, ok := b.suggestion.Get(); ok {
		lines = append(lines, style.Faint("tab: "+s))
	}

	return b.renderLines(true, lines)
}

// renderStack draws the current stack top first, eliding the bottom when it does not fit.
func (b *statefulBubble) renderStack() string {
	texts := slices.Clone(b.view.texts)
	if len(texts) == 0 {
		return style.Faint(icon.Get(icon.Empty) + " empty")
	}

	slices.Reverse(texts)

	visible := util.Max(3, b.height-reservedLines)
	hidden := 0
	if len(texts) > visible {
		hidden = len(texts) - visible
		texts = texts[:visible]
	}

	width := util.Max(8, b.width-8)
	marker := icon.Get(icon.Top)
	pad := strings.Repeat(" ", lipgloss.Width(marker))

	rows := make([]string, 0, len(texts)+1)
	for i, text := range texts {
		text = util.Truncate(text, width)
		if i == 0 {
			rows = append(rows, style.Fg(style.AccentColor)(marker)+" "+style.Bold(text))
		} else {
			rows = append(rows, pad+" "+text)
		}
	}

	if hidden > 0 {
		rows = append(rows, style.Faint(fmt.Sprintf("%s … %d more", pad, hidden)))
	}

	return stackBoxStyle.Render(strings.Join(rows, "\n"))
}

func (b *statefulBubble) renderCapacity() string {
	var ratio float64
	if b.view.cap > 0 {
		ratio = float64(b.view.len) / float64(b.view.cap)
	}

	return fmt.Sprintf(
		"%s %s %s",
		b.progressC.ViewAs(ratio),
		fmt.Sprintf("%d / %d", b.view.len, b.view.cap),
		style.Faint(util.Quantify(b.undo.len(), "undo step", "undo steps")),
	)
}

func (b *statefulBubble) renderOutput() []string {
	width := util.Max(b.width, 20)

	lines := make([]string, 0, len(b.output))
	for _, out := range b.output {
		var text string
		switch out.kind {
		case echoLine:
			text = style.Faint(b.inputC.Prompt + out.text)
		case resultLine:
			text = out.text
		case errorLine:
			text = style.Fg(style.ErrorColor)(icon.Get(icon.Fail) + " " + out.text)
		}
		lines = append(lines, wrap.String(text, width))
	}

	return lines
}

func (b *statefulBubble) viewStacks() string {
	return listExtraPaddingStyle.Render(b.stacksC.View())
}

func (b *statefulBubble) viewHelp() string {
	lines := []string{style.Title("Operations"), ""}

	for _, name := range script.Ops() {
		op, _ := script.LookupOp(name)
		lines = append(lines, opNameStyle.Render(name)+" "+style.Faint(op.Usage()))
	}

	lines = append(lines, "", style.Faint("Statements are separated by ; and # starts a comment."))

	return b.renderLines(true, lines)
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	h := len(lines)
	l := strings.Join(lines, "\n")
	if addHelp {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}

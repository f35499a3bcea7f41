package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lifo-cli/lifo/constant"
	"github.com/lifo-cli/lifo/history"
	"github.com/lifo-cli/lifo/icon"
	"github.com/lifo-cli/lifo/internal/ui"
	"github.com/lifo-cli/lifo/key"
	"github.com/lifo-cli/lifo/log"
	"github.com/lifo-cli/lifo/script"
	"github.com/lifo-cli/lifo/stack"
	"github.com/lifo-cli/lifo/style"
	"github.com/lifo-cli/lifo/util"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// maxOutputLines bounds how many past lines the editor keeps on screen.
const maxOutputLines = 8

type lineKind int

const (
	echoLine lineKind = iota
	resultLine
	errorLine
)

type outputLine struct {
	kind lineKind
	text string
}

// stackView is what the edit view shows of the current stack, refreshed after every change.
type stackView struct {
	texts    []string
	len, cap int
}

// statefulBubble holds the editor state: the session being edited, its undo history and the components.
type statefulBubble struct {
	state         state
	statesHistory *stack.Stack[state]

	keymap *statefulKeymap

	// components
	inputC    textinput.Model
	stacksC   list.Model
	progressC progress.Model
	helpC     help.Model

	session *script.Session
	undo    *undoHistory
	line    int
	output  []outputLine
	view    stackView

	width, height int
	suggestion    mo.Option[string]
	notifier      *ui.Model

	options *Options
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

// newState moves to s, remembering the current state for previousState.
func (b *statefulBubble) newState(s state) {
	if b.state == s {
		return
	}

	b.statesHistory.Push(b.state)
	b.setState(s)
}

func (b *statefulBubble) previousState() {
	if s, ok := b.statesHistory.Pop().Get(); ok {
		b.setState(s)
	}
}

func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	xx, yy := listExtraPaddingStyle.GetFrameSize()

	styledWidth := width - x
	styledHeight := height - y

	listWidth := width - xx
	listHeight := height - yy

	b.stacksC.SetSize(listWidth, listHeight)
	b.stacksC.Help.Width = listWidth

	b.progressC.Width = util.Min(styledWidth/2, 40)
	b.inputC.Width = styledWidth

	b.width = styledWidth
	b.height = styledHeight
	b.helpC.Width = listWidth
}

func (b *statefulBubble) print(kind lineKind, text string) {
	b.output = append(b.output, outputLine{kind: kind, text: text})
	if len(b.output) > maxOutputLines {
		b.output = b.output[len(b.output)-maxOutputLines:]
	}
}

// submit parses and executes one line typed by the user.
func (b *statefulBubble) submit(text string) tea.Cmd {
	b.line++
	instructions, err := script.ParseLine(text, b.line)
	if err != nil {
		b.print(errorLine, err.Error())
		return nil
	}

	if len(instructions) == 0 {
		return nil
	}

	if err := history.Remember(text, 1); err != nil {
		log.Warnf("history: %s", err)
	}

	b.print(echoLine, strings.TrimSpace(text))
	_ = b.exec(instructions)
	return nil
}

// exec runs instructions, saving an undo revision before each one that changes a stack.
// It stops at the first failure.
func (b *statefulBubble) exec(instructions []script.Instruction) error {
	defer b.refreshView()

	for _, ins := range instructions {
		mutates := ins.Op.Mutates()
		if mutates {
			b.undo.record(b.session, ins)
		}

		result, err := b.session.Execute(ins)
		if err != nil {
			if mutates {
				b.undo.drop()
			}
			b.print(errorLine, err.Error())
			return err
		}

		if !result.Quiet() {
			b.print(resultLine, result.String())
		}
	}

	return nil
}

// preload runs instructions before the editor is shown.
func (b *statefulBubble) preload(instructions []script.Instruction) error {
	if len(instructions) == 0 {
		return nil
	}

	b.print(echoLine, fmt.Sprintf("preloaded %s", util.Quantify(len(instructions), "instruction", "instructions")))
	return b.exec(instructions)
}

// refreshView copies the current stack's texts for rendering. A stack that does not exist yet shows as empty.
func (b *statefulBubble) refreshView() {
	st, ok := b.session.Stack(b.session.Current())
	if !ok {
		b.view = stackView{}
		return
	}

	b.view = stackView{texts: script.Texts(st), len: st.Len(), cap: st.Cap()}
}

func (b *statefulBubble) undoLast() tea.Cmd {
	r, ok := b.undo.restore(b.session).Get()
	if !ok {
		return notify(icon.Get(icon.Fail) + " nothing to undo")
	}
	b.refreshView()

	return notify(fmt.Sprintf("%s undid %s on %s", icon.Get(icon.Undo), r.op, r.name))
}

func notify(text string) tea.Cmd {
	return func() tea.Msg {
		return text
	}
}

func (b *statefulBubble) refreshSuggestion() {
	b.suggestion = mo.None[string]()

	value := b.inputC.Value()
	if strings.TrimSpace(value) == "" {
		return
	}

	if s, ok := history.Suggest(value).Get(); ok && s != value {
		b.suggestion = mo.Some(s)
		return
	}

	if strings.ContainsAny(value, " ;") {
		return
	}

	if ops := script.Complete(value); len(ops) > 0 && ops[0] != value {
		b.suggestion = mo.Some(ops[0])
	}
}

func (b *statefulBubble) acceptSuggestion() {
	if s, ok := b.suggestion.Get(); ok {
		b.inputC.SetValue(s)
		b.inputC.CursorEnd()
		b.refreshSuggestion()
	}
}

func (b *statefulBubble) loadStacks() tea.Cmd {
	items := lo.Map(b.session.Names(), func(name string, _ int) list.Item {
		st, _ := b.session.Stack(name)
		return newStackItem(name, st, name == b.session.Current())
	})

	return b.stacksC.SetItems(items)
}

func (b *statefulBubble) close() {
	b.undo.free()
	b.session.Close()
	log.Infof("editor closed: %s", b.session.Ledger())
}

func newBubble(options *Options) *statefulBubble {
	keymap := newStatefulKeymap()
	bubble := statefulBubble{
		statesHistory: stack.NewOrdered[state](),
		keymap:        keymap,
		session:       script.NewSession(options.Session),
		undo:          newUndoHistory(),
		notifier:      &ui.Model{},
		options:       options,
	}

	bubble.setState(editState)

	bubble.helpC = help.New()

	bubble.inputC = textinput.New()
	bubble.inputC.Placeholder = fmt.Sprintf("push 1 2 3; pop (v%s)", constant.Version)
	bubble.inputC.Prompt = viper.GetString(key.TUIPrompt)
	if bubble.inputC.Prompt == "" {
		bubble.inputC.Prompt = "> "
	}

	bubble.progressC = progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(style.AccentColor).
		Foreground(style.AccentColor).
		Padding(0, 0, 0, 1)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle

	bubble.stacksC = list.New([]list.Item{}, delegate, 0, 0)
	bubble.stacksC.KeyMap = keymap.forList()
	bubble.stacksC.AdditionalShortHelpKeys = keymap.ShortHelp
	bubble.stacksC.AdditionalFullHelpKeys = func() []bubblesKey.Binding {
		return keymap.FullHelp()[0]
	}
	bubble.stacksC.Title = "Stacks"
	bubble.stacksC.Styles.Title = lipgloss.NewStyle().Foreground(style.Base).Background(style.AccentColor).Padding(0, 1)
	bubble.stacksC.Styles.NoItems = paddingStyle
	bubble.stacksC.SetShowPagination(false)
	bubble.stacksC.SetShowStatusBar(false)
	bubble.stacksC.SetFilteringEnabled(false)

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	bubble.inputC.Focus()

	return &bubble
}

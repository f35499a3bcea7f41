package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lifo-cli/lifo/script"
	"github.com/samber/mo"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// Notifications are plain strings and their expiry messages.
	if uiCmd := b.notifier.Update(msg); uiCmd != nil {
		cmd = uiCmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
		return b, cmd
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, b.keymap.forceQuit):
			return b, tea.Quit
		case key.Matches(msg, b.keymap.back) && b.state != editState:
			b.previousState()
			return b, cmd
		}
	}

	var next tea.Cmd
	switch b.state {
	case editState:
		next = b.updateEdit(msg)
	case stacksState:
		next = b.updateStacks(msg)
	}

	return b, tea.Batch(cmd, next)
}

func (b *statefulBubble) updateEdit(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, b.keymap.submit):
			text := b.inputC.Value()
			b.inputC.SetValue("")
			b.suggestion = mo.None[string]()
			return b.submit(text)
		case key.Matches(msg, b.keymap.acceptSuggestion):
			b.acceptSuggestion()
			return nil
		case key.Matches(msg, b.keymap.undo):
			return b.undoLast()
		case key.Matches(msg, b.keymap.pop):
			return b.submit(script.OpPop.String())
		case key.Matches(msg, b.keymap.showStacks):
			b.newState(stacksState)
			return b.loadStacks()
		case key.Matches(msg, b.keymap.showHelp):
			b.newState(helpState)
			return nil
		}
	}

	var cmd tea.Cmd
	b.inputC, cmd = b.inputC.Update(msg)
	b.refreshSuggestion()
	return cmd
}

func (b *statefulBubble) updateStacks(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, b.keymap.selectStack) {
		if item, ok := b.stacksC.SelectedItem().(*stackItem); ok {
			use := script.Instruction{Op: script.OpUse, Args: []string{item.name}}
			b.print(echoLine, use.String())
			_ = b.exec([]script.Instruction{use})
		}

		b.previousState()
		return nil
	}

	var cmd tea.Cmd
	b.stacksC, cmd = b.stacksC.Update(msg)
	return cmd
}

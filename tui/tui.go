// Package tui provides the interactive stack editor.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lifo-cli/lifo/script"
)

// Options encapsulates the runtime configuration for the terminal user interface.
type Options struct {
	Session script.Options
	// Preload is executed before the editor opens, e.g. a script given on the command line.
	Preload []script.Instruction
}

// Run initializes and executes the editor's Bubble Tea loop.
// Every stack is freed when the editor exits.
func Run(options *Options) error {
	bubble := newBubble(options)
	defer bubble.close()

	if err := bubble.preload(options.Preload); err != nil {
		return err
	}

	_, err := tea.NewProgram(bubble, tea.WithAltScreen()).Run()
	return err
}

// Package ui provides ephemeral notifications for Bubble Tea models.
package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lifo-cli/lifo/style"
)

// Lifetime is how long a notification stays on screen.
const Lifetime = 3 * time.Second

// Model holds the notification currently on screen, if any.
type Model struct {
	notification string
	notifiedAt   time.Time
}

// ClearNotificationMsg resets the notification once it has expired.
type ClearNotificationMsg struct {
	at time.Time
}

// ClearNotification returns a tea.Cmd clearing the notification shown at t after Lifetime.
func ClearNotification(t time.Time) tea.Cmd {
	return tea.Tick(Lifetime, func(time.Time) tea.Msg {
		return ClearNotificationMsg{at: t}
	})
}

// Notification returns the text on screen.
func (m *Model) Notification() string {
	return m.notification
}

// Update shows string messages as notifications and clears them when they expire.
// A newer notification is not cleared by the expiry of an older one.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case string:
		m.notification = msg
		m.notifiedAt = time.Now()
		return ClearNotification(m.notifiedAt)
	case ClearNotificationMsg:
		if msg.at.Equal(m.notifiedAt) {
			m.notification = ""
		}
	}
	return nil
}

// View appends the notification to the last line of mainContent.
func (m *Model) View(mainContent string) string {
	if m.notification == "" {
		return mainContent
	}

	lines := strings.Split(mainContent, "\n")
	lines[len(lines)-1] += "  " + style.Faint(m.notification)
	return strings.Join(lines, "\n")
}

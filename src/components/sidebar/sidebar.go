// Package sidebar renders the chat history pane: a New Chat entry followed
// by the archived sessions, newest first. It never touches the controller
// directly; selections are emitted as messages for the app model.
package sidebar

import (
	"fmt"
	"strings"

	"hexchat/src/services/session"
	"hexchat/src/types"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("45")).Padding(0, 1)
	itemStyle  = lipgloss.NewStyle().Padding(0, 1)
	selStyle   = itemStyle.Bold(true).Foreground(lipgloss.Color("203")).Background(lipgloss.Color("236"))
	metaStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Padding(0, 1)
	paneStyle  = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(lipgloss.Color("238"))
	focusedPaneStyle = paneStyle.BorderForeground(lipgloss.Color("45"))
)

// Model is the sidebar pane state.
type Model struct {
	controller *session.Controller
	selected   int
	focused    bool
	width      int
	height     int
}

// New builds the sidebar around the controller.
func New(controller *session.Controller) *Model {
	return &Model{controller: controller, width: 28}
}

// SetSize resizes the pane.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetFocus toggles keyboard focus.
func (m *Model) SetFocus(focused bool) { m.focused = focused }

// Focused reports whether the pane has keyboard focus.
func (m *Model) Focused() bool { return m.focused }

// ControlInfo describes the pane's key bindings.
func (m *Model) ControlInfo() string {
	return "↑↓ move   Enter open   N new chat   D delete   C clear all   Ctrl+T chat"
}

// itemCount is the New Chat entry plus the archive.
func (m *Model) itemCount() int { return 1 + len(m.controller.Archive()) }

// clamp keeps the selection in range after deletes.
func (m *Model) clamp() {
	if max := m.itemCount() - 1; m.selected > max {
		m.selected = max
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

// selectedSessionID returns the archived session under the cursor, or "" when
// the New Chat entry is highlighted.
func (m *Model) selectedSessionID() string {
	archive := m.controller.Archive()
	idx := m.selected - 1
	if idx < 0 || idx >= len(archive) {
		return ""
	}
	return archive[idx].ID
}

// Update handles key input while the pane is focused.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < m.itemCount()-1 {
			m.selected++
		}
	case "enter":
		if id := m.selectedSessionID(); id != "" {
			return func() tea.Msg { return types.LoadSessionMsg{SessionID: id} }
		}
		return func() tea.Msg { return types.NewChatMsg{} }
	case "n":
		return func() tea.Msg { return types.NewChatMsg{} }
	case "d":
		if id := m.selectedSessionID(); id != "" {
			m.clamp()
			return func() tea.Msg { return types.DeleteSessionMsg{SessionID: id} }
		}
	case "c":
		if len(m.controller.Archive()) > 0 {
			return func() tea.Msg { return types.ClearArchiveMsg{} }
		}
	}
	return nil
}

// View renders the pane.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("💬 Chats"))
	b.WriteString("\n\n")

	inner := m.width - 2
	if inner < 10 {
		inner = 10
	}

	entries := []string{"+ New Chat"}
	for _, s := range m.controller.Archive() {
		entries = append(entries, s.Title)
	}
	for i, label := range entries {
		style := itemStyle
		if m.focused && i == m.selected {
			style = selStyle
		}
		b.WriteString(style.MaxWidth(inner).Render(truncate(label, inner-2)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(metaStyle.Render(fmt.Sprintf("%d archived", len(m.controller.Archive()))))

	style := paneStyle
	if m.focused {
		style = focusedPaneStyle
	}
	return style.Width(m.width).Height(m.height).Render(b.String())
}

func truncate(s string, max int) string {
	if max < 4 {
		max = 4
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}

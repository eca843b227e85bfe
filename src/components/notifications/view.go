// Package notifications renders the in-app notification feed.
package notifications

import (
	"fmt"
	"strings"

	"hexchat/src/models"
	"hexchat/src/services/notify"
	"hexchat/src/types"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("45"))
	titleStyle  = lipgloss.NewStyle().Bold(true)
	unreadStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	bodyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	timeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	selStyle    = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("203")).
			PaddingLeft(1)
	rowStyle  = lipgloss.NewStyle().PaddingLeft(2)
	emptyText = "No notifications yet. Your updates will show up here."
)

func kindIcon(kind models.NotificationKind) string {
	switch kind {
	case models.NotifySuccess:
		return "✅"
	case models.NotifyWarning:
		return "⚠️"
	case models.NotifyError:
		return "❌"
	default:
		return "ℹ️"
	}
}

// ViewState is the notification feed screen.
type ViewState struct {
	feed     *notify.Center
	selected int
	width    int
	height   int
}

// New builds the feed screen.
func New(feed *notify.Center) *ViewState {
	return &ViewState{feed: feed}
}

func (v *ViewState) ViewType() types.ViewType { return types.NotificationsStateType }

func (v *ViewState) ControlInfo() string {
	return "↑↓ move   Enter mark read   A mark all read   X clear   Esc back"
}

// SetSize resizes the screen.
func (v *ViewState) SetSize(width, height int) {
	v.width = width
	v.height = height
}

func (v *ViewState) Update(msg tea.Msg) (types.ViewState, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}
	all := v.feed.All()
	switch key.String() {
	case "esc", "q":
		return nil, nil
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
	case "down", "j":
		if v.selected < len(all)-1 {
			v.selected++
		}
	case "enter":
		if v.selected < len(all) {
			v.feed.MarkRead(all[v.selected].ID)
		}
	case "a":
		v.feed.MarkAllRead()
	case "x":
		v.feed.Clear()
		v.selected = 0
	}
	return v, nil
}

func (v *ViewState) View() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("🔔 Notifications (%d unread)", v.feed.UnreadCount())))
	b.WriteString("\n\n")

	all := v.feed.All()
	if len(all) == 0 {
		b.WriteString(timeStyle.Render(emptyText))
		return b.String()
	}

	for i, n := range all {
		b.WriteString(v.renderRow(n, i == v.selected))
		b.WriteString("\n")
	}
	return b.String()
}

func (v *ViewState) renderRow(n models.Notification, selected bool) string {
	title := titleStyle.Render(n.Title)
	if !n.Read {
		title = unreadStyle.Render("● ") + title
	}
	width := v.width - 6
	if width < 20 {
		width = 60
	}
	row := fmt.Sprintf("%s %s\n%s\n%s",
		kindIcon(n.Kind), title,
		bodyStyle.Width(width).Render(n.Message),
		timeStyle.Render(n.CreatedAt.Format("Jan 2 15:04")),
	)
	if selected {
		return selStyle.Render(row)
	}
	return rowStyle.Render(row)
}

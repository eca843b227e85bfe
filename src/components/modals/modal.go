// Package modals provides the shared base for modal dialogs rendered over
// the chat screen.
package modals

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// CloseSelfFunc lets a modal remove itself from the view stack.
type CloseSelfFunc func()

// ModalOption is one selectable button in a modal.
type ModalOption struct {
	Label    string
	OnSelect func()
}

// BaseModal carries the state every dialog shares: a message, its options,
// and which option is highlighted.
type BaseModal struct {
	Title     string
	Message   string
	Options   []ModalOption
	Selected  int
	CloseSelf CloseSelfFunc
}

var (
	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("45")).
			Padding(1, 2)
	modalTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("45"))
	optionStyle     = lipgloss.NewStyle().Padding(0, 2)
	selectedStyle   = optionStyle.Bold(true).
			Foreground(lipgloss.Color("203")).
			Background(lipgloss.Color("236"))
)

// SelectPrev moves the highlight left, wrapping.
func (m *BaseModal) SelectPrev() {
	if m.Selected > 0 {
		m.Selected--
	} else {
		m.Selected = len(m.Options) - 1
	}
}

// SelectNext moves the highlight right, wrapping.
func (m *BaseModal) SelectNext() {
	if m.Selected < len(m.Options)-1 {
		m.Selected++
	} else {
		m.Selected = 0
	}
}

// Choose runs the highlighted option and closes the modal.
func (m *BaseModal) Choose() {
	if m.Selected >= 0 && m.Selected < len(m.Options) {
		m.Options[m.Selected].OnSelect()
	}
	if m.CloseSelf != nil {
		m.CloseSelf()
	}
}

// Close dismisses the modal without running an option.
func (m *BaseModal) Close() {
	if m.CloseSelf != nil {
		m.CloseSelf()
	}
}

// ViewRegion renders the modal box at the given width.
func (m *BaseModal) ViewRegion(width int) string {
	var b strings.Builder
	if m.Title != "" {
		b.WriteString(modalTitleStyle.Render(m.Title))
		b.WriteString("\n\n")
	}
	b.WriteString(lipgloss.NewStyle().Width(width - 6).Render(m.Message))
	b.WriteString("\n\n")

	buttons := make([]string, len(m.Options))
	for i, opt := range m.Options {
		style := optionStyle
		if i == m.Selected {
			style = selectedStyle
		}
		buttons[i] = style.Render(opt.Label)
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, buttons...))

	return modalStyle.Width(width).Render(b.String())
}

// confirmation.go - ConfirmationModal for yes/no style dialogs in the Bubble Tea UI.
// Update logic supports left/right navigation, enter to select, esc to close/cancel.

package dialogs

import (
	"hexchat/src/components/modals"
	"hexchat/src/types"

	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmationModal is a reusable modal for confirmation dialogs (1-3 options).
type ConfirmationModal struct {
	modals.BaseModal
	RegionWidth int
}

// NewConfirmationModal creates a ConfirmationModal with the given message,
// options, and closeSelf callback.
func NewConfirmationModal(title, message string, options []modals.ModalOption, closeSelf modals.CloseSelfFunc) *ConfirmationModal {
	if len(options) < 1 || len(options) > 3 {
		panic("ConfirmationModal must have 1-3 options")
	}
	return &ConfirmationModal{
		BaseModal: modals.BaseModal{
			Title:     title,
			Message:   message,
			Options:   options,
			CloseSelf: closeSelf,
			Selected:  0,
		},
		RegionWidth: 60,
	}
}

func (m *ConfirmationModal) ViewType() types.ViewType { return types.ModalStateType }

func (m *ConfirmationModal) ControlInfo() string {
	return "←→ choose   Enter select   Esc cancel"
}

func (m *ConfirmationModal) Update(msg tea.Msg) (types.ViewState, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "left":
			m.SelectPrev()
		case "right", "tab":
			m.SelectNext()
		case "enter":
			m.Choose()
		case "esc":
			m.Close()
		}
	}
	return m, nil
}

func (m *ConfirmationModal) View() string {
	return m.ViewRegion(m.RegionWidth)
}

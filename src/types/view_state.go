// types/view_state.go - ViewState contract for the navigation stack.
// Every screen and modal in the app implements this interface so the root
// model can drive whatever is on top of the stack.

package types

import (
	tea "github.com/charmbracelet/bubbletea"
)

// ViewType is an enum for the different view state types.
type ViewType int

const (
	ChatStateType ViewType = iota
	ModalStateType
	NotificationsStateType
	BlueprintStateType
	ContactStateType
)

// ViewState is one screen or modal. Update returns the state to keep on the
// stack (usually the receiver) and an optional command.
type ViewState interface {
	ViewType() ViewType
	View() string
	Update(msg tea.Msg) (ViewState, tea.Cmd)
	// ControlInfo is the footer help line for the view.
	ControlInfo() string
}

// upgrade.go - The paywall modal shown when the free question quota is spent.

package dialogs

import (
	"hexchat/src/components/modals"
	"hexchat/src/types"

	tea "github.com/charmbracelet/bubbletea"
)

const upgradePitch = "You've used your 5 free questions! Ready to unlock unlimited AI mentoring?\n\n💎 Premium Benefits:\n• Unlimited questions\n• Priority responses\n• Advanced tech guidance\n• Exclusive hustler strategies\n\n💰 $19.99/R350 monthly"

// UpgradeModal offers the premium payment options. The onPayPal/onEFT
// callbacks start the corresponding payment flow; "Maybe Later" just closes.
type UpgradeModal struct {
	modals.BaseModal
	RegionWidth int
}

// NewUpgradeModal builds the paywall modal.
func NewUpgradeModal(onPayPal, onEFT func(), closeSelf modals.CloseSelfFunc) *UpgradeModal {
	return &UpgradeModal{
		BaseModal: modals.BaseModal{
			Title:   "🚀 Upgrade to HEX HUSTLER PREMIUM",
			Message: upgradePitch,
			Options: []modals.ModalOption{
				{Label: "Pay with PayPal", OnSelect: onPayPal},
				{Label: "Pay by EFT", OnSelect: onEFT},
				{Label: "Maybe Later", OnSelect: func() {}},
			},
			CloseSelf: closeSelf,
		},
		RegionWidth: 64,
	}
}

func (m *UpgradeModal) ViewType() types.ViewType { return types.ModalStateType }

func (m *UpgradeModal) ControlInfo() string {
	return "←→ choose   Enter select   Esc dismiss"
}

func (m *UpgradeModal) Update(msg tea.Msg) (types.ViewState, tea.Cmd) {
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

func (m *UpgradeModal) View() string {
	return m.ViewRegion(m.RegionWidth)
}

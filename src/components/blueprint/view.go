// Package blueprint renders the Code Your Success store: plan browsing, the
// purchase form, and the payment instructions shown after checkout.
package blueprint

import (
	"fmt"
	"strings"

	"hexchat/src/services/payment"
	"hexchat/src/types"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type phase int

const (
	phaseBrowse phase = iota
	phaseForm
	phaseDone
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("45"))
	planStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1)
	planSelStyle = planStyle.BorderForeground(lipgloss.Color("203"))
	priceStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
	featureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
)

var fieldLabels = [4]string{"Full name", "Email", "Phone", "Proof of payment (file name)"}

// ViewState is the blueprint store screen.
type ViewState struct {
	service *payment.Service
	phase   phase
	planIdx int
	plan    payment.Plan
	fields  [4]textinput.Model
	field   int
	formErr string
	receipt string
	width   int
	height  int
}

// New builds the store screen.
func New(service *payment.Service) *ViewState {
	v := &ViewState{service: service}
	placeholders := [4]string{"Jane Dev", "jane@example.com", "+27 71 000 0000", "pop.pdf"}
	for i := range v.fields {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.CharLimit = 120
		v.fields[i] = in
	}
	return v
}

func (v *ViewState) ViewType() types.ViewType { return types.BlueprintStateType }

func (v *ViewState) ControlInfo() string {
	switch v.phase {
	case phaseForm:
		return "Tab next field   Enter submit   Esc back"
	case phaseDone:
		return "Esc back"
	default:
		return "↑↓ choose plan   Enter buy   Esc back"
	}
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
	switch v.phase {
	case phaseBrowse:
		return v.updateBrowse(key)
	case phaseForm:
		return v.updateForm(key)
	default:
		if key.String() == "esc" || key.String() == "q" {
			return nil, nil
		}
		return v, nil
	}
}

func (v *ViewState) updateBrowse(key tea.KeyMsg) (types.ViewState, tea.Cmd) {
	switch key.String() {
	case "esc", "q":
		return nil, nil
	case "up", "k":
		if v.planIdx > 0 {
			v.planIdx--
		}
	case "down", "j":
		if v.planIdx < len(payment.Plans)-1 {
			v.planIdx++
		}
	case "enter":
		v.plan = payment.Plans[v.planIdx]
		v.phase = phaseForm
		v.field = 0
		v.formErr = ""
		v.fields[0].Focus()
	}
	return v, nil
}

func (v *ViewState) updateForm(key tea.KeyMsg) (types.ViewState, tea.Cmd) {
	switch key.String() {
	case "esc":
		v.fields[v.field].Blur()
		v.phase = phaseBrowse
		return v, nil
	case "tab", "down":
		v.focusField((v.field + 1) % len(v.fields))
		return v, nil
	case "shift+tab", "up":
		v.focusField((v.field + len(v.fields) - 1) % len(v.fields))
		return v, nil
	case "enter":
		order := payment.Order{
			Name:     strings.TrimSpace(v.fields[0].Value()),
			Email:    strings.TrimSpace(v.fields[1].Value()),
			Phone:    strings.TrimSpace(v.fields[2].Value()),
			Document: strings.TrimSpace(v.fields[3].Value()),
		}
		receipt, err := v.service.SubmitOrder(v.plan, order)
		if err != nil {
			v.formErr = err.Error()
			return v, nil
		}
		v.receipt = receipt
		v.phase = phaseDone
		v.fields[v.field].Blur()
		return v, nil
	}
	var cmd tea.Cmd
	v.fields[v.field], cmd = v.fields[v.field].Update(key)
	return v, cmd
}

func (v *ViewState) focusField(idx int) {
	v.fields[v.field].Blur()
	v.field = idx
	v.fields[v.field].Focus()
}

func (v *ViewState) View() string {
	switch v.phase {
	case phaseForm:
		return v.viewForm()
	case phaseDone:
		return v.viewDone()
	default:
		return v.viewBrowse()
	}
}

func (v *ViewState) viewBrowse() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("📘 Code Your Success Blueprints"))
	b.WriteString("\n\n")
	width := v.width - 6
	if width < 30 {
		width = 60
	}
	for i, plan := range payment.Plans {
		var card strings.Builder
		card.WriteString(lipgloss.NewStyle().Bold(true).Width(width - 4).Render(plan.Title))
		card.WriteString("\n")
		card.WriteString(priceStyle.Render(plan.Price))
		card.WriteString("\n")
		for _, f := range plan.Features {
			card.WriteString(featureStyle.Render("  • " + f))
			card.WriteString("\n")
		}
		style := planStyle
		if i == v.planIdx {
			style = planSelStyle
		}
		b.WriteString(style.Width(width).Render(card.String()))
		b.WriteString("\n")
	}
	return b.String()
}

func (v *ViewState) viewForm() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("🛒 " + v.plan.Title))
	b.WriteString("\n")
	b.WriteString(priceStyle.Render(v.plan.Price))
	b.WriteString("\n\n")
	for i := range v.fields {
		b.WriteString(labelStyle.Render(fieldLabels[i]))
		b.WriteString("\n")
		b.WriteString(v.fields[i].View())
		b.WriteString("\n")
	}
	if v.formErr != "" {
		b.WriteString("\n")
		b.WriteString(errStyle.Render(v.formErr))
	}
	return b.String()
}

func (v *ViewState) viewDone() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("✅ Order received"))
	b.WriteString("\n\n")
	b.WriteString(doneStyle.Render(fmt.Sprintf(
		"Your order has been sent to %s.\n\nPay by EFT:\n  Bank: %s\n  Account: %s (%s)\n  Reference: %s\n  SWIFT: %s\n\nOr pay online:\n  PayPal: %s\n  Card:   %s",
		payment.OrderEmail,
		payment.Banking.Bank, payment.Banking.AccountNumber, payment.Banking.AccountType,
		payment.Banking.Reference, payment.Banking.SwiftCode,
		payment.PayPalURL, payment.StripeURL,
	)))
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("Fulfilment message:"))
	b.WriteString("\n")
	width := v.width - 6
	if width < 30 {
		width = 70
	}
	b.WriteString(featureStyle.Width(width).Render(v.receipt))
	return b.String()
}

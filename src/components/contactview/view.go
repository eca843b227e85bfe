// Package contactview renders the services screen: contact channels, the
// service catalog, and the enquiry form.
package contactview

import (
	"fmt"
	"strings"

	"hexchat/src/services/contact"
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
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("45"))
	categoryStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")).MarginTop(1)
	itemStyle     = lipgloss.NewStyle().PaddingLeft(2)
	selItemStyle  = itemStyle.Bold(true).Foreground(lipgloss.Color("45"))
	descStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("250")).PaddingLeft(4)
	priceStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).PaddingLeft(4)
	channelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

var fieldLabels = [3]string{"Your name", "Email", "Project details"}

// ViewState is the services and contact screen.
type ViewState struct {
	service  *contact.Service
	phase    phase
	selected int
	offering contact.Offering
	fields   [3]textinput.Model
	field    int
	formErr  string
	mailto   string
	width    int
	height   int
}

// New builds the services screen.
func New(service *contact.Service) *ViewState {
	v := &ViewState{service: service}
	placeholders := [3]string{"Jane Dev", "jane@example.com", "Tell us what you need"}
	for i := range v.fields {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.CharLimit = 200
		v.fields[i] = in
	}
	return v
}

func (v *ViewState) ViewType() types.ViewType { return types.ContactStateType }

func (v *ViewState) ControlInfo() string {
	switch v.phase {
	case phaseForm:
		return "Tab next field   Enter send   Esc back"
	case phaseDone:
		return "Esc back"
	default:
		return "↑↓ choose service   Enter enquire   Esc back"
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
		if v.selected > 0 {
			v.selected--
		}
	case "down", "j":
		if v.selected < len(contact.Catalog)-1 {
			v.selected++
		}
	case "enter":
		v.offering = contact.Catalog[v.selected]
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
		req := contact.ServiceRequest{
			Name:    strings.TrimSpace(v.fields[0].Value()),
			Email:   strings.TrimSpace(v.fields[1].Value()),
			Service: v.offering.Title,
			Details: strings.TrimSpace(v.fields[2].Value()),
		}
		mailto, err := v.service.SubmitRequest(req)
		if err != nil {
			v.formErr = err.Error()
			return v, nil
		}
		v.mailto = mailto
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
	b.WriteString(headerStyle.Render("🛠  Services"))
	b.WriteString("\n\n")
	for _, ch := range contact.Channels {
		b.WriteString(channelStyle.Render(fmt.Sprintf("%s: %s", ch.Type, ch.Value)))
		b.WriteString("\n")
	}

	width := v.width - 8
	if width < 30 {
		width = 70
	}
	lastCategory := ""
	for i, off := range contact.Catalog {
		if off.Category != lastCategory {
			lastCategory = off.Category
			b.WriteString(categoryStyle.Render(off.Category))
			b.WriteString("\n")
		}
		style := itemStyle
		if i == v.selected {
			style = selItemStyle
		}
		b.WriteString(style.Render(off.Title))
		b.WriteString("\n")
		if i == v.selected {
			b.WriteString(descStyle.Width(width).Render(off.Description))
			b.WriteString("\n")
			b.WriteString(priceStyle.Render(off.Price))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (v *ViewState) viewForm() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("✉️  Enquire: " + v.offering.Title))
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
	width := v.width - 6
	if width < 30 {
		width = 70
	}
	return headerStyle.Render("✅ Enquiry ready") + "\n\n" +
		channelStyle.Width(width).Render(
			"Open this link to send your enquiry:\n\n"+v.mailto)
}

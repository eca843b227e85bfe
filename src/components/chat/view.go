// view.go - ChatViewState: the main chat screen. Renders the active session's
// messages, the typing indicator while a reply is pending, the quick-action
// suggestions, and the input line.

package chat

import (
	"fmt"
	"strings"
	"time"

	"hexchat/src/models"
	"hexchat/src/services/session"
	"hexchat/src/types"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ReplyReadyMsg fires when the simulated thinking delay for a pending reply
// has elapsed. The app model routes it back into the controller, so a reply
// lands even while another view is on top.
type ReplyReadyMsg struct {
	Reply session.PendingReply
}

// UpgradeRequestedMsg asks the app model to raise the paywall modal.
type UpgradeRequestedMsg struct{}

// Quick-action suggestions shown under the message log.
var quickActions = []string{
	"Tell me about your skills",
	"Career advice for developers",
	"Mobile app development tips",
	"Freelancing guidance",
	"Motivational boost!",
}

var (
	userLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
	botLabelStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("45"))
	timeStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	typingStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("45")).Italic(true)
	actionStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Padding(0, 1)
	actionSelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Padding(0, 1).Bold(true)
)

// ChatViewState is the center chat pane.
type ChatViewState struct {
	controller *session.Controller
	input      textinput.Model
	vp         viewport.Model
	spin       spinner.Model
	typing     bool
	quickIdx   int
	width      int
	height     int
}

// New builds the chat view around the controller.
func New(controller *session.Controller) *ChatViewState {
	input := textinput.New()
	input.Placeholder = "Ask the AI hustler anything..."
	input.CharLimit = 500
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	c := &ChatViewState{
		controller: controller,
		input:      input,
		vp:         viewport.New(80, 20),
		spin:       spin,
		quickIdx:   -1,
	}
	c.Refresh()
	return c
}

func (c *ChatViewState) ViewType() types.ViewType { return types.ChatStateType }

func (c *ChatViewState) ControlInfo() string {
	return "Enter send   Tab quick actions   PgUp/PgDn scroll   Ctrl+T sidebar   Ctrl+N new chat"
}

// SetSize resizes the pane.
func (c *ChatViewState) SetSize(width, height int) {
	c.width = width
	c.height = height
	inputHeight := 4 // quick actions + input + padding
	c.vp.Width = width
	c.vp.Height = height - inputHeight
	c.Refresh()
}

// Typing reports whether the thinking indicator is up.
func (c *ChatViewState) Typing() bool { return c.typing }

// SetTyping toggles the thinking indicator.
func (c *ChatViewState) SetTyping(typing bool) {
	c.typing = typing
	c.Refresh()
}

// Refresh re-renders the message log from the controller and follows the
// bottom of the conversation.
func (c *ChatViewState) Refresh() {
	c.vp.SetContent(c.renderMessages())
	c.vp.GotoBottom()
}

// Focus puts the cursor in the input line.
func (c *ChatViewState) Focus() { c.input.Focus() }

// Blur takes the cursor out of the input line.
func (c *ChatViewState) Blur() { c.input.Blur() }

// SpinnerTick starts the typing indicator animation.
func (c *ChatViewState) SpinnerTick() tea.Cmd { return c.spin.Tick }

func (c *ChatViewState) Update(msg tea.Msg) (types.ViewState, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return c, c.submit()
		case "tab":
			c.cycleQuickAction()
			return c, nil
		case "pgup", "pgdown":
			var cmd tea.Cmd
			c.vp, cmd = c.vp.Update(msg)
			return c, cmd
		}
	case spinner.TickMsg:
		if !c.typing {
			return c, nil
		}
		var cmd tea.Cmd
		c.spin, cmd = c.spin.Update(msg)
		c.Refresh()
		return c, cmd
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

// submit runs the quota-gated submission and schedules the delayed reply.
func (c *ChatViewState) submit() tea.Cmd {
	res := c.controller.Submit(c.input.Value())
	switch res.Outcome {
	case session.Accepted:
		c.input.Reset()
		c.quickIdx = -1
		c.typing = true
		c.Refresh()
		reply := *res.Reply
		return tea.Batch(
			c.spin.Tick,
			tea.Tick(reply.Delay, func(t time.Time) tea.Msg {
				return ReplyReadyMsg{Reply: reply}
			}),
		)
	case session.UpgradeRequired:
		return func() tea.Msg { return UpgradeRequestedMsg{} }
	default:
		// Empty or busy: keep the input as-is, nothing to do.
		return nil
	}
}

func (c *ChatViewState) cycleQuickAction() {
	c.quickIdx = (c.quickIdx + 1) % len(quickActions)
	c.input.SetValue(quickActions[c.quickIdx])
	c.input.CursorEnd()
}

func (c *ChatViewState) renderMessages() string {
	var b strings.Builder
	for _, msg := range c.controller.Active().Messages {
		b.WriteString(c.renderMessage(msg))
		b.WriteString("\n\n")
	}
	if c.typing {
		b.WriteString(typingStyle.Render(c.spin.View() + "Thinking like a hustler..."))
		b.WriteString("\n")
	}
	return b.String()
}

func (c *ChatViewState) renderMessage(msg models.Message) string {
	label := botLabelStyle.Render("HEX AI")
	if msg.IsUser() {
		label = userLabelStyle.Render("You")
	}
	stamp := timeStyle.Render(msg.CreatedAt.Format("15:04"))
	width := c.vp.Width - 2
	if width < 20 {
		width = 20
	}
	body := lipgloss.NewStyle().Width(width).Render(msg.Text)
	return fmt.Sprintf("%s %s\n%s", label, stamp, body)
}

func (c *ChatViewState) renderQuickActions() string {
	parts := make([]string, len(quickActions))
	for i, action := range quickActions {
		style := actionStyle
		if i == c.quickIdx {
			style = actionSelStyle
		}
		parts[i] = style.Render(action)
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	if c.width > 0 && lipgloss.Width(row) > c.width {
		// Narrow terminal: show only the highlighted (or first) action.
		idx := c.quickIdx
		if idx < 0 {
			idx = 0
		}
		row = actionStyle.Render(quickActions[idx])
	}
	return row
}

func (c *ChatViewState) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		c.vp.View(),
		c.renderQuickActions(),
		c.input.View(),
	)
}

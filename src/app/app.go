// Package app holds the root Bubble Tea model: it owns the services, the
// view stack, and the two-pane chat layout, and routes messages to whatever
// view is on top.
package app

import (
	"fmt"

	"hexchat/src/components/blueprint"
	"hexchat/src/components/chat"
	"hexchat/src/components/contactview"
	"hexchat/src/components/modals"
	"hexchat/src/components/modals/dialogs"
	"hexchat/src/components/notifications"
	"hexchat/src/components/sidebar"
	"hexchat/src/config"
	"hexchat/src/models"
	"hexchat/src/navigation"
	"hexchat/src/services/contact"
	"hexchat/src/services/knowledge"
	"hexchat/src/services/notify"
	"hexchat/src/services/payment"
	"hexchat/src/services/session"
	"hexchat/src/types"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

const sidebarWidth = 30

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("45")).Padding(0, 1)
	badgeStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")).Padding(0, 1)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Padding(0, 1)
)

// sizable is implemented by views that track the terminal size.
type sizable interface {
	SetSize(width, height int)
}

// App is the root model.
type App struct {
	controller *session.Controller
	feed       *notify.Center
	payments   *payment.Service
	contacts   *contact.Service
	log        *zap.Logger

	stack   *navigation.Stack
	chat    *chat.ChatViewState
	sidebar *sidebar.Model

	// queuedView is pushed after the current message is routed. Modal option
	// callbacks use it so a follow-up dialog survives the modal's own close.
	queuedView types.ViewState

	width  int
	height int
}

// New wires the whole application from config.
func New(cfg config.Config, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}

	controller := session.New(session.Config{
		FreeLimit:   cfg.Chat.FreeLimit,
		ReplyDelay:  cfg.Chat.ReplyDelay,
		MaxInputLen: cfg.Chat.MaxInputLen,
	}, knowledge.Match, session.WithLogger(log))

	feed := notify.NewCenter(notify.WithLogger(log))

	a := &App{
		controller: controller,
		feed:       feed,
		payments:   payment.NewService(controller, feed, log),
		contacts:   contact.NewService(feed),
		log:        log,
	}
	a.chat = chat.New(controller)
	a.sidebar = sidebar.New(controller)
	a.stack = navigation.NewStack(a.chat)
	return a
}

func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.resize(msg.Width, msg.Height)
		return a, nil

	case chat.ReplyReadyMsg:
		// Delivered here rather than in the chat view so a reply lands even
		// while a secondary screen is open.
		a.controller.Deliver(msg.Reply)
		a.chat.SetTyping(false)
		return a, nil

	case chat.UpgradeRequestedMsg:
		a.stack.Push(a.newUpgradeModal())
		return a, nil

	case types.NewChatMsg:
		a.controller.StartNewChat()
		a.chat.SetTyping(false)
		return a, nil

	case types.LoadSessionMsg:
		if err := a.controller.LoadSession(msg.SessionID); err != nil {
			a.log.Warn("load session failed", zap.Error(err))
			return a, nil
		}
		a.chat.SetTyping(false)
		a.focusChat()
		return a, nil

	case types.DeleteSessionMsg:
		if err := a.controller.DeleteArchivedSession(msg.SessionID); err != nil {
			a.log.Warn("delete session failed", zap.Error(err))
		}
		return a, nil

	case types.ClearArchiveMsg:
		a.stack.Push(a.newClearArchiveModal())
		return a, nil

	case tea.KeyMsg:
		if handled, keyCmd := a.handleGlobalKey(msg); handled {
			return a, keyCmd
		}
		if a.sidebar.Focused() && a.stack.Len() == 1 {
			return a, a.sidebar.Update(msg)
		}
	}

	// Modals close themselves via CloseSelf inside Update; only swap the top
	// if this view is still there.
	top := a.stack.Top()
	next, cmd := top.Update(msg)
	if a.stack.Top() == top {
		a.stack.ReplaceTop(next)
	}
	if a.queuedView != nil {
		a.pushView(a.queuedView)
		a.queuedView = nil
	}
	return a, cmd
}

// handleGlobalKey processes app-level shortcuts. Screen switching only works
// from the chat screen so a modal cannot be buried.
func (a *App) handleGlobalKey(key tea.KeyMsg) (bool, tea.Cmd) {
	if key.String() == "ctrl+c" {
		return true, tea.Quit
	}
	if a.stack.Len() > 1 {
		return false, nil
	}
	switch key.String() {
	case "ctrl+t":
		a.toggleSidebarFocus()
		return true, nil
	case "ctrl+n":
		a.controller.StartNewChat()
		a.chat.SetTyping(false)
		a.chat.Refresh()
		return true, nil
	case "ctrl+o":
		a.pushView(notifications.New(a.feed))
		return true, nil
	case "ctrl+b":
		a.pushView(blueprint.New(a.payments))
		return true, nil
	case "ctrl+e":
		a.pushView(contactview.New(a.contacts))
		return true, nil
	}
	return false, nil
}

func (a *App) toggleSidebarFocus() {
	if a.sidebar.Focused() {
		a.focusChat()
		return
	}
	a.sidebar.SetFocus(true)
	a.chat.Blur()
}

func (a *App) focusChat() {
	a.sidebar.SetFocus(false)
	a.chat.Focus()
}

func (a *App) pushView(v types.ViewState) {
	if s, ok := v.(sizable); ok {
		s.SetSize(a.width, a.contentHeight())
	}
	a.stack.Push(v)
}

// newUpgradeModal builds the paywall dialog. Choosing a payment method starts
// the pending flow and queues the "I have paid" confirmation.
func (a *App) newUpgradeModal() types.ViewState {
	pay := func(method models.PaymentMethod) func() {
		return func() {
			a.payments.BeginUpgrade(method)
			a.queuedView = a.newPaymentConfirmModal(method)
		}
	}
	return dialogs.NewUpgradeModal(
		pay(models.PaymentPayPal),
		pay(models.PaymentEFT),
		a.stack.Pop,
	)
}

// newPaymentConfirmModal is the "Yes, I paid" step. Payment is taken at the
// user's word; verification happens outside the app.
func (a *App) newPaymentConfirmModal(method models.PaymentMethod) types.ViewState {
	message := "Complete your payment at " + payment.PayPalURL + " then confirm below."
	if method == models.PaymentEFT {
		b := payment.Banking
		message = "Pay by EFT to:\n\nBank: " + b.Bank +
			"\nAccount: " + b.AccountNumber + " (" + b.AccountType + ")" +
			"\nReference: " + b.Reference +
			"\nSWIFT: " + b.SwiftCode +
			"\n\nThen confirm below."
	}
	return dialogs.NewConfirmationModal(
		"💳 "+method.Label()+" Payment",
		message,
		[]modals.ModalOption{
			{Label: "Yes, I paid", OnSelect: func() {
				a.payments.ConfirmPayment(method)
			}},
			{Label: "Not yet", OnSelect: func() {}},
		},
		a.stack.Pop,
	)
}

func (a *App) newClearArchiveModal() types.ViewState {
	return dialogs.NewConfirmationModal(
		"🗑  Clear Chat History",
		"Delete all archived chats? The current conversation is kept.",
		[]modals.ModalOption{
			{Label: "Clear All", OnSelect: a.controller.ClearArchive},
			{Label: "Cancel", OnSelect: func() {}},
		},
		a.stack.Pop,
	)
}

func (a *App) contentHeight() int {
	h := a.height - 3 // header + footer
	if h < 5 {
		h = 5
	}
	return h
}

func (a *App) resize(width, height int) {
	a.width = width
	a.height = height
	content := a.contentHeight()
	a.sidebar.SetSize(sidebarWidth, content)
	a.chat.SetSize(width-sidebarWidth, content)
	if s, ok := a.stack.Top().(sizable); ok {
		s.SetSize(width, content)
	}
}

func (a *App) header() string {
	badge := badgeStyle.Render(
		formatQuota(a.controller.IsPremium(), a.controller.QuestionsLeft()))
	title := headerStyle.Render("⚡ HEX HUSTLER AI")
	gap := a.width - lipgloss.Width(title) - lipgloss.Width(badge)
	if gap < 1 {
		gap = 1
	}
	return title + lipgloss.NewStyle().Width(gap).Render("") + badge
}

func formatQuota(premium bool, left int) string {
	if premium {
		return "✨ PREMIUM"
	}
	if left == 1 {
		return "1 free question left"
	}
	return fmt.Sprintf("%d free questions left", left)
}

func (a *App) View() string {
	top := a.stack.Top()
	footer := footerStyle.Render(top.ControlInfo())

	var body string
	switch top.ViewType() {
	case types.ChatStateType:
		body = lipgloss.JoinHorizontal(lipgloss.Top, a.sidebar.View(), a.chat.View())
	case types.ModalStateType:
		body = lipgloss.Place(a.width, a.contentHeight(),
			lipgloss.Center, lipgloss.Center, top.View())
	default:
		body = top.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, a.header(), body, footer)
}

package app

import (
	"fmt"
	"testing"
	"time"

	"hexchat/src/components/chat"
	"hexchat/src/config"
	"hexchat/src/models"
	"hexchat/src/types"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp() *App {
	return New(config.Config{
		Chat: config.ChatConfig{
			FreeLimit:   5,
			ReplyDelay:  time.Millisecond,
			MaxInputLen: 500,
		},
	}, nil)
}

func pressKey(a *App, key tea.KeyType) {
	a.Update(tea.KeyMsg{Type: key})
}

// exhaustQuota burns through the free questions with delivered replies.
func exhaustQuota(t *testing.T, a *App) {
	t.Helper()
	for i := 0; i < a.controller.FreeLimit(); i++ {
		res := a.controller.Submit(fmt.Sprintf("question %d", i))
		require.NotNil(t, res.Reply)
		require.True(t, a.controller.Deliver(*res.Reply))
	}
}

func TestReplyDeliveredThroughApp(t *testing.T) {
	a := newTestApp()

	res := a.controller.Submit("tell me about you")
	require.NotNil(t, res.Reply)

	a.Update(chat.ReplyReadyMsg{Reply: *res.Reply})

	messages := a.controller.Active().Messages
	last := messages[len(messages)-1]
	assert.Equal(t, models.AuthorBot, last.Author)
	assert.False(t, a.chat.Typing())
}

func TestUpgradeAndPaymentFlow(t *testing.T) {
	a := newTestApp()
	exhaustQuota(t, a)

	a.Update(chat.UpgradeRequestedMsg{})
	require.Equal(t, 2, a.stack.Len())
	assert.Equal(t, types.ModalStateType, a.stack.Top().ViewType())

	// "Pay with PayPal" is the highlighted default. Choosing it closes the
	// paywall and raises the payment confirmation.
	pressKey(a, tea.KeyEnter)
	require.Equal(t, 2, a.stack.Len())
	assert.Equal(t, types.ModalStateType, a.stack.Top().ViewType())
	assert.False(t, a.controller.IsPremium())
	assert.Equal(t, 1, len(a.feed.All()))

	// "Yes, I paid" grants premium and closes the modal.
	pressKey(a, tea.KeyEnter)
	assert.Equal(t, 1, a.stack.Len())
	assert.True(t, a.controller.IsPremium())
	assert.Equal(t, 3, len(a.feed.All()))
}

func TestMaybeLaterLeavesQuotaInForce(t *testing.T) {
	a := newTestApp()
	exhaustQuota(t, a)

	a.Update(chat.UpgradeRequestedMsg{})
	pressKey(a, tea.KeyLeft) // wrap back to "Maybe Later"
	pressKey(a, tea.KeyEnter)

	assert.Equal(t, 1, a.stack.Len())
	assert.False(t, a.controller.IsPremium())
	assert.Empty(t, a.feed.All())
}

func TestNewChatMessageArchivesSession(t *testing.T) {
	a := newTestApp()

	res := a.controller.Submit("freelance rates advice")
	require.True(t, a.controller.Deliver(*res.Reply))

	a.Update(types.NewChatMsg{})

	require.Len(t, a.controller.Archive(), 1)
	assert.Equal(t, "freelance rates advice...", a.controller.Archive()[0].Title)
}

func TestLoadAndDeleteSessionMessages(t *testing.T) {
	a := newTestApp()

	res := a.controller.Submit("career advice please")
	require.True(t, a.controller.Deliver(*res.Reply))
	a.Update(types.NewChatMsg{})
	archived := a.controller.Archive()[0]

	a.Update(types.LoadSessionMsg{SessionID: archived.ID})
	assert.Equal(t, archived.ID, a.controller.Active().ID)

	a.Update(types.DeleteSessionMsg{SessionID: archived.ID})
	assert.Empty(t, a.controller.Archive())
}

func TestClearArchiveAsksForConfirmation(t *testing.T) {
	a := newTestApp()

	res := a.controller.Submit("java tips")
	require.True(t, a.controller.Deliver(*res.Reply))
	a.Update(types.NewChatMsg{})
	require.Len(t, a.controller.Archive(), 1)

	a.Update(types.ClearArchiveMsg{})
	require.Equal(t, 2, a.stack.Len())

	// "Clear All" is the highlighted default.
	pressKey(a, tea.KeyEnter)
	assert.Equal(t, 1, a.stack.Len())
	assert.Empty(t, a.controller.Archive())
}

func TestClearArchiveCancel(t *testing.T) {
	a := newTestApp()

	res := a.controller.Submit("java tips")
	require.True(t, a.controller.Deliver(*res.Reply))
	a.Update(types.NewChatMsg{})

	a.Update(types.ClearArchiveMsg{})
	pressKey(a, tea.KeyRight) // move to Cancel
	pressKey(a, tea.KeyEnter)

	assert.Equal(t, 1, a.stack.Len())
	assert.Len(t, a.controller.Archive(), 1)
}

func TestScreenShortcuts(t *testing.T) {
	a := newTestApp()

	pressKey(a, tea.KeyCtrlO)
	assert.Equal(t, types.NotificationsStateType, a.stack.Top().ViewType())
	pressKey(a, tea.KeyEsc)
	assert.Equal(t, types.ChatStateType, a.stack.Top().ViewType())

	pressKey(a, tea.KeyCtrlB)
	assert.Equal(t, types.BlueprintStateType, a.stack.Top().ViewType())
	pressKey(a, tea.KeyEsc)

	pressKey(a, tea.KeyCtrlE)
	assert.Equal(t, types.ContactStateType, a.stack.Top().ViewType())
	pressKey(a, tea.KeyEsc)
	assert.Equal(t, 1, a.stack.Len())
}

func TestQuotaBadge(t *testing.T) {
	assert.Equal(t, "5 free questions left", formatQuota(false, 5))
	assert.Equal(t, "1 free question left", formatQuota(false, 1))
	assert.Equal(t, "✨ PREMIUM", formatQuota(true, 0))
}

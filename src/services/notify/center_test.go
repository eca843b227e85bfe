package notify

import (
	"testing"
	"time"

	"hexchat/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCenter() *Center {
	t := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	return NewCenter(WithClock(func() time.Time {
		t = t.Add(time.Minute)
		return t
	}))
}

func TestAddIsNewestFirst(t *testing.T) {
	c := newTestCenter()

	c.Add(models.Notification{Title: "first", Kind: models.NotifyInfo})
	c.Add(models.Notification{Title: "second", Kind: models.NotifyInfo})

	all := c.All()
	require.Len(t, all, 2)
	assert.Equal(t, "second", all[0].Title)
	assert.Equal(t, "first", all[1].Title)
	assert.NotEqual(t, all[0].ID, all[1].ID)
	assert.True(t, all[0].CreatedAt.After(all[1].CreatedAt))
}

func TestUnreadTracking(t *testing.T) {
	c := newTestCenter()
	c.ServiceContact()
	c.PremiumPending(models.PaymentEFT)
	require.Equal(t, 2, c.UnreadCount())

	c.MarkRead(c.All()[0].ID)
	assert.Equal(t, 1, c.UnreadCount())

	c.MarkRead("missing-id") // no-op
	assert.Equal(t, 1, c.UnreadCount())

	c.MarkAllRead()
	assert.Equal(t, 0, c.UnreadCount())

	c.Clear()
	assert.Empty(t, c.All())
}

func TestPremiumFlowTemplates(t *testing.T) {
	c := newTestCenter()

	c.PremiumPending(models.PaymentEFT)
	c.PaymentReceived(models.PaymentEFT)
	c.PremiumActivated(models.PaymentEFT)

	all := c.All()
	require.Len(t, all, 3)

	assert.Equal(t, models.ActionPremiumActivated, all[0].Action)
	assert.Contains(t, all[0].Message, "via EFT")
	assert.Equal(t, models.ActionPaymentReceived, all[1].Action)
	assert.Equal(t, models.ActionPremiumPending, all[2].Action)
	assert.Contains(t, all[2].Message, "EFT payment proof")

	for _, n := range all {
		assert.Equal(t, models.PaymentEFT, n.Method)
	}
}

func TestPendingMessageVariesByMethod(t *testing.T) {
	c := newTestCenter()
	c.PremiumPending(models.PaymentPayPal)
	assert.Contains(t, c.All()[0].Message, "PayPal payment is being processed")
}

func TestBlueprintPurchaseTemplate(t *testing.T) {
	c := newTestCenter()
	c.BlueprintPurchase("Rich")
	n := c.All()[0]
	assert.Equal(t, "🎉 Rich Blueprint Purchase Confirmed!", n.Title)
	assert.Equal(t, models.NotifySuccess, n.Kind)
}

// Package notify keeps the in-memory notification feed: an unread-counted,
// newest-first list that the chat, payment, and contact flows push into.
// Nothing is persisted; the feed empties on restart.
package notify

import (
	"fmt"
	"time"

	"hexchat/src/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Center owns the notification list. Like the session controller it is
// driven from the single UI goroutine and is not safe for concurrent use.
type Center struct {
	log           *zap.Logger
	now           func() time.Time
	notifications []models.Notification
}

// Option customizes a Center at construction time.
type Option func(*Center)

// WithLogger replaces the no-op default logger.
func WithLogger(log *zap.Logger) Option {
	return func(c *Center) { c.log = log }
}

// WithClock injects the timestamp source, for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(c *Center) { c.now = now }
}

// NewCenter builds an empty notification feed.
func NewCenter(opts ...Option) *Center {
	c := &Center{
		log: zap.NewNop(),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Add pushes a notification to the front of the feed.
func (c *Center) Add(n models.Notification) {
	n.ID = uuid.NewString()
	n.CreatedAt = c.now()
	n.Read = false
	c.notifications = append([]models.Notification{n}, c.notifications...)
	c.log.Info("notification added",
		zap.String("title", n.Title),
		zap.String("action", string(n.Action)))
}

// All returns the feed, newest first.
func (c *Center) All() []models.Notification {
	return c.notifications
}

// UnreadCount returns how many notifications are unread.
func (c *Center) UnreadCount() int {
	n := 0
	for _, notif := range c.notifications {
		if !notif.Read {
			n++
		}
	}
	return n
}

// MarkRead marks a single notification as read.
func (c *Center) MarkRead(id string) {
	for i := range c.notifications {
		if c.notifications[i].ID == id {
			c.notifications[i].Read = true
			return
		}
	}
}

// MarkAllRead marks the whole feed as read.
func (c *Center) MarkAllRead() {
	for i := range c.notifications {
		c.notifications[i].Read = true
	}
}

// Clear empties the feed.
func (c *Center) Clear() {
	c.notifications = nil
}

// ServiceContact records that a service request was sent.
func (c *Center) ServiceContact() {
	c.Add(models.Notification{
		Title:   "📞 Service Request Received",
		Message: "Thank you for your interest! We typically respond within 24-48 hours. Our office hours are Monday-Friday, 09:00-17:00 SAST. We will contact you shortly about your service.",
		Kind:    models.NotifyInfo,
		Action:  models.ActionServiceContact,
	})
}

// BlueprintPurchase records a confirmed blueprint purchase.
func (c *Center) BlueprintPurchase(blueprint string) {
	c.Add(models.Notification{
		Title:   fmt.Sprintf("🎉 %s Blueprint Purchase Confirmed!", blueprint),
		Message: fmt.Sprintf("Your %s Blueprint purchase has been processed successfully. You will receive your blueprint via email shortly. Contact us if you have any issues.", blueprint),
		Kind:    models.NotifySuccess,
		Action:  models.ActionBlueprintPurchase,
	})
}

// PremiumPending records that a premium payment was submitted and awaits
// verification.
func (c *Center) PremiumPending(method models.PaymentMethod) {
	message := "Your PayPal payment is being processed. Premium access will be activated shortly. You will receive a confirmation notification once complete."
	if method == models.PaymentEFT {
		message = "Your EFT payment proof has been submitted. We will verify and activate your premium account within 24 hours. You will receive a confirmation notification once activated."
	}
	c.Add(models.Notification{
		Title:   "⏳ Premium Activation Pending",
		Message: message,
		Kind:    models.NotifyInfo,
		Action:  models.ActionPremiumPending,
		Method:  method,
	})
}

// PaymentReceived records that a premium payment was received and verified.
func (c *Center) PaymentReceived(method models.PaymentMethod) {
	c.Add(models.Notification{
		Title:   "💰 Payment Received",
		Message: fmt.Sprintf("Your %s payment for HEX HUSTLER AI Premium has been received and verified. Processing activation now...", method.Label()),
		Kind:    models.NotifySuccess,
		Action:  models.ActionPaymentReceived,
		Method:  method,
	})
}

// PremiumActivated records that the premium subscription is live.
func (c *Center) PremiumActivated(method models.PaymentMethod) {
	c.Add(models.Notification{
		Title:   "🎉 Premium Activated!",
		Message: fmt.Sprintf("Congratulations! Your HEX HUSTLER AI Premium subscription is now active via %s. Enjoy unlimited AI conversations, priority responses, and exclusive hustler strategies!", method.Label()),
		Kind:    models.NotifySuccess,
		Action:  models.ActionPremiumActivated,
		Method:  method,
	})
}

package models

import "time"

// NotificationKind classifies a notification for display styling.
type NotificationKind string

const (
	NotifySuccess NotificationKind = "success"
	NotifyInfo    NotificationKind = "info"
	NotifyWarning NotificationKind = "warning"
	NotifyError   NotificationKind = "error"
)

// NotificationAction records which app event produced a notification.
type NotificationAction string

const (
	ActionServiceContact    NotificationAction = "service_contact"
	ActionBlueprintPurchase NotificationAction = "blueprint_purchase"
	ActionPremiumActivated  NotificationAction = "premium_activated"
	ActionPremiumPending    NotificationAction = "premium_pending"
	ActionPaymentReceived   NotificationAction = "payment_received"
)

// PaymentMethod is how the user says they paid. Payment is never verified
// here; reconciliation happens against bank statements outside the app.
type PaymentMethod string

const (
	PaymentEFT    PaymentMethod = "eft"
	PaymentPayPal PaymentMethod = "paypal"
)

// Label returns the display name for a payment method.
func (p PaymentMethod) Label() string {
	if p == PaymentPayPal {
		return "PayPal"
	}
	return "EFT"
}

// Notification is one entry in the in-memory notification feed.
type Notification struct {
	ID        string             `json:"id"`
	Title     string             `json:"title"`
	Message   string             `json:"message"`
	Kind      NotificationKind   `json:"type"`
	Action    NotificationAction `json:"action_type,omitempty"`
	Method    PaymentMethod      `json:"payment_method,omitempty"`
	CreatedAt time.Time          `json:"timestamp"`
	Read      bool               `json:"read"`
}

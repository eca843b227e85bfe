// Package payment holds the manual payment collaborator: blueprint plan
// data, EFT banking details, checkout URLs, and the premium upgrade flow.
//
// This is a documented trust boundary. Nothing here verifies money moved;
// submitting an order or confirming a payment is taken at the user's word and
// reconciled against bank statements by a human.
package payment

import (
	"fmt"

	"hexchat/src/models"
	"hexchat/src/services/notify"
	"hexchat/src/services/session"

	"go.uber.org/zap"
)

// Checkout URLs opened in the user's browser.
const (
	PayPalURL = "https://paypal.me/CasHexer"
	StripeURL = "https://buy.stripe.com/test_aFaeVfew77Fd1va1yR4sE00"
)

// OrderEmail is where purchase orders are sent for fulfilment.
const OrderEmail = "cashexerbusiness@gmail.com"

// OrderPhone receives the SMS copy of a purchase order.
const OrderPhone = "+27714008892"

// BankDetails are the EFT payment instructions shown to the buyer.
type BankDetails struct {
	Bank          string
	AccountNumber string
	AccountType   string
	Reference     string
	SwiftCode     string
}

// Banking is the business's EFT account.
var Banking = BankDetails{
	Bank:          "Nedbank",
	AccountNumber: "1211596699",
	AccountType:   "Current Account",
	Reference:     "HEX HUSTLERS Private Company",
	SwiftCode:     "NEDSZAJJ",
}

// Plan is one purchasable blueprint tier.
type Plan struct {
	ID           string
	Title        string
	Price        string
	Features     []string
	Subscription bool
}

// Plans lists the blueprint tiers in display order.
var Plans = []Plan{
	{
		ID:    "rich",
		Title: "Code Your Success: Rich Version - Complete Developer's Blueprint",
		Price: "R525 / $29",
		Features: []string{
			"Complete development guide with code samples",
			"Project planning worksheets",
			"Technology selection framework",
			"Security implementation guide",
			"Real-world code examples",
			"Implementation checklists",
		},
	},
	{
		ID:           "wealthy",
		Title:        "Code Your Success: Wealthy Version - Premium Membership",
		Price:        "R900 / $49 monthly",
		Subscription: true,
		Features: []string{
			"Everything in Rich Version",
			"30-minute monthly consultation call",
			"Additional project templates",
			"Priority email support",
			"Monthly updated content",
			"Exclusive developer resources",
		},
	},
}

// PlanByID returns the plan with the given id.
func PlanByID(id string) (Plan, error) {
	for _, p := range Plans {
		if p.ID == id {
			return p, nil
		}
	}
	return Plan{}, &models.NotFoundError{Message: "no plan with id " + id}
}

// Order is a blueprint purchase submission: customer details plus the name of
// the uploaded proof-of-payment document.
type Order struct {
	Name     string
	Email    string
	Phone    string
	Document string
}

// Validate checks the order fields for presence only.
func (o Order) Validate() error {
	if o.Name == "" || o.Email == "" || o.Phone == "" {
		return &models.ValidationError{Message: "please fill in all fields"}
	}
	if o.Document == "" {
		return &models.ValidationError{Message: "please upload proof of payment"}
	}
	return nil
}

// Message builds the fulfilment message sent by email and SMS to the
// business owner.
func (o Order) Message() string {
	doc := o.Document
	if doc == "" {
		doc = "Attached"
	}
	return fmt.Sprintf("NEW RICH BLUEPRINT PURCHASE!\n\nCustomer Details:\nName: %s\nEmail: %s\nPhone: %s\nDocument: %s\n\nPlease send \"Code Your Success: Blueprint\" to this customer.", o.Name, o.Email, o.Phone, doc)
}

// Service drives the purchase and premium-upgrade flows, feeding the
// notification feed and the session controller.
type Service struct {
	controller *session.Controller
	feed       *notify.Center
	log        *zap.Logger
}

// NewService wires the payment flows to the controller and feed.
func NewService(controller *session.Controller, feed *notify.Center, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{controller: controller, feed: feed, log: log}
}

// SubmitOrder validates a blueprint order and records the purchase. The
// returned text is the fulfilment message the caller forwards by email.
func (s *Service) SubmitOrder(plan Plan, order Order) (string, error) {
	if err := order.Validate(); err != nil {
		return "", err
	}
	s.feed.BlueprintPurchase(planShortName(plan))
	s.log.Info("blueprint order submitted",
		zap.String("plan", plan.ID),
		zap.String("customer", order.Email))
	return order.Message(), nil
}

// BeginUpgrade records that the user chose a payment method for premium and
// is off paying. The quota stays in force until ConfirmPayment.
func (s *Service) BeginUpgrade(method models.PaymentMethod) {
	s.feed.PremiumPending(method)
	s.log.Info("premium upgrade started", zap.String("method", string(method)))
}

// ConfirmPayment is the "Yes, I paid" step: it unconditionally treats the
// payment as received and activates premium.
func (s *Service) ConfirmPayment(method models.PaymentMethod) {
	s.feed.PaymentReceived(method)
	s.controller.GrantPremium()
	s.feed.PremiumActivated(method)
	s.log.Info("premium payment confirmed", zap.String("method", string(method)))
}

func planShortName(plan Plan) string {
	if plan.Subscription {
		return "Wealthy"
	}
	return "Rich"
}

package payment

import (
	"testing"

	"hexchat/src/models"
	"hexchat/src/services/knowledge"
	"hexchat/src/services/notify"
	"hexchat/src/services/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() (*Service, *session.Controller, *notify.Center) {
	controller := session.New(session.DefaultConfig(), knowledge.Match)
	feed := notify.NewCenter()
	return NewService(controller, feed, nil), controller, feed
}

func TestOrderValidate(t *testing.T) {
	tests := []struct {
		name    string
		order   Order
		wantErr string
	}{
		{
			name:  "complete order",
			order: Order{Name: "Thabo", Email: "t@example.com", Phone: "+27820000000", Document: "proof.pdf"},
		},
		{
			name:    "missing customer field",
			order:   Order{Name: "Thabo", Phone: "+27820000000", Document: "proof.pdf"},
			wantErr: "please fill in all fields",
		},
		{
			name:    "missing proof of payment",
			order:   Order{Name: "Thabo", Email: "t@example.com", Phone: "+27820000000"},
			wantErr: "please upload proof of payment",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.order.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			var verr *models.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantErr, verr.Message)
		})
	}
}

func TestOrderMessage(t *testing.T) {
	order := Order{Name: "Thabo", Email: "t@example.com", Phone: "+27820000000", Document: "proof.pdf"}
	msg := order.Message()
	assert.Contains(t, msg, "NEW RICH BLUEPRINT PURCHASE!")
	assert.Contains(t, msg, "Name: Thabo")
	assert.Contains(t, msg, "Document: proof.pdf")
	assert.Contains(t, msg, `"Code Your Success: Blueprint"`)
}

func TestSubmitOrder(t *testing.T) {
	svc, _, feed := newTestService()
	plan, err := PlanByID("rich")
	require.NoError(t, err)

	msg, err := svc.SubmitOrder(plan, Order{
		Name: "Thabo", Email: "t@example.com", Phone: "+27820000000", Document: "proof.pdf",
	})
	require.NoError(t, err)
	assert.Contains(t, msg, "Name: Thabo")

	require.Len(t, feed.All(), 1)
	assert.Equal(t, models.ActionBlueprintPurchase, feed.All()[0].Action)
	assert.Contains(t, feed.All()[0].Title, "Rich")
}

func TestSubmitOrderRejectsInvalid(t *testing.T) {
	svc, _, feed := newTestService()
	plan, _ := PlanByID("wealthy")

	_, err := svc.SubmitOrder(plan, Order{Name: "only a name"})
	var verr *models.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Empty(t, feed.All(), "failed orders must not notify")
}

// The full manual upgrade walk: pending, received, activated, quota lifted.
func TestPremiumUpgradeFlow(t *testing.T) {
	svc, controller, feed := newTestService()
	require.False(t, controller.IsPremium())

	svc.BeginUpgrade(models.PaymentEFT)
	require.False(t, controller.IsPremium(), "pending payment must not grant premium")

	svc.ConfirmPayment(models.PaymentEFT)
	assert.True(t, controller.IsPremium())

	all := feed.All()
	require.Len(t, all, 3)
	assert.Equal(t, models.ActionPremiumActivated, all[0].Action)
	assert.Equal(t, models.ActionPaymentReceived, all[1].Action)
	assert.Equal(t, models.ActionPremiumPending, all[2].Action)
}

func TestPlanByID(t *testing.T) {
	plan, err := PlanByID("wealthy")
	require.NoError(t, err)
	assert.True(t, plan.Subscription)

	_, err = PlanByID("platinum")
	var notFound *models.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestPlanAndBankingData(t *testing.T) {
	require.Len(t, Plans, 2)
	assert.False(t, Plans[0].Subscription)
	for _, p := range Plans {
		assert.NotEmpty(t, p.Title)
		assert.NotEmpty(t, p.Price)
		assert.NotEmpty(t, p.Features)
	}
	assert.Equal(t, "Nedbank", Banking.Bank)
	assert.NotEmpty(t, Banking.SwiftCode)
}

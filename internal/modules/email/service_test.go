package email_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tompettersson/reparatur-formular/internal/config"
	"github.com/tompettersson/reparatur-formular/internal/mailer"
	"github.com/tompettersson/reparatur-formular/internal/modules/email"
	"github.com/tompettersson/reparatur-formular/internal/modules/orders"
)

func testOrder() orders.Order {
	number := "R-20250901-0001"
	return orders.Order{
		ID:          "o-1",
		OrderNumber: &number,
		FirstName:   "Max",
		LastName:    "Mustermann",
		Email:       "max@example.com",
		TotalPrice:  decimal.RequireFromString("71.00"),
	}
}

func newNotifier() (*email.Notifier, *mailer.Mock) {
	mock := &mailer.Mock{}
	n := email.NewNotifier(mock, config.MailConfig{
		FromAddr: "noreply@kletterschuhe.de",
		FromName: "kletterschuhe.de Reparatur-Service",
	})
	return n, mock
}

func TestOrderConfirmation(t *testing.T) {
	n, mock := newNotifier()

	items := []orders.OrderItem{{
		Manufacturer:    "La Sportiva",
		Model:           "Solution",
		Quantity:        decimal.NewFromInt(1),
		CalculatedPrice: decimal.RequireFromString("71.00"),
	}}
	require.NoError(t, n.OrderConfirmation(context.Background(), testOrder(), items))

	sent, ok := mock.Last()
	require.True(t, ok)
	assert.Equal(t, []string{"max@example.com"}, sent.To)
	assert.Contains(t, sent.Subject, "R-20250901-0001")
	assert.Contains(t, sent.TextBody, "71,00 €")
	assert.Contains(t, sent.HTMLBody, "La Sportiva Solution")
}

func TestStatusUpdateWithTracking(t *testing.T) {
	n, mock := newNotifier()

	carrier := "DHL"
	tracking := "123456789"
	comment := "Sohle wie besprochen"
	change := orders.OrderStatusChange{
		FromStatus:      orders.StatusReady,
		ToStatus:        orders.StatusShipped,
		Comment:         &comment,
		TrackingCarrier: &carrier,
		TrackingNumber:  &tracking,
	}
	require.NoError(t, n.StatusChanged(context.Background(), testOrder(), change))

	sent, ok := mock.Last()
	require.True(t, ok)
	assert.Contains(t, sent.Subject, "Versendet")
	assert.Contains(t, sent.TextBody, "DHL 123456789")
	assert.Contains(t, sent.TextBody, "Sohle wie besprochen")
}

func TestMissingRecipientFails(t *testing.T) {
	n, _ := newNotifier()
	o := testOrder()
	o.Email = ""
	assert.Error(t, n.OrderConfirmation(context.Background(), o, nil))
}

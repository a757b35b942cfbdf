package email

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/treysweeney3/hunt-kitchen-sub000/storage/db"
)

func sampleOrder() (*db.Order, []db.OrderItem) {
	order := &db.Order{
		ID:                 "01JORDER",
		OrderNumber:        "HK-261016-ABC123",
		Email:              "jane@example.com",
		CustomerName:       "Jane Hunter",
		SubtotalCents:      4998,
		DiscountCents:      500,
		ShippingCents:      599,
		TaxCents:           200,
		TotalCents:         5297,
		ShippingName:       "Jane Hunter",
		ShippingLine1:      "1 Elk Ridge Rd",
		ShippingCity:       "Bozeman",
		ShippingState:      "MT",
		ShippingPostalCode: "59715",
		ShippingCountry:    "US",
		BillingName:        "Jane Hunter",
		BillingLine1:       "PO Box 7",
		BillingCity:        "Bozeman",
		BillingState:       "MT",
		BillingPostalCode:  "59771",
		BillingCountry:     "US",
		ShippingMethod:     sql.NullString{String: "Standard Shipping", Valid: true},
		CustomerNotes:      sql.NullString{String: "gate code 1234", Valid: true},
		PaymentIntentID:    sql.NullString{String: "pi_123", Valid: true},
		CreatedAt:          time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC),
	}
	items := []db.OrderItem{{
		ProductName:     "Elk Jerky Kit",
		VariantTitle:    sql.NullString{String: "Hickory", Valid: true},
		Sku:             sql.NullString{String: "EJK-HIC", Valid: true},
		Quantity:        2,
		UnitPriceCents:  2499,
		TotalPriceCents: 4998,
	}}
	return order, items
}

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "$12.34", FormatCents(1234))
	assert.Equal(t, "$0.05", FormatCents(5))
	assert.Equal(t, "-$5.00", FormatCents(-500))
}

func TestSendOrderConfirmation(t *testing.T) {
	sender := &LogSender{}
	svc := NewServiceWithSender(sender, "orders@huntkitchen.test", "team@huntkitchen.test", "https://huntkitchen.test/")
	order, items := sampleOrder()

	require.NoError(t, svc.SendOrderConfirmation(context.Background(), order, items))
	require.Len(t, sender.Sent, 1)

	msg := sender.Sent[0]
	assert.Equal(t, []string{"jane@example.com"}, msg.To)
	assert.Equal(t, "Order Confirmation - HK-261016-ABC123", msg.Subject)
	assert.True(t, msg.IsHTML)
	assert.Contains(t, msg.Body, "Elk Jerky Kit")
	assert.Contains(t, msg.Body, "Hickory")
	assert.Contains(t, msg.Body, "$52.97")
	assert.Contains(t, msg.Body, "-$5.00")
	assert.Contains(t, msg.Body, "Bozeman, MT 59715")
	assert.Contains(t, msg.Body, "October 16, 2026")
}

func TestSendOrderNotificationToAdmin(t *testing.T) {
	sender := &LogSender{}
	svc := NewServiceWithSender(sender, "orders@huntkitchen.test", "team@huntkitchen.test", "https://huntkitchen.test")
	order, items := sampleOrder()

	require.NoError(t, svc.SendOrderNotificationToAdmin(context.Background(), order, items))
	require.Len(t, sender.Sent, 1)

	msg := sender.Sent[0]
	assert.Equal(t, []string{"team@huntkitchen.test"}, msg.To)
	assert.Equal(t, "jane@example.com", msg.ReplyTo)
	assert.Contains(t, msg.Body, "EJK-HIC")
	assert.Contains(t, msg.Body, "gate code 1234")
	assert.Contains(t, msg.Body, "https://huntkitchen.test/admin/orders/01JORDER")
	assert.Contains(t, msg.Body, "PO Box 7")
}

func TestSendOrderNotificationToAdmin_NoInternalAddress(t *testing.T) {
	sender := &LogSender{}
	svc := NewServiceWithSender(sender, "orders@huntkitchen.test", "", "https://huntkitchen.test")
	order, items := sampleOrder()

	require.NoError(t, svc.SendOrderNotificationToAdmin(context.Background(), order, items))
	assert.Empty(t, sender.Sent)
}

func TestSendOrderConfirmation_MissingEmail(t *testing.T) {
	svc := NewServiceWithSender(&LogSender{}, "orders@huntkitchen.test", "", "")
	order, items := sampleOrder()
	order.Email = ""
	assert.Error(t, svc.SendOrderConfirmation(context.Background(), order, items))
}

func TestNewService_SelectsSender(t *testing.T) {
	assert.IsType(t, &LogSender{}, NewService(Config{}).sender)
	assert.IsType(t, &SMTPSender{}, NewService(Config{SMTPHost: "smtp.test", SMTPPassword: "x", SMTPPort: 587}).sender)
	assert.IsType(t, &SendGridSender{}, NewService(Config{Provider: ProviderSendGrid, SendGridAPIKey: "SG.x"}).sender)
}

func TestNewSendGridMessage(t *testing.T) {
	msg := newSendGridMessage("orders@huntkitchen.test", &Email{
		To:      []string{"a@example.com", "b@example.com"},
		Subject: "Hi",
		Body:    "<p>hi</p>",
		IsHTML:  true,
		ReplyTo: "team@huntkitchen.test",
	})
	assert.Equal(t, "Hi", msg.Subject)
	require.Len(t, msg.Personalizations, 1)
	assert.Len(t, msg.Personalizations[0].To, 2)
	require.Len(t, msg.Content, 1)
	assert.Equal(t, "text/html", msg.Content[0].Type)
	assert.Equal(t, "team@huntkitchen.test", msg.ReplyTo.Address)
}

package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
	"strings"
	"sync"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/treysweeney3/hunt-kitchen-sub000/internal/orders"
	"github.com/treysweeney3/hunt-kitchen-sub000/storage/db"
)

const (
	ProviderSMTP     = "smtp"
	ProviderSendGrid = "sendgrid"
)

// Config selects and configures the outbound mail provider.
type Config struct {
	Provider       string
	From           string
	InternalTo     string
	StoreURL       string
	SMTPHost       string
	SMTPPort       int
	SMTPLogin      string
	SMTPPassword   string
	SendGridAPIKey string
}

// Email represents an email message
type Email struct {
	To      []string
	Subject string
	Body    string
	IsHTML  bool
	ReplyTo string
}

// Sender delivers a rendered message.
type Sender interface {
	Send(ctx context.Context, email *Email) error
}

// Service renders and sends the store's transactional email
type Service struct {
	sender     Sender
	from       string
	internalTo string
	storeURL   string
}

func NewService(cfg Config) *Service {
	var sender Sender
	switch {
	case cfg.Provider == ProviderSendGrid && cfg.SendGridAPIKey != "":
		sender = NewSendGridSender(cfg.SendGridAPIKey, cfg.From)
	case cfg.SMTPHost != "" && cfg.SMTPPassword != "":
		sender = &SMTPSender{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPLogin,
			Password: cfg.SMTPPassword,
			From:     cfg.From,
		}
	default:
		slog.Warn("email provider not configured, messages will only be logged")
		sender = &LogSender{}
	}
	return NewServiceWithSender(sender, cfg.From, cfg.InternalTo, cfg.StoreURL)
}

func NewServiceWithSender(sender Sender, from, internalTo, storeURL string) *Service {
	return &Service{
		sender:     sender,
		from:       from,
		internalTo: internalTo,
		storeURL:   strings.TrimSuffix(storeURL, "/"),
	}
}

func (s *Service) supportEmail() string {
	if s.internalTo != "" {
		return s.internalTo
	}
	return s.from
}

// SMTPSender sends mail through an authenticated SMTP relay
type SMTPSender struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func (m *SMTPSender) Send(_ context.Context, email *Email) error {
	if m.Host == "" || m.Password == "" || m.From == "" {
		return fmt.Errorf("email service not configured: missing SMTP_HOST, SMTP_PASSWORD, or EMAIL_FROM")
	}

	var msg bytes.Buffer
	msg.WriteString(fmt.Sprintf("From: %s\r\n", m.From))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", strings.Join(email.To, ", ")))
	if email.ReplyTo != "" {
		msg.WriteString(fmt.Sprintf("Reply-To: %s\r\n", email.ReplyTo))
	}
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", email.Subject))

	if email.IsHTML {
		msg.WriteString("MIME-Version: 1.0\r\n")
		msg.WriteString("Content-Type: text/html; charset=\"utf-8\"\r\n")
	}

	msg.WriteString("\r\n")
	msg.WriteString(email.Body)

	auth := smtp.PlainAuth("", m.Username, m.Password, m.Host)
	addr := fmt.Sprintf("%s:%d", m.Host, m.Port)
	if err := smtp.SendMail(addr, auth, m.From, email.To, msg.Bytes()); err != nil {
		slog.Error("failed to send email", "error", err, "to", email.To)
		return fmt.Errorf("failed to send email: %w", err)
	}

	slog.Info("email sent successfully", "to", email.To, "subject", email.Subject)
	return nil
}

// SendGridSender sends mail through the SendGrid v3 API
type SendGridSender struct {
	client *sendgrid.Client
	from   string
}

func NewSendGridSender(apiKey, from string) *SendGridSender {
	return &SendGridSender{client: sendgrid.NewSendClient(apiKey), from: from}
}

func (g *SendGridSender) Send(ctx context.Context, email *Email) error {
	message := newSendGridMessage(g.from, email)
	resp, err := g.client.SendWithContext(ctx, message)
	if err != nil {
		slog.Error("failed to send email", "error", err, "to", email.To, "provider", ProviderSendGrid)
		return fmt.Errorf("failed to send email: %w", err)
	}
	if resp.StatusCode >= 300 {
		slog.Error("sendgrid rejected email", "status", resp.StatusCode, "body", resp.Body, "to", email.To)
		return fmt.Errorf("sendgrid returned status %d", resp.StatusCode)
	}
	slog.Info("email sent successfully", "to", email.To, "subject", email.Subject, "provider", ProviderSendGrid)
	return nil
}

func newSendGridMessage(from string, email *Email) *mail.SGMailV3 {
	message := mail.NewV3Mail()
	message.SetFrom(mail.NewEmail("Hunt Kitchen", from))
	message.Subject = email.Subject

	p := mail.NewPersonalization()
	for _, to := range email.To {
		p.AddTos(mail.NewEmail("", to))
	}
	message.AddPersonalizations(p)

	contentType := "text/plain"
	if email.IsHTML {
		contentType = "text/html"
	}
	message.AddContent(mail.NewContent(contentType, email.Body))

	if email.ReplyTo != "" {
		message.SetReplyTo(mail.NewEmail("", email.ReplyTo))
	}
	return message
}

// LogSender records messages instead of sending them. Used in development and tests.
type LogSender struct {
	mu   sync.Mutex
	Sent []Email
}

func (l *LogSender) Send(_ context.Context, email *Email) error {
	l.mu.Lock()
	l.Sent = append(l.Sent, *email)
	l.mu.Unlock()
	slog.Info("email not sent, no provider configured", "to", email.To, "subject", email.Subject)
	return nil
}

// OrderData contains all the data needed for order emails
type OrderData struct {
	OrderNumber     string
	CustomerName    string
	CustomerEmail   string
	OrderDate       string
	Items           []OrderItem
	SubtotalCents   int64
	DiscountCents   int64
	TaxCents        int64
	ShippingCents   int64
	TotalCents      int64
	ShippingMethod  string
	ShippingLines   []string
	BillingLines    []string
	CustomerNotes   string
	PaymentIntentID string
	SupportEmail    string
	AdminURL        string
}

// OrderItem represents a single item in an order
type OrderItem struct {
	ProductName  string
	VariantTitle string
	SKU          string
	Quantity     int64
	PriceCents   int64
	TotalCents   int64
}

// FormatCents converts cents to dollar string (e.g., 1234 -> "$12.34")
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}

func (s *Service) orderData(order *db.Order, items []db.OrderItem) *OrderData {
	data := &OrderData{
		OrderNumber:     order.OrderNumber,
		CustomerName:    order.CustomerName,
		CustomerEmail:   order.Email,
		OrderDate:       order.CreatedAt.Format("January 2, 2006"),
		SubtotalCents:   order.SubtotalCents,
		DiscountCents:   order.DiscountCents,
		TaxCents:        order.TaxCents,
		ShippingCents:   order.ShippingCents,
		TotalCents:      order.TotalCents,
		ShippingMethod:  order.ShippingMethod.String,
		ShippingLines:   orders.ShippingAddress(order).Lines(),
		BillingLines:    orders.BillingAddress(order).Lines(),
		CustomerNotes:   order.CustomerNotes.String,
		PaymentIntentID: order.PaymentIntentID.String,
		SupportEmail:    s.supportEmail(),
		AdminURL:        s.storeURL + "/admin/orders/" + order.ID,
	}
	if data.CustomerName == "" {
		data.CustomerName = order.ShippingName
	}
	for _, it := range items {
		data.Items = append(data.Items, OrderItem{
			ProductName:  it.ProductName,
			VariantTitle: it.VariantTitle.String,
			SKU:          it.Sku.String,
			Quantity:     it.Quantity,
			PriceCents:   it.UnitPriceCents,
			TotalCents:   it.TotalPriceCents,
		})
	}
	return data
}

// SendOrderConfirmation sends an order confirmation email to the customer
func (s *Service) SendOrderConfirmation(ctx context.Context, order *db.Order, items []db.OrderItem) error {
	if order.Email == "" {
		return fmt.Errorf("order %s has no customer email", order.OrderNumber)
	}
	data := s.orderData(order, items)
	html, err := s.RenderCustomerOrderEmail(data)
	if err != nil {
		return err
	}

	return s.sender.Send(ctx, &Email{
		To:      []string{order.Email},
		Subject: fmt.Sprintf("Order Confirmation - %s", data.OrderNumber),
		Body:    html,
		IsHTML:  true,
		ReplyTo: s.internalTo,
	})
}

// SendOrderNotificationToAdmin sends an order notification to the admin/internal email
func (s *Service) SendOrderNotificationToAdmin(ctx context.Context, order *db.Order, items []db.OrderItem) error {
	if s.internalTo == "" {
		slog.Debug("EMAIL_TO_INTERNAL not set, skipping admin notification", "order_number", order.OrderNumber)
		return nil
	}
	data := s.orderData(order, items)
	html, err := s.RenderAdminOrderEmail(data)
	if err != nil {
		return err
	}

	return s.sender.Send(ctx, &Email{
		To:      []string{s.internalTo},
		Subject: fmt.Sprintf("New Order Received - %s (%s)", data.OrderNumber, FormatCents(data.TotalCents)),
		Body:    html,
		IsHTML:  true,
		ReplyTo: order.Email,
	})
}

var (
	funcs          = template.FuncMap{"FormatCents": FormatCents}
	customerTmpl   = template.Must(template.New("customer").Funcs(funcs).Parse(customerOrderContentTemplate))
	adminOrderTmpl = template.Must(template.New("admin").Funcs(funcs).Parse(adminOrderContentTemplate))
)

// RenderCustomerOrderEmail renders the customer order email
func (s *Service) RenderCustomerOrderEmail(data *OrderData) (string, error) {
	var content bytes.Buffer
	if err := customerTmpl.Execute(&content, data); err != nil {
		return "", fmt.Errorf("failed to render customer email content: %w", err)
	}
	return s.WrapEmailContent(content.String(), "Order Confirmation - "+data.OrderNumber)
}

// RenderAdminOrderEmail renders the admin order email
func (s *Service) RenderAdminOrderEmail(data *OrderData) (string, error) {
	var content bytes.Buffer
	if err := adminOrderTmpl.Execute(&content, data); err != nil {
		return "", fmt.Errorf("failed to render admin email content: %w", err)
	}
	return s.WrapEmailContent(content.String(), "New Order Received - "+data.OrderNumber)
}

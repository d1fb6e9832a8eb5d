// internal/adapters/out/mail/receipt_mailer.go
package mail

import (
	"context"
	"fmt"
	"strings"

	orderdom "github.com/Happ11quokka/Hanyang-Market/internal/domain/order"
)

// ReceiptMailerPort is the outbound port the checkout flow uses to send a
// purchase receipt. Sending is best-effort: the caller logs failures and
// never fails the purchase over them.
type ReceiptMailerPort interface {
	SendReceipt(ctx context.Context, toEmail string, o orderdom.Order) error
}

// EmailClient abstracts the concrete mail provider (SendGrid here).
type EmailClient interface {
	Send(ctx context.Context, from, to, subject, body string) error
}

// ReceiptMailer renders and sends order receipts through an EmailClient.
type ReceiptMailer struct {
	client      EmailClient
	fromAddress string
}

func NewReceiptMailer(client EmailClient, fromAddress string) *ReceiptMailer {
	return &ReceiptMailer{
		client:      client,
		fromAddress: strings.TrimSpace(fromAddress),
	}
}

func (m *ReceiptMailer) SendReceipt(ctx context.Context, toEmail string, o orderdom.Order) error {
	to := strings.TrimSpace(toEmail)
	if to == "" {
		return fmt.Errorf("receipt_mailer: recipient email is empty")
	}

	subject := fmt.Sprintf("[Hanyang Market] Order %s", o.ID)

	var b strings.Builder
	fmt.Fprintf(&b, "Thank you for your purchase.\n\nOrder: %s\nStatus: %s\n\nItems:\n", o.ID, o.Status)
	for _, it := range o.Items {
		line := fmt.Sprintf("  - %s  %s  x%d  (%s)", it.Name, it.Price, it.Quantity, it.Status)
		if it.FailReason != "" {
			line += "  reason: " + it.FailReason
		}
		b.WriteString(line + "\n")
	}
	fmt.Fprintf(&b, "\nTotal: %.2f\n\n-- \nHanyang Market", o.Total)

	return m.client.Send(ctx, m.fromAddress, to, subject, b.String())
}

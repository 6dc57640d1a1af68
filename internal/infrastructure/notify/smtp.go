// Package notify provides Notifier implementations for subscriber emails.
//
// Delivery is strictly best-effort: callers log and discard any error, and no
// retry is attempted anywhere.
package notify

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/pressroom/newsroom-api/internal/core/ports"
)

// SMTPNotifier delivers notifications over a plain SMTP relay.
type SMTPNotifier struct {
	addr string // host:port
	from string
	auth smtp.Auth
}

// NewSMTPNotifier creates an SMTPNotifier. Username may be empty for relays
// that accept unauthenticated mail (e.g. a local MTA).
func NewSMTPNotifier(host string, port int, from, username, password string) *SMTPNotifier {
	var auth smtp.Auth
	if username != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}
	return &SMTPNotifier{
		addr: fmt.Sprintf("%s:%d", host, port),
		from: from,
		auth: auth,
	}
}

// Send delivers a single message to all recipients. The context is accepted
// for interface symmetry; net/smtp has no native cancellation.
func (n *SMTPNotifier) Send(_ context.Context, notification ports.Notification) error {
	if len(notification.Recipients) == 0 {
		return nil
	}
	msg := buildMessage(n.from, notification)
	if err := smtp.SendMail(n.addr, n.auth, n.from, notification.Recipients, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

// buildMessage renders the RFC 5322 message: headers, blank line, body.
func buildMessage(from string, n ports.Notification) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(n.Recipients, ", "))
	fmt.Fprintf(&b, "Subject: %s\r\n", n.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(n.Body)
	return []byte(b.String())
}

// Package mail sends operator notifications for intake submissions.
package mail

import (
	"context"
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	gomail "github.com/wneessen/go-mail"
	"github.com/vistaar/vistaar/internal/store"
)

// Notifier delivers a notification about a new contact submission.
type Notifier interface {
	NotifyContact(ctx context.Context, c store.Contact) error
}

// Nop discards notifications. It is used when SMTP is not configured.
type Nop struct{}

func (Nop) NotifyContact(context.Context, store.Contact) error { return nil }

// SMTPConfig holds the outbound mail settings.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string
}

// Enabled reports whether credentials are set; without them nothing is sent.
func (c SMTPConfig) Enabled() bool {
	return c.Username != "" && c.Password != ""
}

// SMTPNotifier sends notifications through an SMTP relay.
type SMTPNotifier struct {
	cfg    SMTPConfig
	client *gomail.Client
}

func NewSMTPNotifier(cfg SMTPConfig) (*SMTPNotifier, error) {
	if cfg.From == "" {
		cfg.From = cfg.Username
	}
	if cfg.To == "" {
		cfg.To = cfg.Username
	}
	client, err := gomail.NewClient(cfg.Host,
		gomail.WithPort(cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.Username),
		gomail.WithPassword(cfg.Password),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create smtp client: %w", err)
	}
	return &SMTPNotifier{cfg: cfg, client: client}, nil
}

func (n *SMTPNotifier) NotifyContact(ctx context.Context, c store.Contact) error {
	msg := gomail.NewMsg()
	if err := msg.From(n.cfg.From); err != nil {
		return fmt.Errorf("invalid from address: %w", err)
	}
	if err := msg.To(n.cfg.To); err != nil {
		return fmt.Errorf("invalid to address: %w", err)
	}
	msg.Subject(ContactSubject(c))
	msg.SetBodyString(gomail.TypeTextHTML, ContactBody(c))

	if err := n.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send contact notification: %w", err)
	}
	return nil
}

var strict = bluemonday.StrictPolicy()

// clean strips markup from user supplied text before it goes into HTML.
func clean(s string) string {
	return strict.Sanitize(s)
}

func ContactSubject(c store.Contact) string {
	// Header values must stay on one line.
	name := strings.Join(strings.Fields(c.Name), " ")
	return "New Contact Form Submission from " + name
}

// ContactBody renders the HTML notification for a contact submission.
func ContactBody(c store.Contact) string {
	phone := c.Phone
	if phone == "" {
		phone = "N/A"
	}
	var b strings.Builder
	b.WriteString("<h2>New Contact Form Submission</h2>\n")
	fmt.Fprintf(&b, "<p><strong>Name:</strong> %s</p>\n", clean(c.Name))
	fmt.Fprintf(&b, "<p><strong>Email:</strong> %s</p>\n", clean(c.Email))
	fmt.Fprintf(&b, "<p><strong>Phone:</strong> %s</p>\n", clean(phone))
	b.WriteString("<p><strong>Message:</strong></p>\n")
	fmt.Fprintf(&b, "<p>%s</p>\n", strings.ReplaceAll(clean(c.Message), "\n", "<br>"))
	return b.String()
}

package notifier

import (
	"VCS_Registry_Health/pkg/mail"
	"context"
	"fmt"
	"html"
	"time"
)

//go:generate mockgen -source=notifier.go -destination=../mocks/notifier/mock_notifier.go -package=mocknotifier

// StatusChange describes a health status transition. VariantID is empty for service level changes.
type StatusChange struct {
	ServiceID   string
	ServiceName string
	VariantID   string
	VariantName string
	From        string
	To          string
	Message     string
	CheckedAt   time.Time
}

func (c StatusChange) target() string {
	if c.VariantID == "" {
		return fmt.Sprintf("service %s", c.ServiceName)
	}
	return fmt.Sprintf("variant %s of service %s", c.VariantName, c.ServiceName)
}

type Notifier interface {
	NotifyStatusChange(ctx context.Context, change StatusChange) error
}

type mailNotifier struct {
	sender     mail.Sender
	recipients []string
}

func (n *mailNotifier) NotifyStatusChange(_ context.Context, change StatusChange) error {
	subject := fmt.Sprintf("[health-monitor] %s is %s", change.target(), change.To)
	textBody := fmt.Sprintf(
		"Target: %s\n"+
			"Service ID: %s\n"+
			"Variant ID: %s\n"+
			"Status: %s -> %s\n"+
			"Last probe: %s\n"+
			"Checked at: %s",
		change.target(),
		change.ServiceID,
		change.VariantID,
		change.From,
		change.To,
		change.Message,
		change.CheckedAt.UTC().Format(time.RFC3339),
	)
	htmlBody := fmt.Sprintf(
		"<p><b>%s</b> changed from <b>%s</b> to <b>%s</b>.</p><p>Last probe: %s</p><p>Checked at: %s</p>",
		html.EscapeString(change.target()),
		html.EscapeString(change.From),
		html.EscapeString(change.To),
		html.EscapeString(change.Message),
		change.CheckedAt.UTC().Format(time.RFC3339),
	)
	if err := n.sender.SendMail(n.recipients, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("mailNotifier.NotifyStatusChange: %w", err)
	}
	return nil
}

func NewMailNotifier(sender mail.Sender, recipients []string) Notifier {
	return &mailNotifier{
		sender:     sender,
		recipients: recipients,
	}
}

type nopNotifier struct{}

func (nopNotifier) NotifyStatusChange(context.Context, StatusChange) error {
	return nil
}

func NewNopNotifier() Notifier {
	return nopNotifier{}
}

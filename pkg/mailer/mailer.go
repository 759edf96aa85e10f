package mailer

import (
	"context"
	"log"
)

// Sender delivers referral links to fresh signups. Delivery is an external
// collaborator; only the contract lives here.
type Sender interface {
	SendReferralLink(ctx context.Context, email, link string) error
}

// LogSender is a no-op sender for development; replace with a real
// provider (Resend, SES, ...) in production.
type LogSender struct{}

func NewLogSender() *LogSender { return &LogSender{} }

func (s *LogSender) SendReferralLink(ctx context.Context, email, link string) error {
	log.Printf("[mailer] referral link for %s: %s", email, link)
	return nil
}

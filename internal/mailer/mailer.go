package mailer

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

// Mailer sends sign-in links.
type Mailer interface {
	SendSignInLink(ctx context.Context, to, link string) error
}

// ResendMailer delivers mail through Resend. Without an API key it runs in
// dev mode and only logs the link.
type ResendMailer struct {
	client *resend.Client
	from   string
	logger *zap.Logger
}

func NewResendMailer(apiKey, from string, logger *zap.Logger) *ResendMailer {
	m := &ResendMailer{from: from, logger: logger}
	if apiKey != "" {
		m.client = resend.NewClient(apiKey)
	} else {
		logger.Warn("⚠️  RESEND_API_KEY not set, sign-in links will only be logged")
	}
	return m
}

func (m *ResendMailer) SendSignInLink(ctx context.Context, to, link string) error {
	if m.client == nil {
		m.logger.Info("📧 [Dev Mode] sign-in link", zap.String("to", to), zap.String("link", link))
		return nil
	}

	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{to},
		Subject: "Your Reel.fyi sign-in link",
		Html:    signInHTML(link),
	}

	sent, err := m.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	m.logger.Info("📧 sign-in email sent", zap.String("id", sent.Id), zap.String("to", to))
	return nil
}

func signInHTML(link string) string {
	return fmt.Sprintf(`
		<div style="font-family: sans-serif; max-width: 480px; margin: 0 auto; padding: 24px;">
			<h2 style="color: #333;">Welcome to Reel.fyi!</h2>
			<p>Networking magic for job seekers. Click the button below to open your dashboard:</p>
			<a href="%s" style="display: inline-block; background: #7e22ce; color: white; padding: 12px 24px; border-radius: 8px; text-decoration: none; font-weight: 600;">
				Open Dashboard
			</a>
			<p style="color: #888; font-size: 14px; margin-top: 16px;">
				This link expires in 15 minutes and can only be used once.
			</p>
			<p style="color: #aaa; font-size: 12px;">
				If you didn't request this, you can safely ignore this email.
			</p>
		</div>
	`, link)
}

package verification

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"bzmarket.com/app/internal/mailer"
	"bzmarket.com/app/internal/sms"
)

// EmailSender delivers verification codes over SMTP.
type EmailSender struct {
	Mailer   mailer.Service
	From     string
	FromName string
}

func (s *EmailSender) SendCode(ctx context.Context, target, code string, ttl time.Duration) (string, error) {
	minutes := int(ttl.Minutes())
	err := s.Mailer.Send(ctx, mailer.Email{
		FromName: s.FromName,
		From:     s.From,
		To:       []string{target},
		Subject:  "Votre code de vérification BZMarket",
		TextBody: fmt.Sprintf(
			"Votre code de vérification est : %s\r\n\r\nCe code expire dans %d minutes. Si vous n'êtes pas à l'origine de cette demande, ignorez ce message.\r\n",
			code, minutes),
		HTMLBody: fmt.Sprintf(
			`<p>Votre code de vérification est&nbsp;: <strong style="font-size:1.4em;letter-spacing:2px">%s</strong></p><p>Ce code expire dans %d minutes. Si vous n'êtes pas à l'origine de cette demande, ignorez ce message.</p>`,
			code, minutes),
	})
	if err != nil {
		return "", err
	}
	// SMTP gives no provider id; none recorded.
	return "", nil
}

// SMSSender delivers verification codes through the SMS gateway.
type SMSSender struct {
	Provider sms.Provider
}

func (s *SMSSender) SendCode(ctx context.Context, target, code string, ttl time.Duration) (string, error) {
	msg := fmt.Sprintf("BZMarket : votre code est %s (valable %d min).", code, int(ttl.Minutes()))
	return s.Provider.Send(ctx, target, msg, uuid.NewString())
}

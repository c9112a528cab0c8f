package verification

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bzmarket.com/app/internal/mailer"
	"bzmarket.com/app/internal/sms"
)

func TestEmailSenderSendCode(t *testing.T) {
	mock := &mailer.Mock{}
	s := &EmailSender{Mailer: mock, From: "no-reply@bzmarket.local", FromName: "BZMarket"}

	_, err := s.SendCode(context.Background(), "client@example.com", "493021", 10*time.Minute)
	require.NoError(t, err)
	require.Len(t, mock.Sent, 1)

	e := mock.Sent[0]
	assert.Equal(t, []string{"client@example.com"}, e.To)
	assert.Contains(t, e.TextBody, "493021")
	assert.Contains(t, e.TextBody, "10 minutes")
	assert.Contains(t, e.HTMLBody, "493021")
}

func TestSMSSenderSendCode(t *testing.T) {
	mock := &sms.Mock{}
	s := &SMSSender{Provider: mock}

	id, err := s.SendCode(context.Background(), "+22670000001", "493021", 10*time.Minute)
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	require.Len(t, mock.Sent, 1)

	assert.Equal(t, "+22670000001", mock.Sent[0].Phone)
	assert.Contains(t, mock.Sent[0].Message, "493021")
	assert.NotEmpty(t, mock.Sent[0].IdempotencyKey)
}

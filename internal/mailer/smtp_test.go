package mailer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMessageMultipart(t *testing.T) {
	raw, err := buildMessage(Email{
		FromName: "BZMarket",
		From:     "no-reply@bzmarket.local",
		To:       []string{"client@example.com"},
		Subject:  "Votre code de vérification",
		TextBody: "Code : 123456",
		HTMLBody: "<p>Code : 123456</p>",
	}, "bzmarket.local")
	require.NoError(t, err)

	assert.Contains(t, raw, "To: client@example.com\r\n")
	assert.Contains(t, raw, "MIME-Version: 1.0\r\n")
	assert.Contains(t, raw, "multipart/alternative")
	assert.Contains(t, raw, "Code : 123456")
	assert.Contains(t, raw, "<p>Code : 123456</p>")
	assert.Contains(t, raw, "Message-ID: <")
	// sujet accentué encodé RFC 2047
	assert.Contains(t, raw, "Subject: =?utf-8?q?")
}

func TestBuildMessageTextOnly(t *testing.T) {
	raw, err := buildMessage(Email{
		From:     "no-reply@bzmarket.local",
		To:       []string{"a@b.c"},
		Subject:  "Bonjour",
		TextBody: "corps du message\n",
	}, "bzmarket.local")
	require.NoError(t, err)

	assert.Contains(t, raw, "Content-Type: text/plain; charset=UTF-8\r\n")
	assert.False(t, strings.Contains(raw, "multipart"))
}

func TestBuildMessageValidation(t *testing.T) {
	_, err := buildMessage(Email{From: "x@y.z", Subject: "s", TextBody: "b"}, "d")
	assert.Error(t, err, "recipient required")

	_, err = buildMessage(Email{To: []string{"a@b.c"}, Subject: "s", TextBody: "b"}, "d")
	assert.Error(t, err, "from required")

	_, err = buildMessage(Email{From: "x@y.z", To: []string{"a@b.c"}, TextBody: "b"}, "d")
	assert.Error(t, err, "subject required")

	_, err = buildMessage(Email{From: "x@y.z", To: []string{"a@b.c"}, Subject: "s"}, "d")
	assert.Error(t, err, "body required")
}

// Package sms abstracts the outbound SMS gateway. Production wires a real
// provider (Orange, MTN aggregators); tests and dev use the Mock.
package sms

import "context"

type Provider interface {
	// Send delivers message to phone (E.164). idempotencyKey dedupes retries
	// at the gateway; returns the provider's message id.
	Send(ctx context.Context, phone, message, idempotencyKey string) (string, error)
}

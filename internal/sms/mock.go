package sms

import (
	"context"
	"fmt"
	"sync"
)

type MockMessage struct {
	Phone          string
	Message        string
	IdempotencyKey string
}

// Mock records messages instead of sending them.
type Mock struct {
	mu   sync.Mutex
	Sent []MockMessage
	Err  error
}

func (m *Mock) Send(_ context.Context, phone, message, idempotencyKey string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return "", m.Err
	}
	m.Sent = append(m.Sent, MockMessage{Phone: phone, Message: message, IdempotencyKey: idempotencyKey})
	return fmt.Sprintf("mock-%d", len(m.Sent)), nil
}

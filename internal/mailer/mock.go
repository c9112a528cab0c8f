package mailer

import (
	"context"
	"sync"
)

// Mock collects sent mail in memory. Used in tests and as the dev fallback
// when no SMTP host is reachable.
type Mock struct {
	mu   sync.Mutex
	Sent []Email
	Err  error
}

func (m *Mock) Send(_ context.Context, e Email) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sent = append(m.Sent, e)
	return m.Err
}

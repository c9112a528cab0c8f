package verification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var t0 = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

func TestCheckSendNoHistory(t *testing.T) {
	p := DefaultPolicy()
	assert.NoError(t, p.CheckSend(nil, t0))
}

func TestCheckSendExpiredWindow(t *testing.T) {
	p := DefaultPolicy()
	rl := &RateLimit{
		AttemptCount:  3,
		LastAttemptAt: t0.Add(-10 * time.Minute),
		ExpiresAt:     t0.Add(-5 * time.Minute),
	}
	assert.NoError(t, p.CheckSend(rl, t0))
}

func TestCheckSendCooldown(t *testing.T) {
	p := DefaultPolicy()
	rl := &RateLimit{
		AttemptCount:  1,
		LastAttemptAt: t0.Add(-30 * time.Second),
		ExpiresAt:     t0.Add(4 * time.Minute),
	}
	assert.ErrorIs(t, p.CheckSend(rl, t0), ErrCooldown)

	// après le délai de 60s, renvoi autorisé
	assert.NoError(t, p.CheckSend(rl, t0.Add(40*time.Second)))
}

func TestCheckSendRateLimited(t *testing.T) {
	p := DefaultPolicy()
	rl := &RateLimit{
		AttemptCount:  3,
		LastAttemptAt: t0.Add(-2 * time.Minute),
		ExpiresAt:     t0.Add(3 * time.Minute),
	}
	assert.ErrorIs(t, p.CheckSend(rl, t0), ErrRateLimited)
}

func TestCheckConfirm(t *testing.T) {
	p := DefaultPolicy()
	base := Verification{
		Attempts:    0,
		MaxAttempts: 3,
		ExpiresAt:   t0.Add(10 * time.Minute),
	}

	t.Run("ok", func(t *testing.T) {
		v := base
		assert.NoError(t, p.CheckConfirm(&v, t0))
	})

	t.Run("expired", func(t *testing.T) {
		v := base
		v.ExpiresAt = t0.Add(-time.Second)
		assert.ErrorIs(t, p.CheckConfirm(&v, t0), ErrInvalidCode)
	})

	t.Run("already verified", func(t *testing.T) {
		v := base
		at := t0.Add(-time.Minute)
		v.VerifiedAt = &at
		assert.ErrorIs(t, p.CheckConfirm(&v, t0), ErrInvalidCode)
	})

	t.Run("blocked after max attempts", func(t *testing.T) {
		v := base
		v.Attempts = 3
		assert.ErrorIs(t, p.CheckConfirm(&v, t0), ErrBlocked)
	})

	t.Run("nil record", func(t *testing.T) {
		assert.ErrorIs(t, p.CheckConfirm(nil, t0), ErrInvalidCode)
	})
}

func TestGenerateOTP(t *testing.T) {
	for i := 0; i < 20; i++ {
		code, err := GenerateOTP()
		assert.NoError(t, err)
		assert.Len(t, code, 6)
		for _, r := range code {
			assert.True(t, r >= '0' && r <= '9')
		}
	}
}

func TestHashCodeDeterministic(t *testing.T) {
	assert.Equal(t, hashCode("123456"), hashCode("123456"))
	assert.NotEqual(t, hashCode("123456"), hashCode("123457"))
	assert.Len(t, hashCode("123456"), 64)
}

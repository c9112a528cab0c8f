package verification

import (
	"errors"
	"time"
)

var (
	ErrCooldown    = errors.New("resend cooldown active")
	ErrRateLimited = errors.New("too many verification requests")
	ErrBlocked     = errors.New("too many failed attempts")
	ErrInvalidCode = errors.New("invalid or expired verification code")
)

// Policy groups the throttling constants for one verification flow. A single
// policy serves client and vendor accounts alike.
type Policy struct {
	MaxSends       int           // envois max dans SendWindow
	SendWindow     time.Duration // fenêtre glissante des envois
	ResendCooldown time.Duration // délai minimum entre deux envois
	MaxAttempts    int           // essais de code avant blocage
	CodeTTL        time.Duration // durée de vie du code
}

func DefaultPolicy() Policy {
	return Policy{
		MaxSends:       3,
		SendWindow:     5 * time.Minute,
		ResendCooldown: 60 * time.Second,
		MaxAttempts:    3,
		CodeTTL:        10 * time.Minute,
	}
}

// CheckSend decides whether a new code may be sent given the current rate
// limit row (nil means no prior sends in the window).
func (p Policy) CheckSend(rl *RateLimit, now time.Time) error {
	if rl == nil || !rl.ExpiresAt.After(now) {
		return nil
	}
	if now.Sub(rl.LastAttemptAt) < p.ResendCooldown {
		return ErrCooldown
	}
	if rl.AttemptCount >= p.MaxSends {
		return ErrRateLimited
	}
	return nil
}

// CheckConfirm decides whether a code confirmation may proceed against the
// stored verification record.
func (p Policy) CheckConfirm(v *Verification, now time.Time) error {
	if v == nil {
		return ErrInvalidCode
	}
	if v.VerifiedAt != nil {
		return ErrInvalidCode
	}
	if !v.ExpiresAt.After(now) {
		return ErrInvalidCode
	}
	if v.Attempts >= v.MaxAttempts {
		return ErrBlocked
	}
	return nil
}

package verification

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// CodeSender delivers a one-time code over one channel. Implemented by the
// SMS provider adapter and the mail outbox adapter.
type CodeSender interface {
	SendCode(ctx context.Context, target, code string, ttl time.Duration) (providerMsgID string, err error)
}

// Service runs the OTP flows for e-mail and phone verification. One instance
// serves client and vendor accounts; the flows are identical.
type Service struct {
	db      *gorm.DB
	policy  Policy
	senders map[string]CodeSender
	now     func() time.Time
}

func NewService(db *gorm.DB, policy Policy) *Service {
	return &Service{
		db:      db,
		policy:  policy,
		senders: map[string]CodeSender{},
		now:     time.Now,
	}
}

func (s *Service) RegisterSender(channel string, sender CodeSender) {
	s.senders[channel] = sender
}

// Start generates a code, stores its hash and sends it to the target.
// Previous pending codes for the same channel are invalidated.
func (s *Service) Start(ctx context.Context, userID, channel, target string) error {
	sender, ok := s.senders[channel]
	if !ok {
		return errors.New("verification: no sender for channel " + channel)
	}

	now := s.now()
	action := "send_" + channel

	var rl RateLimit
	var rlp *RateLimit
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND action = ?", userID, action).
		First(&rl).Error
	switch {
	case err == nil:
		rlp = &rl
	case errors.Is(err, gorm.ErrRecordNotFound):
	default:
		return err
	}

	if err := s.policy.CheckSend(rlp, now); err != nil {
		return err
	}

	code, err := GenerateOTP()
	if err != nil {
		return err
	}

	// invalide les codes précédents non confirmés
	_ = s.db.WithContext(ctx).
		Where("user_id = ? AND channel = ? AND verified_at IS NULL", userID, channel).
		Delete(&Verification{}).Error

	v := Verification{
		UserID:      userID,
		Channel:     channel,
		Target:      target,
		CodeHash:    hashCode(code),
		Attempts:    0,
		MaxAttempts: s.policy.MaxAttempts,
		ExpiresAt:   now.Add(s.policy.CodeTTL),
		CreatedAt:   now,
	}
	if err := s.db.WithContext(ctx).Create(&v).Error; err != nil {
		return err
	}

	providerMsgID, sendErr := sender.SendCode(ctx, target, code, s.policy.CodeTTL)

	logEntry := SentLog{
		UserID:    userID,
		Channel:   channel,
		Target:    target,
		Status:    "sent",
		CreatedAt: now,
	}
	if sendErr != nil {
		logEntry.Status = "failed"
		msg := sendErr.Error()
		logEntry.ErrorMessage = &msg
	} else {
		logEntry.ProviderMessageID = &providerMsgID
		sentAt := s.now()
		logEntry.SentAt = &sentAt
	}
	_ = s.db.WithContext(ctx).Create(&logEntry).Error

	s.recordSend(ctx, userID, action, now)

	return sendErr
}

// Confirm checks a submitted code. Wrong codes burn an attempt; once
// MaxAttempts is reached the record is blocked until it expires and a new
// code must be requested.
func (s *Service) Confirm(ctx context.Context, userID, channel, code string) (target string, err error) {
	now := s.now()

	var v Verification
	err = s.db.WithContext(ctx).
		Where("user_id = ? AND channel = ? AND verified_at IS NULL", userID, channel).
		Order("created_at DESC").
		First(&v).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCode
		}
		return "", err
	}

	if err := s.policy.CheckConfirm(&v, now); err != nil {
		return "", err
	}

	if v.CodeHash != hashCode(code) {
		// best effort: un échec consomme un essai
		_ = s.db.WithContext(ctx).Model(&Verification{}).
			Where("id = ?", v.ID).
			Update("attempts", gorm.Expr("attempts + 1")).Error
		if v.Attempts+1 >= v.MaxAttempts {
			return "", ErrBlocked
		}
		return "", ErrInvalidCode
	}

	if err := s.db.WithContext(ctx).Model(&Verification{}).
		Where("id = ?", v.ID).
		Update("verified_at", now).Error; err != nil {
		return "", err
	}

	return v.Target, nil
}

// History returns the recent delivery log for one user.
func (s *Service) History(ctx context.Context, userID string, limit int) ([]SentLog, error) {
	if limit < 1 || limit > 50 {
		limit = 10
	}
	var logs []SentLog
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}

func (s *Service) recordSend(ctx context.Context, userID, action string, now time.Time) {
	expiresAt := now.Add(s.policy.SendWindow)

	// la fenêtre expirée repart de zéro
	res := s.db.WithContext(ctx).Model(&RateLimit{}).
		Where("user_id = ? AND action = ? AND expires_at > ?", userID, action, now).
		Updates(map[string]any{
			"attempt_count":   gorm.Expr("attempt_count + 1"),
			"last_attempt_at": now,
		})
	if res.Error == nil && res.RowsAffected > 0 {
		return
	}

	_ = s.db.WithContext(ctx).
		Where("user_id = ? AND action = ?", userID, action).
		Delete(&RateLimit{}).Error
	_ = s.db.WithContext(ctx).Create(&RateLimit{
		UserID:        userID,
		Action:        action,
		AttemptCount:  1,
		LastAttemptAt: now,
		ExpiresAt:     expiresAt,
		CreatedAt:     now,
	}).Error
}

package orders

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrInvalidTransition = errors.New("invalid order status transition")
	ErrNotActionable     = errors.New("order not actionable")
)

type TransitionInput struct {
	OrderID     string
	ActorUserID string
	Action      string // pay|ship|deliver|cancel
	Note        string
}

// Transition moves an order along its lifecycle under a row lock, with an
// optimistic status guard and an audit event.
func (s *Service) Transition(ctx context.Context, in TransitionInput) error {
	if in.OrderID == "" || in.ActorUserID == "" || in.Action == "" {
		return ErrNotActionable
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var o Order

		if err := tx.WithContext(ctx).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&o, "id = ?", in.OrderID).Error; err != nil {
			return err
		}

		from := o.Status
		to, err := nextStatus(from, in.Action)
		if err != nil {
			return err
		}

		now := time.Now()
		updates := map[string]any{
			"status":     to,
			"updated_at": now,
		}
		if to == StatusPaid && o.PaidAt == nil {
			updates["paid_at"] = now
		}

		res := tx.WithContext(ctx).
			Model(&Order{}).
			Where("id = ? AND status = ?", o.ID, from). // optimistic guard
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrInvalidTransition
		}

		var notePtr *string
		if n := strings.TrimSpace(in.Note); n != "" {
			notePtr = &n
		}

		ev := OrderEvent{
			ID:          uuid.NewString(),
			OrderID:     o.ID,
			ActorUserID: in.ActorUserID,
			Action:      in.Action,
			FromStatus:  from,
			ToStatus:    to,
			Note:        notePtr,
			CreatedAt:   now,
		}
		return tx.WithContext(ctx).Create(&ev).Error
	})
}

func nextStatus(from, action string) (string, error) {
	switch action {
	case "pay":
		if from == StatusPending {
			return StatusPaid, nil
		}
	case "ship":
		if from == StatusPaid {
			return StatusShipped, nil
		}
	case "deliver":
		if from == StatusShipped {
			return StatusDelivered, nil
		}
	case "cancel":
		if from == StatusPending || from == StatusPaid {
			return StatusCancelled, nil
		}
	}
	return "", ErrInvalidTransition
}

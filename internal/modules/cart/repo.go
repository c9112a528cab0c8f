package cart

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

func (r *Repo) GetOrCreateUserCart(ctx context.Context, userID string) (Cart, error) {
	var c Cart
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, "open").
		Order("updated_at DESC").
		First(&c).Error
	if err == nil {
		return c, nil
	}
	if err != gorm.ErrRecordNotFound {
		return Cart{}, err
	}

	now := time.Now()
	c = Cart{ID: uuid.NewString(), UserID: &userID, Status: "open", CreatedAt: now, UpdatedAt: now}
	if err := r.db.WithContext(ctx).Create(&c).Error; err != nil {
		return Cart{}, err
	}
	return c, nil
}

// AddItem upserts: an existing (cart, variant) row gets its quantity bumped.
func (r *Repo) AddItem(ctx context.Context, cartID, variantID string, qty int) error {
	if qty < 1 {
		qty = 1
	}
	now := time.Now()
	item := CartItem{
		ID:        uuid.NewString(),
		CartID:    cartID,
		VariantID: variantID,
		Quantity:  qty,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "cart_id"}, {Name: "variant_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"quantity":   gorm.Expr("quantity + ?", qty),
				"updated_at": now,
			}),
		}).
		Create(&item).Error
}

func (r *Repo) UpdateItemQty(ctx context.Context, cartID, variantID string, qty int) error {
	if qty <= 0 {
		return r.db.WithContext(ctx).
			Where("cart_id = ? AND variant_id = ?", cartID, variantID).
			Delete(&CartItem{}).Error
	}
	return r.db.WithContext(ctx).Model(&CartItem{}).
		Where("cart_id = ? AND variant_id = ?", cartID, variantID).
		Updates(map[string]any{"quantity": qty, "updated_at": time.Now()}).Error
}

func (r *Repo) RemoveItem(ctx context.Context, cartID, variantID string) error {
	return r.db.WithContext(ctx).
		Where("cart_id = ? AND variant_id = ?", cartID, variantID).
		Delete(&CartItem{}).Error
}

// ClearCart runs on tx so checkout can fold it into the order transaction.
func (r *Repo) ClearCart(ctx context.Context, tx *gorm.DB, cartID string) error {
	return tx.WithContext(ctx).Where("cart_id = ?", cartID).Delete(&CartItem{}).Error
}

func (r *Repo) MarkConverted(ctx context.Context, tx *gorm.DB, cartID string) error {
	return tx.WithContext(ctx).Model(&Cart{}).
		Where("id = ?", cartID).
		Updates(map[string]any{"status": "converted", "updated_at": time.Now()}).Error
}

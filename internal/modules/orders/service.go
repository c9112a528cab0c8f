package orders

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bzmarket.com/app/internal/modules/cart"
	"bzmarket.com/app/internal/modules/checkout"
)

var (
	ErrEmptyCart = errors.New("cart is empty")
)

type Service struct {
	db    *gorm.DB
	repo  *Repo
	carts *cart.Repo
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db, repo: NewRepo(db), carts: cart.NewRepo(db)}
}

func (s *Service) Repo() *Repo { return s.repo }

type ShippingInfo struct {
	Name    string
	Phone   string
	Address string
}

type checkoutRow struct {
	VariantID   string `gorm:"column:variant_id"`
	Qty         int    `gorm:"column:qty"`
	PriceCents  int    `gorm:"column:price_cents"`
	Currency    string `gorm:"column:currency"`
	SKU         string `gorm:"column:sku"`
	OptionsJSON []byte `gorm:"column:options_json"`
	ProductName string `gorm:"column:product_name"`
	VendorID    string `gorm:"column:vendor_id"`
	CartID      string `gorm:"column:cart_id"`
}

// PlaceOrder converts the user's open cart into an order: stock is deducted
// under row locks, items are snapshotted, the cart marked converted — all in
// one transaction, retried on deadlock.
func (s *Service) PlaceOrder(ctx context.Context, userID string, ship ShippingInfo) (Order, error) {
	const q = `
SELECT
  ci.variant_id   AS variant_id,
  ci.quantity     AS qty,
  v.price_cents   AS price_cents,
  v.currency      AS currency,
  v.sku           AS sku,
  v.options_json  AS options_json,
  p.name          AS product_name,
  p.vendor_id     AS vendor_id,
  c.id            AS cart_id
FROM carts c
JOIN cart_items ci ON ci.cart_id = c.id
JOIN product_variants v ON v.id = ci.variant_id
JOIN products p ON p.id = v.product_id
WHERE c.user_id = ? AND c.status = 'open'
ORDER BY ci.created_at ASC;
`
	var rows []checkoutRow
	if err := s.db.WithContext(ctx).Raw(q, userID).Scan(&rows).Error; err != nil {
		return Order{}, err
	}
	if len(rows) == 0 {
		return Order{}, ErrEmptyCart
	}

	lines := make([]checkout.StockLine, 0, len(rows))
	total := 0
	currency := ""
	for _, r := range rows {
		lines = append(lines, checkout.StockLine{VariantID: r.VariantID, Qty: r.Qty})
		total += r.PriceCents * r.Qty
		if currency == "" {
			currency = r.Currency
		}
	}
	if currency == "" {
		currency = "XOF"
	}

	now := time.Now()
	order := Order{
		ID:              uuid.NewString(),
		UserID:          userID,
		Status:          StatusPending,
		TotalCents:      total,
		Currency:        currency,
		ShippingName:    strings.TrimSpace(ship.Name),
		ShippingPhone:   strings.TrimSpace(ship.Phone),
		ShippingAddress: strings.TrimSpace(ship.Address),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	err := checkout.WithTxRetry(ctx, s.db, 3, func(tx *gorm.DB) error {
		if err := checkout.DeductStockInTx(ctx, tx, lines); err != nil {
			return err
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		for _, r := range rows {
			item := OrderItem{
				ID:             uuid.NewString(),
				OrderID:        order.ID,
				VendorID:       r.VendorID,
				VariantID:      r.VariantID,
				ProductName:    r.ProductName,
				SKU:            r.SKU,
				OptionsJSON:    r.OptionsJSON,
				UnitPriceCents: r.PriceCents,
				Quantity:       r.Qty,
				LineTotalCents: r.PriceCents * r.Qty,
				CreatedAt:      now,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}

		cartID := rows[0].CartID
		if err := s.carts.ClearCart(ctx, tx, cartID); err != nil {
			return err
		}
		return s.carts.MarkConverted(ctx, tx, cartID)
	})
	if err != nil {
		return Order{}, err
	}

	return s.repo.GetWithItems(ctx, order.ID)
}

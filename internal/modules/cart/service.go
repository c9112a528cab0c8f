package cart

import (
	"context"
	"errors"
	"sort"

	"gorm.io/gorm"

	"bzmarket.com/app/pkg/view"
)

type Service struct {
	db   *gorm.DB
	repo *Repo
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db, repo: NewRepo(db)}
}

func (s *Service) Repo() *Repo { return s.repo }

// Line is one requested cart entry before it is checked against the catalog
// (guest cookie carts and DB carts both reduce to lines).
type Line struct {
	VariantID string
	Qty       int
}

type cartRow struct {
	VariantID   string `gorm:"column:variant_id"`
	Qty         int    `gorm:"column:qty"`
	PriceCents  int    `gorm:"column:price_cents"`
	Currency    string `gorm:"column:currency"`
	Stock       int    `gorm:"column:stock"`
	IsAvailable bool   `gorm:"column:is_available"`
	ProductName string `gorm:"column:product_name"`
	ProductSlug string `gorm:"column:product_slug"`
	ImageURL    string `gorm:"column:image_url"`
}

// BuildCartPageForUser renders the user's open DB cart.
func (s *Service) BuildCartPageForUser(ctx context.Context, userID string) (view.CartPage, error) {
	if userID == "" {
		return view.CartPage{}, errors.New("missing userID")
	}

	var cartID string
	err := s.db.WithContext(ctx).
		Model(&Cart{}).
		Where("user_id = ? AND status = ?", userID, "open").
		Order("updated_at DESC").
		Limit(1).
		Pluck("id", &cartID).Error
	if err != nil {
		return view.CartPage{}, err
	}
	if cartID == "" {
		return view.CartPage{Items: []view.CartItem{}}, nil
	}

	const q = `
SELECT
  ci.variant_id  AS variant_id,
  ci.quantity    AS qty,
  v.price_cents  AS price_cents,
  v.currency     AS currency,
  v.stock        AS stock,
  v.is_available AS is_available,
  p.name         AS product_name,
  p.slug         AS product_slug,
  COALESCE(v.image_url, '') AS image_url
FROM cart_items ci
JOIN product_variants v ON v.id = ci.variant_id
JOIN products p ON p.id = v.product_id
WHERE ci.cart_id = ?
ORDER BY ci.created_at ASC;
`
	var rows []cartRow
	if err := s.db.WithContext(ctx).Raw(q, cartID).Scan(&rows).Error; err != nil {
		return view.CartPage{}, err
	}
	return buildCartVM(rows), nil
}

// BuildCartPageFromLines renders a guest cart carried in the signed cookie.
// Variants that no longer exist are silently dropped.
func (s *Service) BuildCartPageFromLines(ctx context.Context, lines []Line) (view.CartPage, error) {
	qtyByID := make(map[string]int, len(lines))
	ids := make([]string, 0, len(lines))
	for _, ln := range lines {
		if ln.VariantID == "" || ln.Qty <= 0 {
			continue
		}
		if _, ok := qtyByID[ln.VariantID]; !ok {
			ids = append(ids, ln.VariantID)
		}
		qtyByID[ln.VariantID] += ln.Qty
	}
	if len(ids) == 0 {
		return view.CartPage{Items: []view.CartItem{}}, nil
	}

	// ordre déterministe pour la clause IN
	sort.Strings(ids)

	var rows []cartRow
	if err := s.db.WithContext(ctx).
		Table("product_variants AS v").
		Select(`v.id AS variant_id,
			0 AS qty,
			v.price_cents AS price_cents,
			v.currency AS currency,
			v.stock AS stock,
			v.is_available AS is_available,
			p.name AS product_name,
			p.slug AS product_slug,
			COALESCE(v.image_url, '') AS image_url`).
		Joins("JOIN products p ON p.id = v.product_id").
		Where("v.id IN ?", ids).
		Scan(&rows).Error; err != nil {
		return view.CartPage{}, err
	}

	infoByID := make(map[string]cartRow, len(rows))
	for _, r := range rows {
		infoByID[r.VariantID] = r
	}

	final := make([]cartRow, 0, len(lines))
	seen := make(map[string]struct{}, len(lines))
	for _, ln := range lines {
		if ln.VariantID == "" || ln.Qty <= 0 {
			continue
		}
		if _, dup := seen[ln.VariantID]; dup {
			continue
		}
		seen[ln.VariantID] = struct{}{}
		r, ok := infoByID[ln.VariantID]
		if !ok {
			continue // variante supprimée entre-temps
		}
		r.Qty = qtyByID[ln.VariantID]
		final = append(final, r)
	}

	return buildCartVM(final), nil
}

// MergeLines folds a guest cookie cart into the user's DB cart at login.
func (s *Service) MergeLines(ctx context.Context, userID string, lines []Line) error {
	if len(lines) == 0 {
		return nil
	}
	c, err := s.repo.GetOrCreateUserCart(ctx, userID)
	if err != nil {
		return err
	}
	for _, ln := range lines {
		if ln.VariantID == "" || ln.Qty <= 0 {
			continue
		}
		if err := s.repo.AddItem(ctx, c.ID, ln.VariantID, ln.Qty); err != nil {
			return err
		}
	}
	return nil
}

func buildCartVM(rows []cartRow) view.CartPage {
	vm := view.CartPage{Items: make([]view.CartItem, 0, len(rows))}

	subtotal := 0
	count := 0
	currency := ""

	for _, r := range rows {
		if r.Qty <= 0 {
			continue
		}
		if currency == "" {
			currency = r.Currency
		}

		qty, clamped := ClampToStock(r.Qty, r.Stock, r.IsAvailable)
		line := r.PriceCents * qty
		subtotal += line
		count += qty

		vm.Items = append(vm.Items, view.CartItem{
			ProductName:    r.ProductName,
			ProductSlug:    r.ProductSlug,
			ImageURL:       r.ImageURL,
			VariantID:      r.VariantID,
			Qty:            qty,
			Clamped:        clamped,
			StockLeft:      r.Stock,
			UnitPriceCents: r.PriceCents,
			LineTotalCents: line,
			UnitPrice:      view.MoneyFromCents(r.PriceCents, r.Currency),
			LineTotal:      view.MoneyFromCents(line, r.Currency),
		})
	}

	if currency == "" {
		currency = "XOF"
	}
	vm.Currency = currency
	vm.Count = count
	vm.SubtotalCents = subtotal
	vm.Subtotal = view.MoneyFromCents(subtotal, currency)
	return vm
}

// ClampToStock bounds a requested quantity by what the variant can deliver.
// Unavailable variants clamp to zero. The second return reports whether the
// request was reduced.
func ClampToStock(requested, stock int, available bool) (int, bool) {
	if !available || stock <= 0 {
		return 0, requested > 0
	}
	if requested > stock {
		return stock, true
	}
	return requested, false
}

package products

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bzmarket.com/app/internal/modules/catalog"
	"bzmarket.com/app/internal/shared/apperr"
	"bzmarket.com/app/internal/shared/slug"
)

type Service struct {
	db       *gorm.DB
	repo     *Repo
	resolver catalog.Resolver
}

func NewService(db *gorm.DB, resolver catalog.Resolver) *Service {
	return &Service{db: db, repo: NewRepo(db), resolver: resolver}
}

func (s *Service) Repo() *Repo { return s.repo }

// CreateInput is the vendor product-creation payload. Options and the batch
// defaults feed the catalog variant generator; Attributes are validated
// against the category template.
type CreateInput struct {
	CategoryCode   string
	Name           string
	Description    string
	Attributes     map[string]string
	Options        []catalog.VariantOption
	BaseSKU        string
	BasePriceCents int
	BaseStock      int
	Currency       string
	Publish        bool
}

// CreateWithVariants resolves the category template, validates attributes and
// variant options, generates the variant batch and persists everything in one
// transaction.
//
// A missing template is not an error: the product is created with no
// attribute schema and, unless options were supplied, no variants.
func (s *Service) CreateWithVariants(ctx context.Context, vendorID string, in CreateInput) (Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Product{}, apperr.InvalidErr("Le nom du produit est requis.", map[string]string{"name": "Ce champ est obligatoire."})
	}

	tpl, err := s.resolver.ResolveTemplate(ctx, in.CategoryCode)
	switch {
	case err == nil:
	case errors.Is(err, catalog.ErrTemplateNotFound):
		tpl = catalog.Template{Code: in.CategoryCode, HasVariants: false}
	default:
		return Product{}, apperr.Wrap(err)
	}

	attrs := KnownAttributes(tpl, in.Attributes)
	if fieldErrs := ValidateAttributes(tpl, attrs); len(fieldErrs) > 0 {
		return Product{}, apperr.InvalidErr("Certains champs sont invalides.", fieldErrs)
	}

	var variants []catalog.ProductVariant
	if len(in.Options) > 0 {
		res := catalog.ValidateOptions(in.Options)
		if !res.Valid {
			return Product{}, apperr.InvalidErr("Options de variantes invalides.", map[string]string{
				"options": strings.Join(res.Errors, " ; "),
			})
		}
		baseSKU := strings.TrimSpace(in.BaseSKU)
		if baseSKU == "" {
			baseSKU = defaultBaseSKU(name)
		}
		variants = catalog.GenerateVariants(in.Options, catalog.GenerateParams{
			BaseSKU:        baseSKU,
			BasePriceCents: in.BasePriceCents,
			BaseStock:      in.BaseStock,
		})
	}

	attrsJSON, err := json.Marshal(attrs)
	if err != nil {
		return Product{}, apperr.Wrap(err)
	}

	status := "draft"
	if in.Publish {
		status = "active"
	}
	currency := strings.ToUpper(strings.TrimSpace(in.Currency))
	if currency == "" {
		currency = "XOF"
	}

	now := time.Now()
	p := Product{
		ID:             uuid.NewString(),
		VendorID:       vendorID,
		CategoryCode:   in.CategoryCode,
		Name:           name,
		Slug:           slug.FromName(name),
		Description:    strings.TrimSpace(in.Description),
		AttributesJSON: attrsJSON,
		Status:         status,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&p).Error; err != nil {
			return err
		}
		for _, v := range variants {
			optJSON, err := json.Marshal(v.Options)
			if err != nil {
				return err
			}
			row := Variant{
				ID:             v.ID,
				ProductID:      p.ID,
				SKU:            v.SKU,
				OptionsJSON:    optJSON,
				PriceCents:     v.PriceCents,
				CompareAtCents: v.CompareAtCents,
				Currency:       currency,
				Stock:          v.Stock,
				ImageURL:       v.ImageURL,
				IsAvailable:    v.IsAvailable,
				Position:       v.Position,
				CreatedAt:      now,
				UpdatedAt:      now,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if IsDuplicateKey(err) {
			return Product{}, apperr.ConflictErr("Un produit avec ce nom existe déjà dans votre boutique.")
		}
		return Product{}, apperr.Wrap(err)
	}

	return s.repo.GetOwned(ctx, vendorID, p.ID)
}

// BulkEditInput selects a bulk variant operation. Scope "all" applies Field
// to every variant, "group" to variants matching GroupOption/GroupValue,
// "toggle" flips availability with all-true semantics.
type BulkEditInput struct {
	Scope       string // all|group|toggle
	Field       catalog.VariantField
	Value       any
	GroupOption string
	GroupValue  string
}

// variantBatch maps stored rows to the in-memory form the bulk editor works
// on. A row whose options_json does not decode stops the whole batch; editing
// on top of silently-empty options would mis-target group operations.
func variantBatch(rows []Variant) ([]catalog.ProductVariant, error) {
	batch := make([]catalog.ProductVariant, 0, len(rows))
	for _, row := range rows {
		var opts map[string]string
		if len(row.OptionsJSON) > 0 {
			if err := json.Unmarshal(row.OptionsJSON, &opts); err != nil {
				return nil, fmt.Errorf("variant %s: options corrompues: %w", row.ID, err)
			}
		}
		batch = append(batch, catalog.ProductVariant{
			ID:             row.ID,
			SKU:            row.SKU,
			Options:        opts,
			PriceCents:     row.PriceCents,
			CompareAtCents: row.CompareAtCents,
			Stock:          row.Stock,
			ImageURL:       row.ImageURL,
			IsAvailable:    row.IsAvailable,
			Position:       row.Position,
		})
	}
	return batch, nil
}

// BulkEditVariants loads the vendor's variant batch, applies the catalog bulk
// editor in memory and persists only the targeted fields.
func (s *Service) BulkEditVariants(ctx context.Context, vendorID, productID string, in BulkEditInput) ([]Variant, error) {
	p, err := s.repo.GetOwned(ctx, vendorID, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundErr("Produit introuvable.")
		}
		return nil, apperr.Wrap(err)
	}

	batch, err := variantBatch(p.Variants)
	if err != nil {
		return nil, apperr.Wrap(err)
	}

	var edited []catalog.ProductVariant
	switch in.Scope {
	case "all":
		edited = catalog.ApplyToAll(batch, in.Field, in.Value)
	case "group":
		edited = catalog.ApplyToGroup(batch, in.GroupOption, in.GroupValue, in.Field, in.Value)
	case "toggle":
		edited = catalog.ToggleAllAvailability(batch)
	default:
		return nil, apperr.InvalidErr("Opération inconnue.", map[string]string{"scope": "Valeur non autorisée."})
	}

	now := time.Now()
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, v := range edited {
			prev := batch[i]
			if v.PriceCents == prev.PriceCents && v.Stock == prev.Stock && v.IsAvailable == prev.IsAvailable {
				continue
			}
			updates := map[string]any{
				"price_cents":  v.PriceCents,
				"stock":        v.Stock,
				"is_available": v.IsAvailable,
				"updated_at":   now,
			}
			if err := tx.Model(&Variant{}).
				Where("id = ? AND product_id = ?", v.ID, productID).
				Updates(updates).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, apperr.Wrap(err)
	}

	p, err = s.repo.GetOwned(ctx, vendorID, productID)
	if err != nil {
		return nil, apperr.Wrap(err)
	}
	return p.Variants, nil
}

// UpdateVariant edits a single variant's mutable fields.
func (s *Service) UpdateVariant(ctx context.Context, vendorID, productID, variantID string, priceCents, stock int, available bool) error {
	if stock < 0 {
		return apperr.InvalidErr("Le stock ne peut pas être négatif.", map[string]string{"stock": "Valeur non autorisée."})
	}
	if _, err := s.repo.GetOwned(ctx, vendorID, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundErr("Produit introuvable.")
		}
		return apperr.Wrap(err)
	}
	err := s.db.WithContext(ctx).Model(&Variant{}).
		Where("id = ? AND product_id = ?", variantID, productID).
		Updates(map[string]any{
			"price_cents":  priceCents,
			"stock":        stock,
			"is_available": available,
			"updated_at":   time.Now(),
		}).Error
	if err != nil {
		return apperr.Wrap(err)
	}
	return nil
}

// defaultBaseSKU: first three slug letters, uppercased ("tee-shirt" -> "TEE").
func defaultBaseSKU(name string) string {
	s := strings.ToUpper(strings.ReplaceAll(slug.FromName(name), "-", ""))
	if len(s) > 3 {
		s = s[:3]
	}
	if s == "" {
		s = "SKU"
	}
	return s
}

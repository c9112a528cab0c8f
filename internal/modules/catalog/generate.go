package catalog

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// ProductVariant is one purchasable combination of option values. Built in
// bulk by GenerateVariants, edited field-by-field or via the bulk editor,
// then handed whole to the products module for persistence.
type ProductVariant struct {
	ID             string            `json:"id"`
	SKU            string            `json:"sku"`
	Options        map[string]string `json:"options"`
	PriceCents     int               `json:"price_cents"`
	CompareAtCents *int              `json:"compare_at_cents,omitempty"`
	Stock          int               `json:"stock"`
	ImageURL       string            `json:"image_url,omitempty"`
	IsAvailable    bool              `json:"is_available"`
	Position       int               `json:"position"`
}

// GenerateParams carries the per-batch defaults applied to every variant.
type GenerateParams struct {
	BaseSKU        string
	BasePriceCents int
	BaseStock      int
}

// GenerateVariants materializes one ProductVariant per combination of the
// cartesian product of opts. Ordering is first-option-major: the first
// option's values iterate in the outer loop, later options vary fastest.
// Position follows generation order starting at 0.
//
// Input is assumed valid; gate with ValidateOptions first.
func GenerateVariants(opts []VariantOption, p GenerateParams) []ProductVariant {
	combos := combinations(opts)

	out := make([]ProductVariant, 0, len(combos))
	for i, combo := range combos {
		out = append(out, ProductVariant{
			ID:          uuid.NewString(),
			SKU:         generateSKU(p.BaseSKU, opts, combo, i+1),
			Options:     combo,
			PriceCents:  p.BasePriceCents,
			Stock:       p.BaseStock,
			IsAvailable: true,
			Position:    i,
		})
	}
	return out
}

// combinations computes the cartesian product. Zero options yields one empty
// combination.
func combinations(opts []VariantOption) []map[string]string {
	if len(opts) == 0 {
		return []map[string]string{{}}
	}

	first, rest := opts[0], opts[1:]
	tail := combinations(rest)

	out := make([]map[string]string, 0, len(first.Values)*len(tail))
	for _, v := range first.Values {
		for _, t := range tail {
			combo := make(map[string]string, len(t)+1)
			combo[first.Name] = v
			for k, val := range t {
				combo[k] = val
			}
			out = append(out, combo)
		}
	}
	return out
}

// generateSKU builds "BASESKU-XX-YY-NNN": one two-letter fragment per option
// dimension (in the supplied option order) and a zero-padded 1-based sequence
// number. The sequence alone guarantees uniqueness within a batch even when
// two combinations share abbreviated fragments.
func generateSKU(baseSKU string, opts []VariantOption, combo map[string]string, seq int) string {
	parts := make([]string, 0, len(opts)+2)
	parts = append(parts, baseSKU)
	for _, o := range opts {
		parts = append(parts, abbrev(combo[o.Name]))
	}
	parts = append(parts, fmt.Sprintf("%03d", seq))
	return strings.Join(parts, "-")
}

// abbrev keeps the first two characters of the value, whitespace stripped,
// uppercased.
func abbrev(v string) string {
	var b strings.Builder
	n := 0
	for _, r := range v {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
		if n++; n >= 2 {
			break
		}
	}
	return b.String()
}

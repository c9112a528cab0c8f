package handlers

import (
	"encoding/json"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"

	"bzmarket.com/app/internal/modules/products"
	"bzmarket.com/app/pkg/view"
)

func intQuery(c *gin.Context, key string, def, max int) int {
	v := c.Query(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return def
	}
	if max > 0 && n > max {
		return max
	}
	return n
}

func optionsMap(raw []byte) map[string]string {
	if len(raw) == 0 {
		return map[string]string{}
	}
	var m map[string]string
	if err := json.Unmarshal(raw, &m); err != nil {
		return map[string]string{}
	}
	return m
}

func variantView(v products.Variant) view.VariantView {
	return view.VariantView{
		ID:             v.ID,
		SKU:            v.SKU,
		Options:        optionsMap(v.OptionsJSON),
		PriceCents:     v.PriceCents,
		Price:          view.MoneyFromCents(v.PriceCents, v.Currency),
		CompareAtCents: v.CompareAtCents,
		Stock:          v.Stock,
		ImageURL:       v.ImageURL,
		IsAvailable:    v.IsAvailable,
		Position:       v.Position,
	}
}

func productCard(p products.Product) view.ProductCard {
	card := view.ProductCard{
		ID:       p.ID,
		Name:     p.Name,
		Slug:     p.Slug,
		VendorID: p.VendorID,
		Currency: "XOF",
	}
	if len(p.Images) > 0 {
		card.ImageURL = p.Images[0].URL
	}
	for _, v := range p.Variants {
		if !v.IsAvailable {
			continue
		}
		card.Currency = v.Currency
		if card.FromCents == 0 || v.PriceCents < card.FromCents {
			card.FromCents = v.PriceCents
		}
	}
	card.FromPrice = view.MoneyFromCents(card.FromCents, card.Currency)
	return card
}

func productDetail(p products.Product) view.ProductDetailPage {
	out := view.ProductDetailPage{
		ID:          p.ID,
		Name:        p.Name,
		Slug:        p.Slug,
		Description: p.Description,
		Status:      p.Status,
		Currency:    "XOF",
		VendorID:    p.VendorID,
		Attributes:  optionsMap(p.AttributesJSON),
		Variants:    make([]view.VariantView, 0, len(p.Variants)),
		Images:      make([]view.ImageView, 0, len(p.Images)),
	}
	for _, v := range p.Variants {
		out.Currency = v.Currency
		out.Variants = append(out.Variants, variantView(v))
	}
	for _, img := range p.Images {
		out.Images = append(out.Images, view.ImageView{ID: img.ID, URL: img.URL, Position: img.Position})
	}
	out.Dimensions = dimensionsFrom(out.Variants)
	return out
}

// dimensionsFrom reconstructs the option axes from the stored variants,
// preserving first-seen order for names and values.
func dimensionsFrom(variants []view.VariantView) []view.OptionDimension {
	names := []string{}
	valuesByName := map[string][]string{}
	seen := map[string]map[string]bool{}

	for _, v := range variants {
		// itère les clés triées pour un ordre stable au sein d'une variante
		keys := make([]string, 0, len(v.Options))
		for k := range v.Options {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, name := range keys {
			if seen[name] == nil {
				seen[name] = map[string]bool{}
				names = append(names, name)
			}
			val := v.Options[name]
			if !seen[name][val] {
				seen[name][val] = true
				valuesByName[name] = append(valuesByName[name], val)
			}
		}
	}

	out := make([]view.OptionDimension, 0, len(names))
	for _, n := range names {
		out = append(out, view.OptionDimension{Name: n, Values: valuesByName[n]})
	}
	return out
}

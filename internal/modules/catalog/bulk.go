package catalog

// VariantField names the variant fields the bulk editor may overwrite.
type VariantField string

const (
	BulkPrice        VariantField = "price"
	BulkStock        VariantField = "stock"
	BulkAvailability VariantField = "is_available"
)

// ApplyToAll returns a copy of variants with field overwritten on every
// element. Count, Position, SKU and Options are never touched.
func ApplyToAll(variants []ProductVariant, field VariantField, value any) []ProductVariant {
	out := make([]ProductVariant, len(variants))
	for i, v := range variants {
		out[i] = setField(v, field, value)
	}
	return out
}

// ApplyToGroup overwrites field only on variants whose option value along the
// given dimension matches groupValue. Others are copied unchanged.
func ApplyToGroup(variants []ProductVariant, groupOption, groupValue string, field VariantField, value any) []ProductVariant {
	out := make([]ProductVariant, len(variants))
	for i, v := range variants {
		if v.Options[groupOption] == groupValue {
			out[i] = setField(v, field, value)
		} else {
			out[i] = v
		}
	}
	return out
}

// ToggleAllAvailability flips availability in bulk: if every variant is
// available, all become unavailable; otherwise all become available.
func ToggleAllAvailability(variants []ProductVariant) []ProductVariant {
	allOn := true
	for _, v := range variants {
		if !v.IsAvailable {
			allOn = false
			break
		}
	}
	return ApplyToAll(variants, BulkAvailability, !allOn)
}

func setField(v ProductVariant, field VariantField, value any) ProductVariant {
	switch field {
	case BulkPrice:
		if n, ok := asInt(value); ok {
			v.PriceCents = n
		}
	case BulkStock:
		if n, ok := asInt(value); ok && n >= 0 {
			v.Stock = n
		}
	case BulkAvailability:
		if b, ok := value.(bool); ok {
			v.IsAvailable = b
		}
	}
	return v
}

func asInt(value any) (int, bool) {
	switch n := value.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}

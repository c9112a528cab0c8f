package catalog

import (
	"fmt"
	"strings"
)

// MaxCombinations caps how many variants one generation round may produce.
// UI limit, not a hard invariant; keep it in one place.
const MaxCombinations = 100

// VariantOption is one named dimension of variation (e.g. "Taille") with its
// enumerated values. Built transiently by the vendor form.
type VariantOption struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// ValidationResult collects every violated rule; Valid is false as soon as
// one rule fails. Never short-circuits on first failure.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// CalculateTotalCombinations returns the product of all options' value counts
// without materializing anything. Zero options -> 1, the empty combination,
// matching what GenerateVariants produces.
func CalculateTotalCombinations(opts []VariantOption) int {
	total := 1
	for _, o := range opts {
		total *= len(o.Values)
	}
	return total
}

// ValidateOptions gates variant generation. The generator itself does not
// re-validate; callers must check Valid before calling GenerateVariants.
func ValidateOptions(opts []VariantOption) ValidationResult {
	var errs []string

	if len(opts) == 0 {
		errs = append(errs, "au moins une option est requise")
	}

	for i, o := range opts {
		name := strings.TrimSpace(o.Name)
		if name == "" {
			errs = append(errs, fmt.Sprintf("option %d : le nom est requis", i+1))
			name = fmt.Sprintf("option %d", i+1)
		}
		if len(o.Values) == 0 {
			errs = append(errs, fmt.Sprintf("%s : au moins une valeur est requise", name))
		}
		seen := make(map[string]struct{}, len(o.Values))
		for _, v := range o.Values {
			if _, dup := seen[v]; dup {
				errs = append(errs, fmt.Sprintf("%s : valeur en double « %s »", name, v))
				continue
			}
			seen[v] = struct{}{}
		}
	}

	if total := CalculateTotalCombinations(opts); total > MaxCombinations {
		errs = append(errs, fmt.Sprintf("trop de combinaisons : %d (maximum %d)", total, MaxCombinations))
	}

	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateOptionsEmpty(t *testing.T) {
	res := ValidateOptions(nil)
	assert.False(t, res.Valid)
	assert.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "au moins une option")
}

func TestValidateOptionsBlankName(t *testing.T) {
	res := ValidateOptions([]VariantOption{{Name: "   ", Values: []string{"a"}}})
	assert.False(t, res.Valid)
	assert.Contains(t, strings.Join(res.Errors, "\n"), "le nom est requis")
}

func TestValidateOptionsNoValues(t *testing.T) {
	res := ValidateOptions([]VariantOption{{Name: "Taille", Values: nil}})
	assert.False(t, res.Valid)
	assert.Contains(t, strings.Join(res.Errors, "\n"), "au moins une valeur")
}

func TestValidateOptionsDuplicateValue(t *testing.T) {
	res := ValidateOptions([]VariantOption{{Name: "Taille", Values: []string{"M", "M"}}})
	assert.False(t, res.Valid)
	assert.Contains(t, strings.Join(res.Errors, "\n"), "valeur en double")
}

func TestValidateOptionsCaseSensitiveDuplicates(t *testing.T) {
	// "m" et "M" sont des valeurs distinctes
	res := ValidateOptions([]VariantOption{{Name: "Taille", Values: []string{"m", "M"}}})
	assert.True(t, res.Valid)
	assert.Empty(t, res.Errors)
}

func TestValidateOptionsCombinationLimit(t *testing.T) {
	five := []string{"1", "2", "3", "4", "5"}
	opts := []VariantOption{
		{Name: "A", Values: five},
		{Name: "B", Values: five},
		{Name: "C", Values: five},
	}
	res := ValidateOptions(opts)
	assert.False(t, res.Valid)
	assert.Contains(t, strings.Join(res.Errors, "\n"), "125")
}

func TestValidateOptionsCollectsAllErrors(t *testing.T) {
	opts := []VariantOption{
		{Name: "", Values: nil},
		{Name: "Couleur", Values: []string{"Noir", "Noir"}},
	}
	res := ValidateOptions(opts)
	assert.False(t, res.Valid)
	// nom manquant + valeurs manquantes + doublon
	assert.Len(t, res.Errors, 3)
}

func TestCalculateTotalCombinations(t *testing.T) {
	tests := []struct {
		name string
		opts []VariantOption
		want int
	}{
		{"none", nil, 1},
		{"single", []VariantOption{{Name: "A", Values: []string{"x"}}}, 1},
		{"3x2", []VariantOption{
			{Name: "Taille", Values: []string{"S", "M", "L"}},
			{Name: "Couleur", Values: []string{"Rouge", "Bleu"}},
		}, 6},
		{"with empty option", []VariantOption{
			{Name: "A", Values: []string{"x", "y"}},
			{Name: "B", Values: nil},
		}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateTotalCombinations(tt.opts))
		})
	}
}

func TestCalculateMatchesGeneratedCount(t *testing.T) {
	opts := []VariantOption{
		{Name: "Taille", Values: []string{"S", "M", "L", "XL"}},
		{Name: "Couleur", Values: []string{"Noir", "Blanc", "Rouge"}},
		{Name: "Coupe", Values: []string{"Slim", "Regular"}},
	}
	got := GenerateVariants(opts, GenerateParams{BaseSKU: "TST"})
	assert.Equal(t, CalculateTotalCombinations(opts), len(got))
}

func TestCalculateMatchesGeneratedCountNoOptions(t *testing.T) {
	// zéro option : une seule combinaison vide, des deux côtés
	got := GenerateVariants(nil, GenerateParams{BaseSKU: "TST"})
	assert.Len(t, got, 1)
	assert.Equal(t, CalculateTotalCombinations(nil), len(got))
}

package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateVariantsOrdering(t *testing.T) {
	opts := []VariantOption{
		{Name: "A", Values: []string{"a1", "a2"}},
		{Name: "B", Values: []string{"b1", "b2"}},
	}
	got := GenerateVariants(opts, GenerateParams{BaseSKU: "X"})
	require.Len(t, got, 4)

	want := []map[string]string{
		{"A": "a1", "B": "b1"},
		{"A": "a1", "B": "b2"},
		{"A": "a2", "B": "b1"},
		{"A": "a2", "B": "b2"},
	}
	for i, v := range got {
		assert.Equal(t, want[i], v.Options, "combinaison %d", i)
		assert.Equal(t, i, v.Position)
	}
}

func TestGenerateVariantsZeroOptions(t *testing.T) {
	got := GenerateVariants(nil, GenerateParams{BaseSKU: "X", BasePriceCents: 100, BaseStock: 1})
	require.Len(t, got, 1)
	assert.Empty(t, got[0].Options)
	assert.Equal(t, "X-001", got[0].SKU)
}

func TestGenerateVariantsDefaults(t *testing.T) {
	opts := []VariantOption{{Name: "Taille", Values: []string{"S", "M"}}}
	got := GenerateVariants(opts, GenerateParams{BaseSKU: "TSH", BasePriceCents: 5000, BaseStock: 10})
	require.Len(t, got, 2)
	for _, v := range got {
		assert.Equal(t, 5000, v.PriceCents)
		assert.Equal(t, 10, v.Stock)
		assert.True(t, v.IsAvailable)
		assert.Nil(t, v.CompareAtCents)
		assert.NotEmpty(t, v.ID)
	}
}

func TestGenerateVariantsSKUUnique(t *testing.T) {
	// Valeurs partageant le même fragment abrégé : la séquence seule garantit
	// l'unicité.
	opts := []VariantOption{
		{Name: "Couleur", Values: []string{"Noir", "Noisette", "Nougat"}},
		{Name: "Taille", Values: []string{"S", "M", "L"}},
	}
	got := GenerateVariants(opts, GenerateParams{BaseSKU: "SAC"})
	seen := make(map[string]struct{}, len(got))
	for _, v := range got {
		_, dup := seen[v.SKU]
		assert.False(t, dup, "SKU en double: %s", v.SKU)
		seen[v.SKU] = struct{}{}
	}
}

func TestGenerateSKUShape(t *testing.T) {
	opts := []VariantOption{
		{Name: "Taille", Values: []string{"Grande Taille"}},
		{Name: "Couleur", Values: []string{"bleu"}},
	}
	got := GenerateVariants(opts, GenerateParams{BaseSKU: "TSH"})
	require.Len(t, got, 1)
	// espaces internes supprimés, deux premiers caractères en majuscules
	assert.Equal(t, "TSH-GR-BL-001", got[0].SKU)
}

func TestGenerateEndToEnd(t *testing.T) {
	opts := []VariantOption{
		{Name: "Taille", Values: []string{"S", "M", "L"}},
		{Name: "Couleur", Values: []string{"Rouge", "Bleu"}},
	}
	res := ValidateOptions(opts)
	require.True(t, res.Valid)

	got := GenerateVariants(opts, GenerateParams{BaseSKU: "TSH", BasePriceCents: 5000, BaseStock: 10})
	require.Len(t, got, 6)

	first, last := got[0], got[5]
	assert.Equal(t, map[string]string{"Taille": "S", "Couleur": "Rouge"}, first.Options)
	assert.Equal(t, 0, first.Position)
	assert.True(t, strings.HasPrefix(first.SKU, "TSH-"))
	assert.True(t, strings.HasSuffix(first.SKU, "-001"))

	assert.Equal(t, map[string]string{"Taille": "L", "Couleur": "Bleu"}, last.Options)
	assert.Equal(t, 5, last.Position)
	assert.True(t, strings.HasSuffix(last.SKU, "-006"))
}

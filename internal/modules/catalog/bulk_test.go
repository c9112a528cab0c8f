package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testVariants(t *testing.T) []ProductVariant {
	t.Helper()
	opts := []VariantOption{
		{Name: "Couleur", Values: []string{"Noir", "Blanc"}},
		{Name: "Taille", Values: []string{"S", "M"}},
	}
	return GenerateVariants(opts, GenerateParams{BaseSKU: "TST", BasePriceCents: 1000, BaseStock: 5})
}

func TestApplyToAllPrice(t *testing.T) {
	in := testVariants(t)
	got := ApplyToAll(in, BulkPrice, 999)

	require.Len(t, got, len(in))
	for i, v := range got {
		assert.Equal(t, 999, v.PriceCents)
		// le reste ne bouge pas
		assert.Equal(t, in[i].SKU, v.SKU)
		assert.Equal(t, in[i].Options, v.Options)
		assert.Equal(t, in[i].Position, v.Position)
		assert.Equal(t, in[i].Stock, v.Stock)
	}
	// l'entrée n'est pas mutée
	assert.Equal(t, 1000, in[0].PriceCents)
}

func TestApplyToGroup(t *testing.T) {
	in := testVariants(t)
	got := ApplyToGroup(in, "Couleur", "Noir", BulkStock, 50)

	require.Len(t, got, 4)
	for i, v := range got {
		if v.Options["Couleur"] == "Noir" {
			assert.Equal(t, 50, v.Stock, "variant %d", i)
		} else {
			assert.Equal(t, 5, v.Stock, "variant %d", i)
		}
	}
}

func TestApplyToGroupUnknownDimension(t *testing.T) {
	in := testVariants(t)
	got := ApplyToGroup(in, "Pointure", "42", BulkStock, 50)
	for i := range got {
		assert.Equal(t, in[i].Stock, got[i].Stock)
	}
}

func TestApplyToAllNegativeStockIgnored(t *testing.T) {
	in := testVariants(t)
	got := ApplyToAll(in, BulkStock, -3)
	for i := range got {
		assert.Equal(t, in[i].Stock, got[i].Stock)
	}
}

func TestToggleAllAvailability(t *testing.T) {
	in := testVariants(t)

	// tous disponibles -> tous indisponibles
	got := ToggleAllAvailability(in)
	for _, v := range got {
		assert.False(t, v.IsAvailable)
	}

	// au moins un indisponible -> tous disponibles
	mixed := ApplyToGroup(in, "Taille", "M", BulkAvailability, false)
	got = ToggleAllAvailability(mixed)
	for _, v := range got {
		assert.True(t, v.IsAvailable)
	}
}

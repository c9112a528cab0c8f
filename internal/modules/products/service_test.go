package products

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariantBatchMapsRows(t *testing.T) {
	rows := []Variant{
		{ID: "v-1", SKU: "TSH-S-001", OptionsJSON: []byte(`{"Taille":"S"}`), PriceCents: 2500, Stock: 3, IsAvailable: true, Position: 0},
		{ID: "v-2", SKU: "TSH-M-002", OptionsJSON: nil, PriceCents: 2500, Stock: 0, IsAvailable: false, Position: 1},
	}
	batch, err := variantBatch(rows)
	require.NoError(t, err)
	require.Len(t, batch, 2)
	assert.Equal(t, "S", batch[0].Options["Taille"])
	assert.Nil(t, batch[1].Options)
	assert.Equal(t, 1, batch[1].Position)
}

func TestVariantBatchRejectsCorruptOptions(t *testing.T) {
	rows := []Variant{
		{ID: "v-1", SKU: "TSH-S-001", OptionsJSON: []byte(`{"Taille":"S"}`)},
		{ID: "v-2", SKU: "TSH-M-002", OptionsJSON: []byte(`{not json`)},
	}
	_, err := variantBatch(rows)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "v-2")
}

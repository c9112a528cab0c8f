package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampToStock(t *testing.T) {
	tests := []struct {
		name      string
		requested int
		stock     int
		available bool
		want      int
		clamped   bool
	}{
		{"within stock", 2, 10, true, 2, false},
		{"exact stock", 10, 10, true, 10, false},
		{"over stock", 15, 10, true, 10, true},
		{"zero stock", 3, 0, true, 0, true},
		{"unavailable", 3, 10, false, 0, true},
		{"nothing requested", 0, 10, true, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, clamped := ClampToStock(tt.requested, tt.stock, tt.available)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.clamped, clamped)
		})
	}
}

func TestBuildCartVM(t *testing.T) {
	rows := []cartRow{
		{VariantID: "v1", Qty: 2, PriceCents: 5000, Currency: "XOF", Stock: 10, IsAvailable: true, ProductName: "Tee-shirt", ProductSlug: "tee-shirt"},
		{VariantID: "v2", Qty: 5, PriceCents: 12000, Currency: "XOF", Stock: 3, IsAvailable: true, ProductName: "Sac", ProductSlug: "sac"},
		{VariantID: "v3", Qty: 1, PriceCents: 800, Currency: "XOF", Stock: 4, IsAvailable: false, ProductName: "Casquette", ProductSlug: "casquette"},
	}

	vm := buildCartVM(rows)

	assert.Len(t, vm.Items, 3)
	assert.Equal(t, "XOF", vm.Currency)

	// v1 intact
	assert.Equal(t, 2, vm.Items[0].Qty)
	assert.False(t, vm.Items[0].Clamped)
	// v2 borné au stock
	assert.Equal(t, 3, vm.Items[1].Qty)
	assert.True(t, vm.Items[1].Clamped)
	// v3 indisponible -> 0
	assert.Equal(t, 0, vm.Items[2].Qty)
	assert.True(t, vm.Items[2].Clamped)

	assert.Equal(t, 2*5000+3*12000, vm.SubtotalCents)
	assert.Equal(t, 5, vm.Count)
}

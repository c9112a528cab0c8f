package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bzmarket.com/app/internal/modules/orders"
	"bzmarket.com/app/internal/modules/products"
	"bzmarket.com/app/internal/modules/users"
	"bzmarket.com/app/pkg/view"
)

func TestDimensionsFrom(t *testing.T) {
	variants := []view.VariantView{
		{Options: map[string]string{"Couleur": "Noir", "Taille": "M"}},
		{Options: map[string]string{"Couleur": "Noir", "Taille": "L"}},
		{Options: map[string]string{"Couleur": "Rouge", "Taille": "M"}},
		{Options: map[string]string{"Couleur": "Rouge", "Taille": "L"}},
	}

	dims := dimensionsFrom(variants)
	assert.Len(t, dims, 2)
	assert.Equal(t, "Couleur", dims[0].Name)
	assert.Equal(t, []string{"Noir", "Rouge"}, dims[0].Values)
	assert.Equal(t, "Taille", dims[1].Name)
	assert.Equal(t, []string{"M", "L"}, dims[1].Values)
}

func TestDimensionsFromNoOptions(t *testing.T) {
	assert.Empty(t, dimensionsFrom([]view.VariantView{{Options: map[string]string{}}}))
	assert.Empty(t, dimensionsFrom(nil))
}

func TestOptionsLabel(t *testing.T) {
	assert.Equal(t, "Couleur: Noir, Taille: M", optionsLabel([]byte(`{"Taille":"M","Couleur":"Noir"}`)))
	assert.Equal(t, "", optionsLabel(nil))
	assert.Equal(t, "", optionsLabel([]byte("pas du json")))
}

func TestProductCardPicksLowestAvailablePrice(t *testing.T) {
	p := products.Product{
		ID:   "p1",
		Name: "Tee-shirt",
		Slug: "tee-shirt",
		Variants: []products.Variant{
			{PriceCents: 9000, Currency: "XOF", IsAvailable: true},
			{PriceCents: 5000, Currency: "XOF", IsAvailable: true},
			{PriceCents: 100, Currency: "XOF", IsAvailable: false}, // ignorée
		},
		Images: []products.Image{{URL: "/uploads/a.png"}},
	}

	card := productCard(p)
	assert.Equal(t, 5000, card.FromCents)
	assert.Equal(t, "50 F CFA", card.FromPrice)
	assert.Equal(t, "/uploads/a.png", card.ImageURL)
}

func TestCanTransition(t *testing.T) {
	buyer := users.User{ID: "u1", Role: users.RoleClient}
	vendor := users.User{ID: "v1", Role: users.RoleVendor}
	admin := users.User{ID: "a1", Role: users.RoleAdmin}
	stranger := users.User{ID: "x1", Role: users.RoleClient}

	o := orders.Order{
		ID:     "o1",
		UserID: "u1",
		Items:  []orders.OrderItem{{VendorID: "v1"}},
	}

	assert.True(t, canTransition(buyer, o, "pay"))
	assert.True(t, canTransition(buyer, o, "cancel"))
	assert.False(t, canTransition(buyer, o, "ship"))

	assert.True(t, canTransition(vendor, o, "ship"))
	assert.True(t, canTransition(vendor, o, "deliver"))
	assert.False(t, canTransition(vendor, o, "pay"))

	assert.True(t, canTransition(admin, o, "ship"))
	assert.True(t, canTransition(admin, o, "pay"))

	assert.False(t, canTransition(stranger, o, "pay"))
	assert.False(t, canTransition(stranger, o, "ship"))

	assert.True(t, canSeeOrder(buyer, o))
	assert.True(t, canSeeOrder(vendor, o))
	assert.True(t, canSeeOrder(admin, o))
	assert.False(t, canSeeOrder(stranger, o))
}

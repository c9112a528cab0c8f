package view

// ProductCard is the storefront listing shape.
type ProductCard struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	ImageURL  string `json:"imageUrl,omitempty"`
	FromCents int    `json:"fromCents"`
	FromPrice string `json:"fromPrice"`
	Currency  string `json:"currency"`
	VendorID  string `json:"vendorId"`
}

type VariantView struct {
	ID             string            `json:"id"`
	SKU            string            `json:"sku"`
	Options        map[string]string `json:"options"`
	PriceCents     int               `json:"priceCents"`
	Price          string            `json:"price"`
	CompareAtCents *int              `json:"compareAtCents,omitempty"`
	Stock          int               `json:"stock"`
	ImageURL       string            `json:"imageUrl,omitempty"`
	IsAvailable    bool              `json:"isAvailable"`
	Position       int               `json:"position"`
}

type ImageView struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	Position int    `json:"position"`
}

// ProductDetailPage carries everything the product page needs, including the
// option dimensions in display order so the client can build the selector.
type ProductDetailPage struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Slug        string            `json:"slug"`
	Description string            `json:"description,omitempty"`
	Status      string            `json:"status"`
	Currency    string            `json:"currency"`
	VendorID    string            `json:"vendorId"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	Dimensions  []OptionDimension `json:"dimensions"`
	Variants    []VariantView     `json:"variants"`
	Images      []ImageView       `json:"images"`
}

type OptionDimension struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

package view

type CartItem struct {
	ProductName    string `json:"productName"`
	ProductSlug    string `json:"productSlug"`
	ImageURL       string `json:"imageUrl,omitempty"`
	VariantID      string `json:"variantId"`
	Qty            int    `json:"qty"`
	Clamped        bool   `json:"clamped,omitempty"`
	StockLeft      int    `json:"stockLeft"`
	UnitPriceCents int    `json:"unitPriceCents"`
	LineTotalCents int    `json:"lineTotalCents"`
	UnitPrice      string `json:"unitPrice"`
	LineTotal      string `json:"lineTotal"`
}

type CartPage struct {
	Items         []CartItem `json:"items"`
	Currency      string     `json:"currency"`
	Count         int        `json:"count"`
	SubtotalCents int        `json:"subtotalCents"`
	Subtotal      string     `json:"subtotal"`
}

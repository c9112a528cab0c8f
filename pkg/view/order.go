package view

import "time"

type OrderListItem struct {
	ID         string     `json:"id"`
	CreatedAt  time.Time  `json:"createdAt"`
	Status     string     `json:"status"`
	TotalCents int        `json:"totalCents"`
	Total      string     `json:"total"`
	Currency   string     `json:"currency"`
	ItemCount  int        `json:"itemCount"`
	PaidAt     *time.Time `json:"paidAt,omitempty"`
}

type OrdersPage struct {
	Items      []OrderListItem `json:"items"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	PageSize   int             `json:"pageSize"`
	TotalPages int             `json:"totalPages"`
	Status     string          `json:"status,omitempty"`
}

type OrderItemView struct {
	ProductName string `json:"productName"`
	SKU         string `json:"sku"`
	Options     string `json:"options,omitempty"`
	Qty         int    `json:"qty"`
	UnitCents   int    `json:"unitCents"`
	LineCents   int    `json:"lineCents"`
	Unit        string `json:"unit"`
	Line        string `json:"line"`
}

type OrderDetail struct {
	ID        string          `json:"id"`
	Status    string          `json:"status"`
	Currency  string          `json:"currency"`
	CreatedAt time.Time       `json:"createdAt"`
	PaidAt    *time.Time      `json:"paidAt,omitempty"`
	Shipping  ShippingAddress `json:"shipping"`

	SubtotalCents int    `json:"subtotalCents"`
	TotalCents    int    `json:"totalCents"`
	Subtotal      string `json:"subtotal"`
	Total         string `json:"total"`

	Items []OrderItemView `json:"items"`
}

type ShippingAddress struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

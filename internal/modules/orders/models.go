package orders

import "time"

const (
	StatusPending   = "pending"
	StatusPaid      = "paid"
	StatusShipped   = "shipped"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

type Order struct {
	ID              string     `gorm:"primaryKey;type:char(36)"`
	UserID          string     `gorm:"type:char(36);not null;index:ix_orders_user_id"`
	Status          string     `gorm:"type:varchar(16);not null;default:pending"`
	TotalCents      int        `gorm:"not null"`
	Currency        string     `gorm:"type:char(3);not null;default:XOF"`
	ShippingName    string     `gorm:"type:varchar(255)"`
	ShippingPhone   string     `gorm:"type:varchar(32)"`
	ShippingAddress string     `gorm:"type:text"`
	PaidAt          *time.Time `gorm:"type:datetime(3)"`
	CreatedAt       time.Time  `gorm:"type:datetime(3)"`
	UpdatedAt       time.Time  `gorm:"type:datetime(3)"`

	Items []OrderItem `gorm:"foreignKey:OrderID"`
}

func (Order) TableName() string { return "orders" }

// OrderItem snapshots the variant at purchase time so later catalog edits
// never rewrite order history.
type OrderItem struct {
	ID             string    `gorm:"primaryKey;type:char(36)"`
	OrderID        string    `gorm:"type:char(36);not null;index:ix_order_items_order_id"`
	VendorID       string    `gorm:"type:char(36);not null;index:ix_order_items_vendor_id"`
	VariantID      string    `gorm:"type:char(36);not null"`
	ProductName    string    `gorm:"type:varchar(255);not null"`
	SKU            string    `gorm:"type:varchar(64);not null"`
	OptionsJSON    []byte    `gorm:"column:options_json;type:json"`
	UnitPriceCents int       `gorm:"not null"`
	Quantity       int       `gorm:"not null"`
	LineTotalCents int       `gorm:"not null"`
	CreatedAt      time.Time `gorm:"type:datetime(3)"`
}

func (OrderItem) TableName() string { return "order_items" }

// OrderEvent is the append-only audit trail of status transitions.
type OrderEvent struct {
	ID          string    `gorm:"primaryKey;type:char(36)"`
	OrderID     string    `gorm:"type:char(36);not null;index:ix_order_events_order_id"`
	ActorUserID string    `gorm:"type:char(36);not null"`
	Action      string    `gorm:"type:varchar(32);not null"`
	FromStatus  string    `gorm:"type:varchar(16);not null"`
	ToStatus    string    `gorm:"type:varchar(16);not null"`
	Note        *string   `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"type:datetime(3)"`
}

func (OrderEvent) TableName() string { return "order_events" }

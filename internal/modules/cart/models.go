package cart

import "time"

type Cart struct {
	ID        string    `gorm:"primaryKey;type:char(36)"`
	UserID    *string   `gorm:"type:char(36);index:ix_carts_user_id"`
	Status    string    `gorm:"type:varchar(16);not null;default:open"` // open|converted|abandoned
	CreatedAt time.Time `gorm:"type:datetime(3)"`
	UpdatedAt time.Time `gorm:"type:datetime(3)"`

	Items []CartItem `gorm:"foreignKey:CartID"`
}

func (Cart) TableName() string { return "carts" }

type CartItem struct {
	ID        string    `gorm:"primaryKey;type:char(36)"`
	CartID    string    `gorm:"type:char(36);not null;uniqueIndex:ux_cart_items_cart_variant"`
	VariantID string    `gorm:"type:char(36);not null;uniqueIndex:ux_cart_items_cart_variant"`
	Quantity  int       `gorm:"not null;default:1"`
	CreatedAt time.Time `gorm:"type:datetime(3)"`
	UpdatedAt time.Time `gorm:"type:datetime(3)"`
}

func (CartItem) TableName() string { return "cart_items" }

package products

import "time"

type Product struct {
	ID           string `gorm:"primaryKey;type:char(36)"`
	VendorID     string `gorm:"type:char(36);not null;index:ix_products_vendor_id"`
	CategoryCode string `gorm:"type:varchar(64);index:ix_products_category"`
	Name         string `gorm:"type:varchar(255);not null"`
	Slug         string `gorm:"type:varchar(255);not null;uniqueIndex:ux_products_slug"`
	Description  string `gorm:"type:text"`
	// attribute values filled from the category template, code -> value
	AttributesJSON []byte    `gorm:"column:attributes_json;type:json"`
	Status         string    `gorm:"type:varchar(16);not null;default:draft"` // draft|active|archived
	CreatedAt      time.Time `gorm:"type:datetime(3)"`
	UpdatedAt      time.Time `gorm:"type:datetime(3)"`

	Variants []Variant `gorm:"foreignKey:ProductID"`
	Images   []Image   `gorm:"foreignKey:ProductID"`
}

func (Product) TableName() string { return "products" }

type Variant struct {
	ID        string `gorm:"primaryKey;type:char(36)"`
	ProductID string `gorm:"type:char(36);not null;index:ix_variants_product_id;uniqueIndex:ux_variants_product_sku"`
	SKU       string `gorm:"type:varchar(64);not null;uniqueIndex:ux_variants_product_sku"`
	// option name -> value, e.g. {"Taille":"M","Couleur":"Noir"}
	OptionsJSON    []byte    `gorm:"column:options_json;type:json"`
	PriceCents     int       `gorm:"not null"`
	CompareAtCents *int      `gorm:""`
	Currency       string    `gorm:"type:char(3);not null;default:XOF"`
	Stock          int       `gorm:"not null;default:0"`
	ImageURL       string    `gorm:"type:varchar(512)"`
	IsAvailable    bool      `gorm:"not null;default:true"`
	Position       int       `gorm:"not null;default:0"`
	CreatedAt      time.Time `gorm:"type:datetime(3)"`
	UpdatedAt      time.Time `gorm:"type:datetime(3)"`
}

func (Variant) TableName() string { return "product_variants" }

type Image struct {
	ID         string    `gorm:"primaryKey;type:char(36)"`
	ProductID  string    `gorm:"type:char(36);not null;index:ix_images_product_id"`
	StorageKey string    `gorm:"type:varchar(512)"`
	URL        string    `gorm:"type:varchar(512);not null"`
	Position   int       `gorm:"not null;default:0"`
	CreatedAt  time.Time `gorm:"type:datetime(3)"`
}

func (Image) TableName() string { return "product_images" }

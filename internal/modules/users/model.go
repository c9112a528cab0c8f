package users

import "time"

const (
	RoleClient = "client"
	RoleVendor = "vendor"
	RoleAdmin  = "admin"
)

type User struct {
	ID           string  `gorm:"primaryKey;type:char(36)"`
	Email        string  `gorm:"type:varchar(255);not null;uniqueIndex:ux_users_email"`
	PasswordHash string  `gorm:"type:varchar(255);not null"`
	Role         string  `gorm:"type:varchar(16);not null;default:client"`
	FirstName    *string `gorm:"type:varchar(128)"`
	LastName     *string `gorm:"type:varchar(128)"`
	PhoneE164    *string `gorm:"type:varchar(32)"`
	Address      *string `gorm:"type:text"`
	// vendeurs uniquement
	ShopName *string `gorm:"type:varchar(255)"`
	ShopSlug *string `gorm:"type:varchar(255);uniqueIndex:ux_users_shop_slug"`

	EmailVerifiedAt *time.Time `gorm:"type:datetime(3)"`
	PhoneVerifiedAt *time.Time `gorm:"type:datetime(3)"`
	CreatedAt       time.Time  `gorm:"type:datetime(3)"`
	UpdatedAt       time.Time  `gorm:"type:datetime(3)"`
}

func (User) TableName() string { return "users" }

func (u User) IsVendor() bool { return u.Role == RoleVendor }

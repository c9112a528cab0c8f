// Command createtable builds the schema from the GORM models and seeds the
// category templates. Dev helper, never run in production.
package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"bzmarket.com/app/internal/http/middleware"
	"bzmarket.com/app/internal/modules/cart"
	"bzmarket.com/app/internal/modules/catalog"
	"bzmarket.com/app/internal/modules/orders"
	"bzmarket.com/app/internal/modules/products"
	"bzmarket.com/app/internal/modules/users"
	"bzmarket.com/app/internal/verification"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN environment variable is required")
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	err = db.AutoMigrate(
		&users.User{},
		&middleware.Session{},
		&catalog.CategoryTemplate{},
		&products.Product{},
		&products.Variant{},
		&products.Image{},
		&cart.Cart{},
		&cart.CartItem{},
		&orders.Order{},
		&orders.OrderItem{},
		&orders.OrderEvent{},
		&verification.Verification{},
		&verification.RateLimit{},
		&verification.SentLog{},
	)
	if err != nil {
		log.Fatalf("migrate: %v", err)
	}

	if err := catalog.SeedTemplates(context.Background(), db, catalog.DefaultTemplates()); err != nil {
		log.Fatalf("seed templates: %v", err)
	}

	log.Println("schéma créé et templates de catégories semés")
}

// Package http wires the gin engine: middleware chain, handler routes,
// session and guest-cart cookies.
package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"bzmarket.com/app/internal/config"
	"bzmarket.com/app/internal/http/cartcookie"
	"bzmarket.com/app/internal/http/handlers"
	"bzmarket.com/app/internal/http/middleware"
	"bzmarket.com/app/internal/modules/cart"
	"bzmarket.com/app/internal/modules/catalog"
	"bzmarket.com/app/internal/modules/orders"
	"bzmarket.com/app/internal/modules/products"
	"bzmarket.com/app/internal/modules/users"
	"bzmarket.com/app/internal/storage"
	"bzmarket.com/app/internal/verification"
)

type Deps struct {
	Logger   *slog.Logger
	DB       *gorm.DB
	Cfg      config.Config
	Resolver catalog.Resolver
	Uploads  storage.Storage
	Verif    *verification.Service
}

func NewRouter(d Deps) *gin.Engine {
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(d.Logger))
	r.Use(middleware.Recovery(d.Logger))
	r.Use(middleware.ErrorHandler(d.Logger))

	sessCfg := middleware.SessionCfg{
		DB:         d.DB,
		CookieName: d.Cfg.SessionCookieName,
		Secure:     d.Cfg.CookieSecure,
		TTL:        d.Cfg.SessionTTL,
	}
	r.Use(middleware.SessionAuth(sessCfg))

	cartCookie := cartcookie.New(d.Cfg.CookieSecret, d.Cfg.CartCookieName, d.Cfg.CookieSecure)

	usersSvc := users.NewService(d.DB)
	cartSvc := cart.NewService(d.DB)
	productsSvc := products.NewService(d.DB, d.Resolver)
	ordersSvc := orders.NewService(d.DB)

	auth := handlers.NewAuthHandler(usersSvc, cartSvc, cartCookie, sessCfg)
	store := handlers.NewStorefrontHandler(productsSvc, d.Resolver)
	cartH := handlers.NewCartHandler(cartSvc, cartCookie)
	ordersH := handlers.NewOrdersHandler(ordersSvc)
	vendor := handlers.NewVendorProductsHandler(productsSvc, d.Uploads)
	verify := handlers.NewVerifyHandler(d.Verif, usersSvc.Repo())
	adminOrders := handlers.NewAdminOrdersHandler(ordersSvc)
	account := handlers.NewAccountHandler(usersSvc)

	api := r.Group("/api")

	// public
	api.POST("/auth/register", auth.Register)
	api.POST("/auth/login", auth.Login)
	api.POST("/auth/logout", auth.Logout)
	api.GET("/products", store.List)
	api.GET("/products/:slug", store.Detail)
	api.GET("/categories/:code/template", store.Template)

	// cart: invité (cookie) ou connecté (DB)
	api.GET("/cart", cartH.Get)
	api.POST("/cart/items", cartH.Add)
	api.PUT("/cart/items/:variantId", cartH.Update)
	api.DELETE("/cart/items/:variantId", cartH.Remove)

	authed := api.Group("")
	authed.Use(middleware.RequireAuth())
	{
		authed.GET("/auth/me", auth.Me)
		authed.PUT("/account/profile", account.UpdateProfile)
		authed.PUT("/account/password", account.ChangePassword)
		authed.POST("/account/verify", verify.Start)
		authed.POST("/account/verify/confirm", verify.Confirm)
		authed.GET("/account/verify/history", verify.History)

		authed.POST("/orders", ordersH.Place)
		authed.GET("/orders", ordersH.List)
		authed.GET("/orders/:id", ordersH.Detail)
		authed.POST("/orders/:id/transition", ordersH.Transition)
	}

	vend := api.Group("/vendor")
	vend.Use(middleware.RequireVendor())
	{
		vend.GET("/products", vendor.List)
		vend.POST("/products", vendor.Create)
		vend.POST("/products/preview-variants", vendor.Preview)
		vend.GET("/products/:id", vendor.Get)
		vend.PUT("/products/:id", vendor.Update)
		vend.DELETE("/products/:id", vendor.Delete)
		vend.POST("/products/:id/variants/bulk", vendor.BulkEdit)
		vend.PUT("/products/:id/variants/:variantId", vendor.UpdateVariant)
		vend.POST("/products/:id/images", vendor.UploadImage)
		vend.DELETE("/products/:id/images/:imageId", vendor.DeleteImage)

		vend.GET("/orders", ordersH.VendorList)
	}

	adm := api.Group("/admin")
	adm.Use(middleware.RequireAdmin())
	{
		adm.GET("/orders", adminOrders.List)
		adm.GET("/orders/:id", ordersH.Detail)
		adm.POST("/orders/:id/transition", ordersH.Transition)
	}

	return r
}

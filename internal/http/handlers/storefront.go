package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"bzmarket.com/app/internal/http/middleware"
	"bzmarket.com/app/internal/modules/catalog"
	"bzmarket.com/app/internal/modules/products"
	"bzmarket.com/app/internal/shared/apperr"
	"bzmarket.com/app/pkg/view"
)

// StorefrontHandler serves the public catalogue.
type StorefrontHandler struct {
	svc      *products.Service
	resolver catalog.Resolver
}

func NewStorefrontHandler(svc *products.Service, resolver catalog.Resolver) *StorefrontHandler {
	return &StorefrontHandler{svc: svc, resolver: resolver}
}

func (h *StorefrontHandler) List(c *gin.Context) {
	limit := intQuery(c, "limit", 24, 100)
	page := intQuery(c, "page", 1, 0)

	prods, err := h.svc.Repo().ListActive(c.Request.Context(), limit, (page-1)*limit)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	cards := make([]view.ProductCard, 0, len(prods))
	for _, p := range prods {
		cards = append(cards, productCard(p))
	}
	c.JSON(http.StatusOK, gin.H{"items": cards, "page": page})
}

func (h *StorefrontHandler) Detail(c *gin.Context) {
	p, err := h.svc.Repo().GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			middleware.Fail(c, apperr.NotFoundErr("Produit introuvable."))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, productDetail(p))
}

// Template exposes a category's attribute schema, used by the vendor
// create form to build itself.
func (h *StorefrontHandler) Template(c *gin.Context) {
	tpl, err := h.resolver.ResolveTemplate(c.Request.Context(), c.Param("code"))
	if err != nil {
		if errors.Is(err, catalog.ErrTemplateNotFound) {
			middleware.Fail(c, apperr.NotFoundErr("Catégorie inconnue."))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, tpl)
}

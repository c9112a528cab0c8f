package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bzmarket.com/app/internal/http/cartcookie"
	"bzmarket.com/app/internal/http/middleware"
	"bzmarket.com/app/internal/http/validation"
	"bzmarket.com/app/internal/modules/cart"
	"bzmarket.com/app/internal/shared/apperr"
)

// CartHandler serves both carts: DB-backed for logged-in users, signed
// cookie for guests.
type CartHandler struct {
	svc     *cart.Service
	cookies *cartcookie.Codec
}

func NewCartHandler(svc *cart.Service, cc *cartcookie.Codec) *CartHandler {
	return &CartHandler{svc: svc, cookies: cc}
}

func (h *CartHandler) Get(c *gin.Context) {
	if u, ok := middleware.CurrentUser(c); ok {
		vm, err := h.svc.BuildCartPageForUser(c.Request.Context(), u.ID)
		if err != nil {
			middleware.Fail(c, apperr.Wrap(err))
			return
		}
		c.JSON(http.StatusOK, vm)
		return
	}

	vm, err := h.svc.BuildCartPageFromLines(c.Request.Context(), h.cookies.Read(c))
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, vm)
}

type cartItemInput struct {
	VariantID string `json:"variantId" binding:"required"`
	Qty       int    `json:"qty" binding:"required,gte=1,max=999"`
}

func (h *CartHandler) Add(c *gin.Context) {
	var in cartItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Certains champs sont invalides.", validation.FromBindError(err, &in)))
		return
	}

	if u, ok := middleware.CurrentUser(c); ok {
		crt, err := h.svc.Repo().GetOrCreateUserCart(c.Request.Context(), u.ID)
		if err != nil {
			middleware.Fail(c, apperr.Wrap(err))
			return
		}
		if err := h.svc.Repo().AddItem(c.Request.Context(), crt.ID, in.VariantID, in.Qty); err != nil {
			middleware.Fail(c, apperr.Wrap(err))
			return
		}
	} else {
		lines := cartcookie.Add(h.cookies.Read(c), in.VariantID, in.Qty)
		if err := h.cookies.Write(c, lines); err != nil {
			middleware.Fail(c, apperr.Wrap(err))
			return
		}
	}
	h.Get(c)
}

type cartUpdateInput struct {
	Qty int `json:"qty" binding:"gte=0,max=999"`
}

// Update sets the quantity of one line; zero removes it.
func (h *CartHandler) Update(c *gin.Context) {
	variantID := c.Param("variantId")

	var in cartUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Certains champs sont invalides.", validation.FromBindError(err, &in)))
		return
	}

	if u, ok := middleware.CurrentUser(c); ok {
		crt, err := h.svc.Repo().GetOrCreateUserCart(c.Request.Context(), u.ID)
		if err != nil {
			middleware.Fail(c, apperr.Wrap(err))
			return
		}
		if err := h.svc.Repo().UpdateItemQty(c.Request.Context(), crt.ID, variantID, in.Qty); err != nil {
			middleware.Fail(c, apperr.Wrap(err))
			return
		}
	} else {
		lines := cartcookie.Upsert(h.cookies.Read(c), variantID, in.Qty)
		if err := h.cookies.Write(c, lines); err != nil {
			middleware.Fail(c, apperr.Wrap(err))
			return
		}
	}
	h.Get(c)
}

func (h *CartHandler) Remove(c *gin.Context) {
	variantID := c.Param("variantId")

	if u, ok := middleware.CurrentUser(c); ok {
		crt, err := h.svc.Repo().GetOrCreateUserCart(c.Request.Context(), u.ID)
		if err != nil {
			middleware.Fail(c, apperr.Wrap(err))
			return
		}
		if err := h.svc.Repo().RemoveItem(c.Request.Context(), crt.ID, variantID); err != nil {
			middleware.Fail(c, apperr.Wrap(err))
			return
		}
	} else {
		lines := cartcookie.Upsert(h.cookies.Read(c), variantID, 0)
		if err := h.cookies.Write(c, lines); err != nil {
			middleware.Fail(c, apperr.Wrap(err))
			return
		}
	}
	h.Get(c)
}

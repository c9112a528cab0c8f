package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"bzmarket.com/app/internal/http/middleware"
	"bzmarket.com/app/internal/http/validation"
	"bzmarket.com/app/internal/modules/users"
	"bzmarket.com/app/internal/shared/apperr"
)

type AccountHandler struct {
	users *users.Service
}

func NewAccountHandler(u *users.Service) *AccountHandler {
	return &AccountHandler{users: u}
}

type profileInput struct {
	FirstName *string `json:"firstName" binding:"omitempty,max=128"`
	LastName  *string `json:"lastName" binding:"omitempty,max=128"`
	Address   *string `json:"address" binding:"omitempty,max=2000"`
	ShopName  *string `json:"shopName" binding:"omitempty,max=255"`
}

func (h *AccountHandler) UpdateProfile(c *gin.Context) {
	u, _ := middleware.CurrentUser(c)

	var in profileInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Certains champs sont invalides.", validation.FromBindError(err, &in)))
		return
	}

	fields := map[string]any{}
	if in.FirstName != nil {
		fields["first_name"] = strings.TrimSpace(*in.FirstName)
	}
	if in.LastName != nil {
		fields["last_name"] = strings.TrimSpace(*in.LastName)
	}
	if in.Address != nil {
		fields["address"] = strings.TrimSpace(*in.Address)
	}
	if in.ShopName != nil && u.IsVendor() {
		name := strings.TrimSpace(*in.ShopName)
		if name == "" {
			middleware.Fail(c, apperr.InvalidErr("Le nom de la boutique ne peut pas être vide.", map[string]string{"shopName": "Ce champ est obligatoire."}))
			return
		}
		fields["shop_name"] = name
	}
	if len(fields) == 0 {
		middleware.Fail(c, apperr.InvalidErr("Aucune modification fournie.", nil))
		return
	}

	if err := h.users.Repo().Update(c.Request.Context(), u.ID, fields); err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	fresh, err := h.users.Repo().GetByID(c.Request.Context(), u.ID)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, userPayload(fresh))
}

type changePasswordInput struct {
	Current string `json:"current" binding:"required"`
	Next    string `json:"next" binding:"required,min=8,max=128"`
}

func (h *AccountHandler) ChangePassword(c *gin.Context) {
	u, _ := middleware.CurrentUser(c)

	var in changePasswordInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Certains champs sont invalides.", validation.FromBindError(err, &in)))
		return
	}

	if err := h.users.ChangePassword(c.Request.Context(), u.ID, in.Current, in.Next); err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

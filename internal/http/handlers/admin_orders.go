package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bzmarket.com/app/internal/http/middleware"
	"bzmarket.com/app/internal/modules/orders"
	"bzmarket.com/app/internal/shared/apperr"
)

// AdminOrdersHandler is the back-office view over every user's orders. Detail
// and transitions go through OrdersHandler, whose permission checks already
// let admins through.
type AdminOrdersHandler struct {
	svc *orders.Service
}

func NewAdminOrdersHandler(svc *orders.Service) *AdminOrdersHandler {
	return &AdminOrdersHandler{svc: svc}
}

func (h *AdminOrdersHandler) List(c *gin.Context) {
	params := orders.AdminListParams{
		Q:        c.Query("q"),
		Status:   c.Query("status"),
		Page:     intQuery(c, "page", 1, 0),
		PageSize: intQuery(c, "pageSize", 30, 100),
	}
	res, err := h.svc.Repo().AdminList(c.Request.Context(), params)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, ordersPage(res, params.Page, params.PageSize, params.Status))
}

package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"bzmarket.com/app/internal/http/middleware"
	"bzmarket.com/app/internal/http/validation"
	"bzmarket.com/app/internal/modules/checkout"
	"bzmarket.com/app/internal/modules/orders"
	"bzmarket.com/app/internal/modules/users"
	"bzmarket.com/app/internal/shared/apperr"
	"bzmarket.com/app/pkg/view"
)

type OrdersHandler struct {
	svc *orders.Service
}

func NewOrdersHandler(svc *orders.Service) *OrdersHandler {
	return &OrdersHandler{svc: svc}
}

type placeOrderInput struct {
	FullName string `json:"fullName" binding:"required,max=255"`
	Phone    string `json:"phone" binding:"required,max=32"`
	Address  string `json:"address" binding:"required,max=1000"`
}

func (h *OrdersHandler) Place(c *gin.Context) {
	u, _ := middleware.CurrentUser(c)

	var in placeOrderInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Certains champs sont invalides.", validation.FromBindError(err, &in)))
		return
	}

	o, err := h.svc.PlaceOrder(c.Request.Context(), u.ID, orders.ShippingInfo{
		Name:    in.FullName,
		Phone:   in.Phone,
		Address: in.Address,
	})
	if err != nil {
		switch {
		case errors.Is(err, orders.ErrEmptyCart):
			middleware.Fail(c, apperr.InvalidErr("Votre panier est vide.", nil))
		default:
			var oos *checkout.OutOfStockError
			if errors.As(err, &oos) {
				middleware.Fail(c, apperr.ConflictErr(outOfStockMessage(oos)))
				return
			}
			middleware.Fail(c, apperr.Wrap(err))
		}
		return
	}

	c.JSON(http.StatusCreated, orderDetail(o))
}

func (h *OrdersHandler) List(c *gin.Context) {
	u, _ := middleware.CurrentUser(c)

	params := orders.ListByUserParams{
		UserID:   u.ID,
		Page:     intQuery(c, "page", 1, 0),
		PageSize: intQuery(c, "pageSize", 20, 100),
		Status:   c.Query("status"),
	}
	res, err := h.svc.Repo().ListByUser(c.Request.Context(), params)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, ordersPage(res, params.Page, params.PageSize, params.Status))
}

// VendorList shows orders containing at least one of the vendor's items.
func (h *OrdersHandler) VendorList(c *gin.Context) {
	u, _ := middleware.CurrentUser(c)

	page := intQuery(c, "page", 1, 0)
	size := intQuery(c, "pageSize", 20, 100)
	res, err := h.svc.Repo().ListByVendor(c.Request.Context(), u.ID, page, size)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, ordersPage(res, page, size, ""))
}

func (h *OrdersHandler) Detail(c *gin.Context) {
	u, _ := middleware.CurrentUser(c)

	o, err := h.svc.Repo().GetWithItems(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			middleware.Fail(c, apperr.NotFoundErr("Commande introuvable."))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	if !canSeeOrder(u, o) {
		middleware.Fail(c, apperr.NotFoundErr("Commande introuvable."))
		return
	}
	c.JSON(http.StatusOK, orderDetail(o))
}

type transitionInput struct {
	Action string `json:"action" binding:"required,oneof=pay ship deliver cancel"`
	Note   string `json:"note" binding:"omitempty,max=1000"`
}

// Transition moves an order along its lifecycle. Buyers may pay or cancel
// their own orders; vendors ship and deliver orders holding their items;
// admins may do anything.
func (h *OrdersHandler) Transition(c *gin.Context) {
	u, _ := middleware.CurrentUser(c)

	var in transitionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Certains champs sont invalides.", validation.FromBindError(err, &in)))
		return
	}

	o, err := h.svc.Repo().GetWithItems(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			middleware.Fail(c, apperr.NotFoundErr("Commande introuvable."))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	if !canTransition(u, o, in.Action) {
		middleware.Fail(c, apperr.ForbiddenErr("Action non autorisée sur cette commande."))
		return
	}

	err = h.svc.Transition(c.Request.Context(), orders.TransitionInput{
		OrderID:     o.ID,
		ActorUserID: u.ID,
		Action:      in.Action,
		Note:        in.Note,
	})
	if err != nil {
		switch {
		case errors.Is(err, orders.ErrInvalidTransition):
			middleware.Fail(c, apperr.ConflictErr("Cette transition n'est pas possible dans l'état actuel."))
		case errors.Is(err, orders.ErrNotActionable):
			middleware.Fail(c, apperr.InvalidErr("Requête incomplète.", nil))
		default:
			middleware.Fail(c, apperr.Wrap(err))
		}
		return
	}

	h.Detail(c)
}

func canSeeOrder(u users.User, o orders.Order) bool {
	if u.Role == users.RoleAdmin || o.UserID == u.ID {
		return true
	}
	for _, it := range o.Items {
		if it.VendorID == u.ID {
			return true
		}
	}
	return false
}

func canTransition(u users.User, o orders.Order, action string) bool {
	if u.Role == users.RoleAdmin {
		return true
	}
	switch action {
	case "pay", "cancel":
		return o.UserID == u.ID
	case "ship", "deliver":
		for _, it := range o.Items {
			if it.VendorID == u.ID {
				return true
			}
		}
	}
	return false
}

func ordersPage(res orders.ListResult, page, size int, status string) view.OrdersPage {
	items := make([]view.OrderListItem, 0, len(res.Items))
	for _, it := range res.Items {
		items = append(items, view.OrderListItem{
			ID:         it.Order.ID,
			CreatedAt:  it.Order.CreatedAt,
			Status:     it.Order.Status,
			TotalCents: it.Order.TotalCents,
			Total:      view.MoneyFromCents(it.Order.TotalCents, it.Order.Currency),
			Currency:   it.Order.Currency,
			ItemCount:  it.Count,
			PaidAt:     it.Order.PaidAt,
		})
	}
	totalPages := int((res.Total + int64(size) - 1) / int64(size))
	if totalPages < 1 {
		totalPages = 1
	}
	return view.OrdersPage{
		Items:      items,
		Total:      res.Total,
		Page:       page,
		PageSize:   size,
		TotalPages: totalPages,
		Status:     status,
	}
}

func orderDetail(o orders.Order) view.OrderDetail {
	out := view.OrderDetail{
		ID:        o.ID,
		Status:    o.Status,
		Currency:  o.Currency,
		CreatedAt: o.CreatedAt,
		PaidAt:    o.PaidAt,
		Shipping: view.ShippingAddress{
			FullName: o.ShippingName,
			Phone:    o.ShippingPhone,
			Address:  o.ShippingAddress,
		},
		TotalCents: o.TotalCents,
		Total:      view.MoneyFromCents(o.TotalCents, o.Currency),
		Items:      make([]view.OrderItemView, 0, len(o.Items)),
	}
	subtotal := 0
	for _, it := range o.Items {
		subtotal += it.LineTotalCents
		out.Items = append(out.Items, view.OrderItemView{
			ProductName: it.ProductName,
			SKU:         it.SKU,
			Options:     optionsLabel(it.OptionsJSON),
			Qty:         it.Quantity,
			UnitCents:   it.UnitPriceCents,
			LineCents:   it.LineTotalCents,
			Unit:        view.MoneyFromCents(it.UnitPriceCents, o.Currency),
			Line:        view.MoneyFromCents(it.LineTotalCents, o.Currency),
		})
	}
	out.SubtotalCents = subtotal
	out.Subtotal = view.MoneyFromCents(subtotal, o.Currency)
	return out
}

// optionsLabel renders {"Taille":"M","Couleur":"Noir"} as "Couleur: Noir, Taille: M".
func optionsLabel(raw []byte) string {
	if len(raw) == 0 {
		return ""
	}
	var m map[string]string
	if err := json.Unmarshal(raw, &m); err != nil {
		return ""
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+m[k])
	}
	return strings.Join(parts, ", ")
}

func outOfStockMessage(e *checkout.OutOfStockError) string {
	if len(e.Items) == 0 {
		return "Stock insuffisant pour un ou plusieurs articles."
	}
	parts := make([]string, 0, len(e.Items))
	for _, it := range e.Items {
		parts = append(parts, fmt.Sprintf("%s (demandé %d, disponible %d)", it.VariantID, it.Requested, it.Available))
	}
	return "Stock insuffisant pour : " + strings.Join(parts, ", ")
}

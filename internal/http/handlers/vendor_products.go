package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"bzmarket.com/app/internal/http/middleware"
	"bzmarket.com/app/internal/http/validation"
	"bzmarket.com/app/internal/modules/catalog"
	"bzmarket.com/app/internal/modules/products"
	"bzmarket.com/app/internal/shared/apperr"
	"bzmarket.com/app/internal/storage"
	"bzmarket.com/app/pkg/view"
)

// VendorProductsHandler is the vendor dashboard API: product creation with
// variant generation, bulk edits, images.
type VendorProductsHandler struct {
	svc     *products.Service
	uploads storage.Storage
}

func NewVendorProductsHandler(svc *products.Service, uploads storage.Storage) *VendorProductsHandler {
	return &VendorProductsHandler{svc: svc, uploads: uploads}
}

func (h *VendorProductsHandler) List(c *gin.Context) {
	u, _ := middleware.CurrentUser(c)

	limit := intQuery(c, "limit", 50, 200)
	page := intQuery(c, "page", 1, 0)
	prods, err := h.svc.Repo().ListByVendor(c.Request.Context(), u.ID, limit, (page-1)*limit)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	items := make([]view.VendorProductListItem, 0, len(prods))
	for _, p := range prods {
		totalStock := 0
		for _, v := range p.Variants {
			totalStock += v.Stock
		}
		items = append(items, view.VendorProductListItem{
			ID:           p.ID,
			Name:         p.Name,
			Slug:         p.Slug,
			Status:       p.Status,
			VariantCount: len(p.Variants),
			TotalStock:   totalStock,
		})
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "page": page})
}

type optionInput struct {
	Name   string   `json:"name" binding:"required,max=64"`
	Values []string `json:"values" binding:"required,min=1"`
}

type createProductInput struct {
	CategoryCode   string            `json:"categoryCode" binding:"omitempty,max=64"`
	Name           string            `json:"name" binding:"required,max=255"`
	Description    string            `json:"description" binding:"omitempty,max=10000"`
	Attributes     map[string]string `json:"attributes"`
	Options        []optionInput     `json:"options" binding:"omitempty,dive"`
	BaseSKU        string            `json:"baseSku" binding:"omitempty,max=32"`
	BasePriceCents int               `json:"basePriceCents" binding:"gte=0"`
	BaseStock      int               `json:"baseStock" binding:"gte=0"`
	Publish        bool              `json:"publish"`
}

func (h *VendorProductsHandler) Create(c *gin.Context) {
	u, _ := middleware.CurrentUser(c)

	var in createProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Certains champs sont invalides.", validation.FromBindError(err, &in)))
		return
	}

	p, err := h.svc.CreateWithVariants(c.Request.Context(), u.ID, products.CreateInput{
		CategoryCode:   in.CategoryCode,
		Name:           in.Name,
		Description:    in.Description,
		Attributes:     in.Attributes,
		Options:        catalogOptions(in.Options),
		BaseSKU:        in.BaseSKU,
		BasePriceCents: in.BasePriceCents,
		BaseStock:      in.BaseStock,
		Currency:       "XOF",
		Publish:        in.Publish,
	})
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, productDetail(p))
}

type previewInput struct {
	Options        []optionInput `json:"options" binding:"required,min=1,dive"`
	BaseSKU        string        `json:"baseSku" binding:"omitempty,max=32"`
	BasePriceCents int           `json:"basePriceCents" binding:"gte=0"`
	BaseStock      int           `json:"baseStock" binding:"gte=0"`
}

// Preview runs the variant generator without persisting anything, so the
// form can show the grid live.
func (h *VendorProductsHandler) Preview(c *gin.Context) {
	var in previewInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Certains champs sont invalides.", validation.FromBindError(err, &in)))
		return
	}

	opts := catalogOptions(in.Options)
	if res := catalog.ValidateOptions(opts); !res.Valid {
		middleware.Fail(c, apperr.InvalidErr("Options de variantes invalides.", map[string]string{
			"options": strings.Join(res.Errors, " ; "),
		}))
		return
	}

	baseSKU := strings.TrimSpace(in.BaseSKU)
	if baseSKU == "" {
		baseSKU = "SKU"
	}
	batch := catalog.GenerateVariants(opts, catalog.GenerateParams{
		BaseSKU:        baseSKU,
		BasePriceCents: in.BasePriceCents,
		BaseStock:      in.BaseStock,
	})

	out := view.VariantPreview{Total: len(batch), Variants: make([]view.VariantView, 0, len(batch))}
	for _, v := range batch {
		out.Variants = append(out.Variants, view.VariantView{
			SKU:         v.SKU,
			Options:     v.Options,
			PriceCents:  v.PriceCents,
			Price:       view.MoneyFromCents(v.PriceCents, "XOF"),
			Stock:       v.Stock,
			IsAvailable: v.IsAvailable,
			Position:    v.Position,
		})
	}
	c.JSON(http.StatusOK, out)
}

func (h *VendorProductsHandler) Get(c *gin.Context) {
	u, _ := middleware.CurrentUser(c)

	p, err := h.svc.Repo().GetOwned(c.Request.Context(), u.ID, c.Param("id"))
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

type updateProductInput struct {
	Name        *string `json:"name" binding:"omitempty,max=255"`
	Description *string `json:"description" binding:"omitempty,max=10000"`
	Status      *string `json:"status" binding:"omitempty,oneof=draft active archived"`
}

func (h *VendorProductsHandler) Update(c *gin.Context) {
	u, _ := middleware.CurrentUser(c)

	var in updateProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Certains champs sont invalides.", validation.FromBindError(err, &in)))
		return
	}

	fields := map[string]any{}
	if in.Name != nil && strings.TrimSpace(*in.Name) != "" {
		fields["name"] = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.Status != nil {
		fields["status"] = *in.Status
	}
	if len(fields) == 0 {
		middleware.Fail(c, apperr.InvalidErr("Aucune modification fournie.", nil))
		return
	}

	if err := h.svc.Repo().UpdateProduct(c.Request.Context(), u.ID, c.Param("id"), fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			middleware.Fail(c, apperr.NotFoundErr("Produit introuvable."))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	h.Get(c)
}

func (h *VendorProductsHandler) Delete(c *gin.Context) {
	u, _ := middleware.CurrentUser(c)

	if err := h.svc.Repo().DeleteProduct(c.Request.Context(), u.ID, c.Param("id")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			middleware.Fail(c, apperr.NotFoundErr("Produit introuvable."))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

type bulkEditInput struct {
	Scope       string `json:"scope" binding:"required,oneof=all group toggle"`
	Field       string `json:"field" binding:"omitempty,oneof=price stock is_available"`
	Value       any    `json:"value"`
	GroupOption string `json:"groupOption" binding:"omitempty,max=64"`
	GroupValue  string `json:"groupValue" binding:"omitempty,max=64"`
}

func (h *VendorProductsHandler) BulkEdit(c *gin.Context) {
	u, _ := middleware.CurrentUser(c)

	var in bulkEditInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Certains champs sont invalides.", validation.FromBindError(err, &in)))
		return
	}

	updated, err := h.svc.BulkEditVariants(c.Request.Context(), u.ID, c.Param("id"), products.BulkEditInput{
		Scope:       in.Scope,
		Field:       catalog.VariantField(in.Field),
		Value:       in.Value,
		GroupOption: in.GroupOption,
		GroupValue:  in.GroupValue,
	})
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	views := make([]view.VariantView, 0, len(updated))
	for _, v := range updated {
		views = append(views, variantView(v))
	}
	c.JSON(http.StatusOK, gin.H{"updated": len(updated), "variants": views})
}

type updateVariantInput struct {
	PriceCents  int  `json:"priceCents" binding:"gte=0"`
	Stock       int  `json:"stock" binding:"gte=0"`
	IsAvailable bool `json:"isAvailable"`
}

func (h *VendorProductsHandler) UpdateVariant(c *gin.Context) {
	u, _ := middleware.CurrentUser(c)

	var in updateVariantInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Certains champs sont invalides.", validation.FromBindError(err, &in)))
		return
	}

	err := h.svc.UpdateVariant(c.Request.Context(), u.ID, c.Param("id"), c.Param("variantId"),
		in.PriceCents, in.Stock, in.IsAvailable)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	h.Get(c)
}

func (h *VendorProductsHandler) UploadImage(c *gin.Context) {
	u, _ := middleware.CurrentUser(c)

	p, err := h.svc.Repo().GetOwned(c.Request.Context(), u.ID, c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			middleware.Fail(c, apperr.NotFoundErr("Produit introuvable."))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	fh, err := c.FormFile("image")
	if err != nil {
		middleware.Fail(c, apperr.InvalidErr("Fichier image manquant.", map[string]string{"image": "Ce champ est obligatoire."}))
		return
	}

	f, err := fh.Open()
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	defer f.Close()

	res, err := h.uploads.Put(c.Request.Context(), f, storage.PutInput{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
	})
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrImageTooLarge):
			middleware.Fail(c, apperr.InvalidErr("Image trop volumineuse (5 Mo max).", nil))
		case errors.Is(err, storage.ErrBadImageType):
			middleware.Fail(c, apperr.InvalidErr("Format d'image non pris en charge.", nil))
		default:
			middleware.Fail(c, apperr.Wrap(err))
		}
		return
	}

	img, err := h.svc.Repo().AddImage(c.Request.Context(), p.ID, res.Key, res.URL, len(p.Images))
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusCreated, view.ImageView{ID: img.ID, URL: img.URL, Position: img.Position})
}

func (h *VendorProductsHandler) DeleteImage(c *gin.Context) {
	u, _ := middleware.CurrentUser(c)

	p, err := h.svc.Repo().GetOwned(c.Request.Context(), u.ID, c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			middleware.Fail(c, apperr.NotFoundErr("Produit introuvable."))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	imageID := c.Param("imageId")
	var key string
	for _, img := range p.Images {
		if img.ID == imageID {
			key = img.StorageKey
		}
	}

	if err := h.svc.Repo().DeleteImage(c.Request.Context(), p.ID, imageID); err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	if key != "" {
		// le fichier orphelin n'est pas bloquant
		_ = h.uploads.Delete(c.Request.Context(), key)
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func catalogOptions(in []optionInput) []catalog.VariantOption {
	out := make([]catalog.VariantOption, 0, len(in))
	for _, o := range in {
		out = append(out, catalog.VariantOption{Name: o.Name, Values: o.Values})
	}
	return out
}

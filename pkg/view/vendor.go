package view

// VendorProductListItem is the vendor dashboard listing row.
type VendorProductListItem struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Status       string `json:"status"`
	VariantCount int    `json:"variantCount"`
	TotalStock   int    `json:"totalStock"`
}

// VariantPreview is returned by the dry-run generation endpoint so the
// vendor sees the grid before committing.
type VariantPreview struct {
	Total    int           `json:"total"`
	Variants []VariantView `json:"variants"`
}

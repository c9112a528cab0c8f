package checkout

import (
	"fmt"
	"strings"
)

// OutOfStockItem records one variant whose stock could not cover the
// requested quantity at deduction time.
type OutOfStockItem struct {
	VariantID string
	Requested int
	Available int
}

// OutOfStockError carries every shortage found in one deduction pass, so a
// single checkout attempt surfaces all problem lines at once.
type OutOfStockError struct {
	Items []OutOfStockItem
}

func (e *OutOfStockError) Error() string {
	if len(e.Items) == 0 {
		return "out of stock"
	}
	parts := make([]string, 0, len(e.Items))
	for _, it := range e.Items {
		parts = append(parts, fmt.Sprintf("variant=%s requested=%d available=%d", it.VariantID, it.Requested, it.Available))
	}
	return "out of stock: " + strings.Join(parts, "; ")
}

package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutOfStockErrorListsEveryShortage(t *testing.T) {
	err := &OutOfStockError{Items: []OutOfStockItem{
		{VariantID: "v-1", Requested: 3, Available: 1},
		{VariantID: "v-2", Requested: 2, Available: 0},
	}}
	msg := err.Error()
	assert.Contains(t, msg, "variant=v-1 requested=3 available=1")
	assert.Contains(t, msg, "variant=v-2 requested=2 available=0")
}

func TestOutOfStockErrorEmpty(t *testing.T) {
	err := &OutOfStockError{}
	assert.Equal(t, "out of stock", err.Error())
}

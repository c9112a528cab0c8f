package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoneyFromCents(t *testing.T) {
	assert.Equal(t, "25 000 F CFA", MoneyFromCents(2500000, "XOF"))
	assert.Equal(t, "0 F CFA", MoneyFromCents(0, "XOF"))
	assert.Equal(t, "1 250 000 F CFA", MoneyFromCents(125000000, "XOF"))
	assert.Equal(t, "19,99 €", MoneyFromCents(1999, "EUR"))
	assert.Equal(t, "$1 000,50", MoneyFromCents(100050, "USD"))
	assert.Equal(t, "12,00 GBP", MoneyFromCents(1200, "GBP"))
}

func TestGroupThousands(t *testing.T) {
	assert.Equal(t, "0", groupThousands(0))
	assert.Equal(t, "999", groupThousands(999))
	assert.Equal(t, "1 000", groupThousands(1000))
	assert.Equal(t, "12 345 678", groupThousands(12345678))
	assert.Equal(t, "-5 000", groupThousands(-5000))
}

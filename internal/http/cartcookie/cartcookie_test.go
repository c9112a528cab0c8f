package cartcookie

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bzmarket.com/app/internal/modules/cart"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	c := New([]byte("secret-test"), "bz_cart", false)

	lines := []cart.Line{
		{VariantID: "v1", Qty: 2},
		{VariantID: "v2", Qty: 1},
	}
	v, err := c.Encode(lines)
	require.NoError(t, err)

	got, err := c.Decode(v)
	require.NoError(t, err)
	assert.Equal(t, lines, got)
}

func TestDecodeRejectsTampering(t *testing.T) {
	c := New([]byte("secret-test"), "bz_cart", false)
	v, err := c.Encode([]cart.Line{{VariantID: "v1", Qty: 1}})
	require.NoError(t, err)

	payload, sig, _ := strings.Cut(v, ".")
	forged, err := New([]byte("other-secret"), "bz_cart", false).
		Encode([]cart.Line{{VariantID: "v1", Qty: 99}})
	require.NoError(t, err)
	forgedPayload, _, _ := strings.Cut(forged, ".")

	_, err = c.Decode(forgedPayload + "." + sig)
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = c.Decode(payload)
	assert.ErrorIs(t, err, ErrInvalid, "missing signature")

	_, err = c.Decode("")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestUpsertAndAdd(t *testing.T) {
	lines := []cart.Line{{VariantID: "a", Qty: 1}}

	lines = Add(lines, "a", 2)
	assert.Equal(t, []cart.Line{{VariantID: "a", Qty: 3}}, lines)

	lines = Add(lines, "b", 1)
	assert.Len(t, lines, 2)

	lines = Upsert(lines, "a", 10)
	assert.Equal(t, 10, lines[0].Qty)

	lines = Upsert(lines, "a", 0)
	assert.Equal(t, []cart.Line{{VariantID: "b", Qty: 1}}, lines)

	// remove absent: no-op
	assert.Equal(t, lines, Upsert(lines, "zzz", 0))
}

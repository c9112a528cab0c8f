// Package cartcookie keeps the guest cart in a signed cookie so anonymous
// visitors never touch the database. On login the lines merge into the
// user's cart and the cookie is dropped.
package cartcookie

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"bzmarket.com/app/internal/modules/cart"
)

var ErrInvalid = errors.New("invalid cart cookie")

// MaxLines caps le panier invité.
const MaxLines = 50

type Codec struct {
	secret []byte
	name   string
	secure bool
}

func New(secret []byte, name string, secure bool) *Codec {
	return &Codec{secret: secret, name: name, secure: secure}
}

// Encode serializes lines as base64(json) + "." + base64(hmac).
func (c *Codec) Encode(lines []cart.Line) (string, error) {
	if len(lines) > MaxLines {
		lines = lines[:MaxLines]
	}
	raw, err := json.Marshal(lines)
	if err != nil {
		return "", err
	}
	payload := base64.RawURLEncoding.EncodeToString(raw)
	return payload + "." + c.sign(payload), nil
}

func (c *Codec) Decode(v string) ([]cart.Line, error) {
	payload, sig, ok := strings.Cut(v, ".")
	if !ok || payload == "" {
		return nil, ErrInvalid
	}
	if !hmac.Equal([]byte(c.sign(payload)), []byte(sig)) {
		return nil, ErrInvalid
	}
	raw, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return nil, ErrInvalid
	}
	var lines []cart.Line
	if err := json.Unmarshal(raw, &lines); err != nil {
		return nil, ErrInvalid
	}
	return lines, nil
}

// Read returns the guest lines, empty on a missing or tampered cookie.
func (c *Codec) Read(ctx *gin.Context) []cart.Line {
	v, err := ctx.Cookie(c.name)
	if err != nil || v == "" {
		return nil
	}
	lines, err := c.Decode(v)
	if err != nil {
		c.Clear(ctx)
		return nil
	}
	return lines
}

func (c *Codec) Write(ctx *gin.Context, lines []cart.Line) error {
	v, err := c.Encode(lines)
	if err != nil {
		return err
	}
	maxAge := int((30 * 24 * time.Hour).Seconds())
	ctx.SetSameSite(2) // Lax
	ctx.SetCookie(c.name, v, maxAge, "/", "", c.secure, true)
	return nil
}

func (c *Codec) Clear(ctx *gin.Context) {
	ctx.SetSameSite(2)
	ctx.SetCookie(c.name, "", -1, "/", "", c.secure, true)
}

// Upsert sets the quantity of variantID in lines; qty <= 0 removes it.
func Upsert(lines []cart.Line, variantID string, qty int) []cart.Line {
	out := make([]cart.Line, 0, len(lines)+1)
	seen := false
	for _, ln := range lines {
		if ln.VariantID == variantID {
			seen = true
			if qty > 0 {
				out = append(out, cart.Line{VariantID: variantID, Qty: qty})
			}
			continue
		}
		out = append(out, ln)
	}
	if !seen && qty > 0 {
		out = append(out, cart.Line{VariantID: variantID, Qty: qty})
	}
	return out
}

// Add bumps the quantity of variantID by qty, inserting if absent.
func Add(lines []cart.Line, variantID string, qty int) []cart.Line {
	for _, ln := range lines {
		if ln.VariantID == variantID {
			return Upsert(lines, variantID, ln.Qty+qty)
		}
	}
	return Upsert(lines, variantID, qty)
}

func (c *Codec) sign(payload string) string {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

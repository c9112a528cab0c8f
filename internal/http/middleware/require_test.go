package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"bzmarket.com/app/internal/modules/users"
)

func guardCtx(role string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/", nil)
	if role != "" {
		c.Set(ctxKeyUser, users.User{ID: "u-1", Role: role})
	}
	return c
}

func TestRequireAuth(t *testing.T) {
	c := guardCtx("")
	RequireAuth()(c)
	assert.True(t, c.IsAborted())

	c = guardCtx(users.RoleClient)
	RequireAuth()(c)
	assert.False(t, c.IsAborted())
}

func TestRequireVendor(t *testing.T) {
	c := guardCtx(users.RoleClient)
	RequireVendor()(c)
	assert.True(t, c.IsAborted())

	c = guardCtx(users.RoleVendor)
	RequireVendor()(c)
	assert.False(t, c.IsAborted())

	// les admins gèrent les catalogues vendeurs pendant le support
	c = guardCtx(users.RoleAdmin)
	RequireVendor()(c)
	assert.False(t, c.IsAborted())
}

func TestRequireAdmin(t *testing.T) {
	c := guardCtx("")
	RequireAdmin()(c)
	assert.True(t, c.IsAborted())

	c = guardCtx(users.RoleVendor)
	RequireAdmin()(c)
	assert.True(t, c.IsAborted())

	c = guardCtx(users.RoleAdmin)
	RequireAdmin()(c)
	assert.False(t, c.IsAborted())
}

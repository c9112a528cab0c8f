package middleware

import (
	"github.com/gin-gonic/gin"

	"bzmarket.com/app/internal/modules/users"
	"bzmarket.com/app/internal/shared/apperr"
)

// RequireAuth rejects anonymous requests.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUser(c); !ok {
			Fail(c, apperr.UnauthorizedErr("Connexion requise."))
			return
		}
		c.Next()
	}
}

// RequireVendor rejects anyone who is not a vendor. Admins pass, they manage
// vendor catalogues during support.
func RequireVendor() gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := CurrentUser(c)
		if !ok {
			Fail(c, apperr.UnauthorizedErr("Connexion requise."))
			return
		}
		if u.Role != users.RoleVendor && u.Role != users.RoleAdmin {
			Fail(c, apperr.ForbiddenErr("Réservé aux vendeurs."))
			return
		}
		c.Next()
	}
}

// RequireAdmin guards the back office.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := CurrentUser(c)
		if !ok {
			Fail(c, apperr.UnauthorizedErr("Connexion requise."))
			return
		}
		if u.Role != users.RoleAdmin {
			Fail(c, apperr.ForbiddenErr("Accès refusé."))
			return
		}
		c.Next()
	}
}

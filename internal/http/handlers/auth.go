package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bzmarket.com/app/internal/http/cartcookie"
	"bzmarket.com/app/internal/http/middleware"
	"bzmarket.com/app/internal/http/validation"
	"bzmarket.com/app/internal/modules/cart"
	"bzmarket.com/app/internal/modules/users"
	"bzmarket.com/app/internal/shared/apperr"
)

type AuthHandler struct {
	users   *users.Service
	cart    *cart.Service
	cookies *cartcookie.Codec
	sess    middleware.SessionCfg
}

func NewAuthHandler(u *users.Service, cs *cart.Service, cc *cartcookie.Codec, sess middleware.SessionCfg) *AuthHandler {
	return &AuthHandler{users: u, cart: cs, cookies: cc, sess: sess}
}

type registerInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=128"`
	Role     string `json:"role" binding:"omitempty,oneof=client vendor"`
	ShopName string `json:"shopName" binding:"omitempty,max=255"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var in registerInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Certains champs sont invalides.", validation.FromBindError(err, &in)))
		return
	}
	if in.Role == "" {
		in.Role = users.RoleClient
	}

	u, err := h.users.Register(c.Request.Context(), users.RegisterInput{
		Email:    in.Email,
		Password: in.Password,
		Role:     in.Role,
		ShopName: in.ShopName,
	})
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	if err := h.login(c, u); err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusCreated, userPayload(u))
}

type loginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var in loginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Certains champs sont invalides.", validation.FromBindError(err, &in)))
		return
	}

	u, err := h.users.Authenticate(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	if err := h.login(c, u); err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, userPayload(u))
}

// login opens the session and folds the guest cart into the user's cart.
func (h *AuthHandler) login(c *gin.Context, u users.User) error {
	if err := middleware.CreateSession(c, h.sess, u.ID); err != nil {
		return err
	}
	if lines := h.cookies.Read(c); len(lines) > 0 {
		// un échec de fusion ne bloque pas la connexion
		_ = h.cart.MergeLines(c.Request.Context(), u.ID, lines)
		h.cookies.Clear(c)
	}
	return nil
}

func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.DestroySession(c, h.sess)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *AuthHandler) Me(c *gin.Context) {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		middleware.Fail(c, apperr.UnauthorizedErr("Connexion requise."))
		return
	}
	c.JSON(http.StatusOK, userPayload(u))
}

func userPayload(u users.User) gin.H {
	out := gin.H{
		"id":            u.ID,
		"email":         u.Email,
		"role":          u.Role,
		"emailVerified": u.EmailVerifiedAt != nil,
		"phoneVerified": u.PhoneVerifiedAt != nil,
	}
	if u.ShopName != nil {
		out["shopName"] = *u.ShopName
	}
	if u.ShopSlug != nil {
		out["shopSlug"] = *u.ShopSlug
	}
	return out
}

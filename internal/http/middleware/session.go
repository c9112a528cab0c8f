package middleware

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"bzmarket.com/app/internal/modules/users"
)

const ctxKeyUser = "current_user"

// Session is a database-backed login session. The cookie carries an opaque
// token; only its sha256 lands in the table.
type Session struct {
	ID         string    `gorm:"primaryKey;type:char(36)"`
	UserID     string    `gorm:"type:char(36);not null;index:ix_sessions_user_id"`
	TokenHash  string    `gorm:"type:char(64);not null;uniqueIndex:ux_sessions_token_hash"`
	ExpiresAt  time.Time `gorm:"type:datetime(3);not null"`
	CreatedAt  time.Time `gorm:"type:datetime(3);not null"`
	LastSeenAt time.Time `gorm:"type:datetime(3);not null"`
}

func (Session) TableName() string { return "sessions" }

type SessionCfg struct {
	DB         *gorm.DB
	CookieName string
	Secure     bool
	TTL        time.Duration
}

// SessionAuth resolves the session cookie into the current user. Anonymous
// requests pass through untouched; an expired or unknown token clears the
// cookie.
func SessionAuth(cfg SessionCfg) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cfg.CookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		var sess Session
		if err := cfg.DB.WithContext(c.Request.Context()).
			Where("token_hash = ? AND expires_at > ?", hashToken(token), time.Now()).
			First(&sess).Error; err != nil {
			clearSessionCookie(c, cfg)
			c.Next()
			return
		}

		var u users.User
		if err := cfg.DB.WithContext(c.Request.Context()).
			First(&u, "id = ?", sess.UserID).Error; err != nil {
			clearSessionCookie(c, cfg)
			c.Next()
			return
		}

		// sliding window, rafraîchi au plus une fois par 5 min
		if time.Since(sess.LastSeenAt) > 5*time.Minute {
			cfg.DB.Model(&Session{}).Where("id = ?", sess.ID).
				Updates(map[string]any{
					"last_seen_at": time.Now(),
					"expires_at":   time.Now().Add(cfg.TTL),
				})
		}

		c.Set(ctxKeyUser, u)
		c.Next()
	}
}

// CurrentUser returns the authenticated user, if any.
func CurrentUser(c *gin.Context) (users.User, bool) {
	v, ok := c.Get(ctxKeyUser)
	if !ok {
		return users.User{}, false
	}
	u, ok := v.(users.User)
	return u, ok
}

// CreateSession stores a new session and sets the cookie on the response.
func CreateSession(c *gin.Context, cfg SessionCfg, userID string) error {
	token := newToken()
	sess := Session{
		ID:         uuid.NewString(),
		UserID:     userID,
		TokenHash:  hashToken(token),
		ExpiresAt:  time.Now().Add(cfg.TTL),
		CreatedAt:  time.Now(),
		LastSeenAt: time.Now(),
	}
	if err := cfg.DB.WithContext(c.Request.Context()).Create(&sess).Error; err != nil {
		return err
	}
	c.SetSameSite(2) // Lax
	c.SetCookie(cfg.CookieName, token, int(cfg.TTL.Seconds()), "/", "", cfg.Secure, true)
	return nil
}

// DestroySession deletes the session behind the cookie and clears it.
func DestroySession(c *gin.Context, cfg SessionCfg) {
	if token, err := c.Cookie(cfg.CookieName); err == nil && token != "" {
		cfg.DB.WithContext(c.Request.Context()).
			Delete(&Session{}, "token_hash = ?", hashToken(token))
	}
	clearSessionCookie(c, cfg)
}

func clearSessionCookie(c *gin.Context, cfg SessionCfg) {
	c.SetSameSite(2)
	c.SetCookie(cfg.CookieName, "", -1, "/", "", cfg.Secure, true)
}

func newToken() string {
	b := make([]byte, 32)
	_, _ = rand.Read(b)
	return base64.RawURLEncoding.EncodeToString(b)
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"bzmarket.com/app/internal/http/middleware"
	"bzmarket.com/app/internal/http/validation"
	"bzmarket.com/app/internal/modules/users"
	"bzmarket.com/app/internal/shared/apperr"
	"bzmarket.com/app/internal/verification"
)

// VerifyHandler drives e-mail and phone verification. One flow serves both
// channels; only the sender and the user column differ.
type VerifyHandler struct {
	verif *verification.Service
	users *users.Repo
}

func NewVerifyHandler(v *verification.Service, u *users.Repo) *VerifyHandler {
	return &VerifyHandler{verif: v, users: u}
}

type startInput struct {
	Channel string `json:"channel" binding:"required,oneof=email phone"`
	// requis pour phone, ignoré pour email (l'adresse du compte fait foi)
	Phone string `json:"phone" binding:"omitempty,e164"`
}

func (h *VerifyHandler) Start(c *gin.Context) {
	u, _ := middleware.CurrentUser(c)

	var in startInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Certains champs sont invalides.", validation.FromBindError(err, &in)))
		return
	}

	target := u.Email
	if in.Channel == verification.ChannelPhone {
		if in.Phone == "" {
			middleware.Fail(c, apperr.InvalidErr("Numéro de téléphone requis.", map[string]string{"phone": "Ce champ est obligatoire."}))
			return
		}
		target = in.Phone
	}

	if err := h.verif.Start(c.Request.Context(), u.ID, in.Channel, target); err != nil {
		middleware.Fail(c, verifError(err))
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"ok": true, "channel": in.Channel})
}

type confirmInput struct {
	Channel string `json:"channel" binding:"required,oneof=email phone"`
	Code    string `json:"code" binding:"required,len=6,numeric"`
}

func (h *VerifyHandler) Confirm(c *gin.Context) {
	u, _ := middleware.CurrentUser(c)

	var in confirmInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Certains champs sont invalides.", validation.FromBindError(err, &in)))
		return
	}

	target, err := h.verif.Confirm(c.Request.Context(), u.ID, in.Channel, in.Code)
	if err != nil {
		middleware.Fail(c, verifError(err))
		return
	}

	now := time.Now()
	if in.Channel == verification.ChannelEmail {
		err = h.users.MarkEmailVerified(c.Request.Context(), u.ID, now)
	} else {
		err = h.users.MarkPhoneVerified(c.Request.Context(), u.ID, target, now)
	}
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "channel": in.Channel})
}

type sentLogView struct {
	Channel string     `json:"channel"`
	Target  string     `json:"target"`
	Status  string     `json:"status"`
	SentAt  *time.Time `json:"sent_at,omitempty"`
}

// History lists the user's recent code deliveries, most recent first.
// Targets are masked; the log is for "did my code leave?" debugging, not for
// re-reading contact details.
func (h *VerifyHandler) History(c *gin.Context) {
	u, _ := middleware.CurrentUser(c)

	logs, err := h.verif.History(c.Request.Context(), u.ID, intQuery(c, "limit", 10, 50))
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	out := make([]sentLogView, 0, len(logs))
	for _, l := range logs {
		out = append(out, sentLogView{
			Channel: l.Channel,
			Target:  maskTarget(l.Channel, l.Target),
			Status:  l.Status,
			SentAt:  l.SentAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"history": out})
}

// maskTarget hides most of the address or number: "c•••@example.com",
// "+225•••••23".
func maskTarget(channel, target string) string {
	if channel == verification.ChannelEmail {
		at := strings.IndexByte(target, '@')
		if at < 1 {
			return "•••"
		}
		return target[:1] + "•••" + target[at:]
	}
	if len(target) <= 6 {
		return "•••"
	}
	return target[:4] + "•••••" + target[len(target)-2:]
}

func verifError(err error) error {
	switch {
	case errors.Is(err, verification.ErrCooldown):
		return apperr.ConflictErr("Un code vient d'être envoyé. Patientez avant de redemander.")
	case errors.Is(err, verification.ErrRateLimited):
		return apperr.ConflictErr("Trop de demandes de code. Réessayez plus tard.")
	case errors.Is(err, verification.ErrBlocked):
		return apperr.ConflictErr("Trop de tentatives échouées. Demandez un nouveau code.")
	case errors.Is(err, verification.ErrInvalidCode):
		return apperr.InvalidErr("Code invalide ou expiré.", map[string]string{"code": "Code invalide ou expiré."})
	default:
		return apperr.Wrap(err)
	}
}

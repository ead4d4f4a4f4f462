package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tompettersson/reparatur-formular/internal/http/middleware"
	"github.com/tompettersson/reparatur-formular/internal/http/validation"
	"github.com/tompettersson/reparatur-formular/internal/modules/users"
	"github.com/tompettersson/reparatur-formular/internal/shared/apperr"
)

type AuthHandler struct {
	Users      *users.Service
	SessionCfg middleware.SessionCfg
}

func NewAuthHandler(svc *users.Service, cfg middleware.SessionCfg) *AuthHandler {
	return &AuthHandler{Users: svc, SessionCfg: cfg}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fields := validation.FromBindError(err, &req)
		middleware.Fail(c, apperr.InvalidErr("Bitte überprüfen Sie Ihre Eingaben.", fields))
		return
	}

	staff, err := h.Users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, users.ErrInvalidCredentials) {
			middleware.Fail(c, apperr.UnauthorizedErr("E-Mail oder Passwort ist falsch."))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	sess, err := middleware.CreateSession(h.SessionCfg, staff.ID)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	c.SetCookie(h.SessionCfg.CookieName, sess.ID,
		int(h.SessionCfg.TTL.Seconds()), "/", "", h.SessionCfg.Secure, true)
	c.JSON(http.StatusOK, gin.H{
		"staff": gin.H{"id": staff.ID, "email": staff.Email, "name": staff.Name},
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if sessionID, err := c.Cookie(h.SessionCfg.CookieName); err == nil && sessionID != "" {
		_ = middleware.DeleteSession(h.SessionCfg, sessionID)
	}
	c.SetCookie(h.SessionCfg.CookieName, "", -1, "/", "", h.SessionCfg.Secure, true)
	c.Status(http.StatusNoContent)
}

// Me lets the admin frontend restore its login state after a reload.
func (h *AuthHandler) Me(c *gin.Context) {
	staff, ok := middleware.CurrentStaff(c)
	if !ok {
		middleware.Fail(c, apperr.UnauthorizedErr("Anmeldung erforderlich."))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"staff": gin.H{"id": staff.ID, "email": staff.Email, "name": staff.Name},
	})
}

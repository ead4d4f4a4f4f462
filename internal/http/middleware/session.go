package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tompettersson/reparatur-formular/internal/modules/users"
)

const (
	ctxKeyStaff = "staff_user"
)

// SessionCfg holds configuration for the staff session middleware.
type SessionCfg struct {
	DB         *gorm.DB
	CookieName string
	Secure     bool
	TTL        time.Duration
}

// Session is a database-backed staff session.
type Session struct {
	ID         string    `gorm:"primaryKey;type:char(36)"`
	StaffID    string    `gorm:"type:char(36);not null;index:ix_sessions_staff_id"`
	ExpiresAt  time.Time `gorm:"type:datetime(3);not null"`
	CreatedAt  time.Time `gorm:"type:datetime(3);not null"`
	LastSeenAt time.Time `gorm:"type:datetime(3);not null"`
}

func (Session) TableName() string { return "sessions" }

// SessionMiddleware resolves the session cookie to a staff user and stores
// it in the request context. Requests without a valid session pass through
// anonymously; RequireStaff is the gate.
func SessionMiddleware(cfg SessionCfg) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(cfg.CookieName)
		if err != nil || sessionID == "" {
			c.Next()
			return
		}

		var sess Session
		if err := cfg.DB.Where("id = ? AND expires_at > ?", sessionID, time.Now()).First(&sess).Error; err != nil {
			// Expired or unknown session, drop the cookie.
			c.SetCookie(cfg.CookieName, "", -1, "/", "", cfg.Secure, true)
			c.Next()
			return
		}

		var staff users.StaffUser
		if err := cfg.DB.First(&staff, "id = ?", sess.StaffID).Error; err != nil {
			c.SetCookie(cfg.CookieName, "", -1, "/", "", cfg.Secure, true)
			c.Next()
			return
		}

		c.Set("session", &sess)
		c.Set(ctxKeyStaff, staff)

		c.Next()
	}
}

// CreateSession opens a new session for a staff user and returns it.
func CreateSession(cfg SessionCfg, staffID string) (*Session, error) {
	now := time.Now()
	sess := &Session{
		ID:         uuid.NewString(),
		StaffID:    staffID,
		ExpiresAt:  now.Add(cfg.TTL),
		CreatedAt:  now,
		LastSeenAt: now,
	}
	if err := cfg.DB.Create(sess).Error; err != nil {
		return nil, err
	}
	return sess, nil
}

// DeleteSession removes a session by ID.
func DeleteSession(cfg SessionCfg, sessionID string) error {
	return cfg.DB.Delete(&Session{}, "id = ?", sessionID).Error
}

// CurrentStaff returns the authenticated staff user, if any.
func CurrentStaff(c *gin.Context) (users.StaffUser, bool) {
	v, ok := c.Get(ctxKeyStaff)
	if !ok {
		return users.StaffUser{}, false
	}
	u, ok := v.(users.StaffUser)
	return u, ok
}

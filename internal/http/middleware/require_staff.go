package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/tompettersson/reparatur-formular/internal/shared/apperr"
)

// RequireStaff rejects unauthenticated requests before any handler logic
// runs. There are no roles beyond staff, so a valid session is sufficient.
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentStaff(c); !ok {
			Fail(c, apperr.UnauthorizedErr("Anmeldung erforderlich."))
			return
		}
		c.Next()
	}
}

package middlewares

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuscanteen/canteen-app/models"
	"github.com/campuscanteen/canteen-app/utils"
)

// RequireStaff rejects any caller whose token does not carry the staff role.
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			utils.RespondError(c, http.StatusUnauthorized, fmt.Errorf("unauthorized"))
			c.Abort()
			return
		}

		if role != models.RoleStaff {
			utils.RespondError(c, http.StatusForbidden, fmt.Errorf("staff access required"))
			c.Abort()
			return
		}

		c.Next()
	}
}

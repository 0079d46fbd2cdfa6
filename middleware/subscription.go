package middleware

import (
	"net/http"

	"flowdesk/models"
	"flowdesk/services/user"

	"github.com/gin-gonic/gin"
)

// RequirePlan gates a route group behind a subscription tier. Must run after
// JWTAuthMiddleware so the userID is already in context.
func RequirePlan(userSvc user.UserService, plan models.Plan) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("userID")
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		u, err := userSvc.GetUserByID(userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication error",
				"code":  0,
			})
			return
		}

		if plan == models.PlanPro && u.Plan != models.PlanPro {
			c.AbortWithStatusJSON(http.StatusPaymentRequired, gin.H{
				"error": "This feature requires a Pro subscription",
			})
			return
		}

		c.Next()
	}
}

package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gramseva/gramseva-backend/constants"
	"github.com/gramseva/gramseva-backend/utils"
)

func RoleAuthorization(allowedRoles ...constants.RoleEnum) gin.HandlerFunc {
	roleSet := make(map[string]struct{})
	for _, r := range allowedRoles {
		roleSet[string(r)] = struct{}{}
	}

	return func(c *gin.Context) {
		claimsVal, exists := c.Get("userClaims")
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "missing user claims"})
			return
		}

		claims, ok := claimsVal.(*utils.JWTClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid user claims"})
			return
		}

		if _, allowed := roleSet[claims.Role]; !allowed {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "unauthorized: insufficient role"})
			return
		}

		c.Next()
	}
}

package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gramseva/gramseva-backend/models"
	"github.com/gramseva/gramseva-backend/utils"
)

func AuthMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "missing Authorization header"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenStr == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid Authorization header format"})
			return
		}

		claims, err := validateJWT(tokenStr, db)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
			return
		}

		// Attach claims to context
		c.Set("userClaims", claims)
		c.Next()
	}
}

func validateJWT(tokenStr string, db *gorm.DB) (*utils.JWTClaims, error) {
	claims, err := utils.ParseJWT(tokenStr)
	if err != nil {
		return nil, errors.New("invalid or expired token")
	}

	// The account may have been deleted since the token was issued.
	var user models.User
	if err := db.First(&user, "id = ?", claims.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("user not found")
		}
		return nil, err
	}

	return claims, nil
}

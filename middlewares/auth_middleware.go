package middlewares

import (
	"net/http"
	"strings"

	"bistro-boss-server/services"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the bearer token and stores the decoded claims and
// email on the context. It does not touch the database.
func AuthMiddleware(authService services.IAuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		if !strings.HasPrefix(header, "Bearer ") {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		claims, err := authService.VerifyToken(tokenString)
		if err != nil {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		email, _ := claims["email"].(string)
		ctx.Set("claims", claims)
		ctx.Set("email", email)

		ctx.Next()
	}
}

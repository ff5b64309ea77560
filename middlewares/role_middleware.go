package middlewares

import (
	"net/http"
	"strings"

	"bistro-boss-server/constants"
	"bistro-boss-server/services"

	"github.com/gin-gonic/gin"
)

// RequireRoles allows the request through only when the principal's user
// record carries one of the given roles. Must run after AuthMiddleware, which
// puts the decoded email on the context; the role itself is read from the
// users collection, not from the token.
func RequireRoles(userService services.IUserService, allowedRoles ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		email := ctx.GetString("email")
		if email == "" {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		user, err := userService.FindByEmail(ctx.Request.Context(), email)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
			return
		}
		if user == nil {
			ctx.AbortWithStatus(http.StatusForbidden)
			return
		}

		hasAccess := false
		userRole := strings.TrimSpace(strings.ToLower(user.Role))
		for _, allowedRole := range allowedRoles {
			if userRole == strings.TrimSpace(strings.ToLower(allowedRole)) {
				hasAccess = true
				break
			}
		}

		if !hasAccess {
			ctx.AbortWithStatus(http.StatusForbidden)
			return
		}

		ctx.Next()
	}
}

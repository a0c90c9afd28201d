package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ismavld/esport-tournament/internal/auth"
	"github.com/ismavld/esport-tournament/internal/authz"
	"github.com/ismavld/esport-tournament/internal/constants"
	apierrors "github.com/ismavld/esport-tournament/internal/errors"
	"github.com/ismavld/esport-tournament/internal/models"
)

// RequireAuth verifies the bearer token and stores the resolved identity in
// the request context.
func RequireAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			apierrors.RespondUnauthorized(c, "No token provided")
			c.Abort()
			return
		}

		tokenStr, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenStr == "" {
			apierrors.RespondUnauthorized(c, "No token provided")
			c.Abort()
			return
		}

		claims, err := auth.Parse(tokenStr, secret)
		if err != nil {
			apierrors.RespondUnauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, claims.UserID)
		c.Set(constants.ContextKeyRole, claims.Role)
		c.Next()
	}
}

// RequireRole allows the request through only for the given roles. Must run
// after RequireAuth.
func RequireRole(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok {
			apierrors.RespondUnauthorized(c, "")
			c.Abort()
			return
		}

		for _, role := range roles {
			if actor.Role == role {
				c.Next()
				return
			}
		}

		apierrors.RespondForbidden(c, "")
		c.Abort()
	}
}

// GetActor retrieves the authenticated actor from the request context.
func GetActor(c *gin.Context) (authz.Actor, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return authz.Actor{}, false
	}
	id, ok := userID.(uint64)
	if !ok {
		return authz.Actor{}, false
	}

	roleValue, exists := c.Get(constants.ContextKeyRole)
	if !exists {
		return authz.Actor{}, false
	}
	role, ok := roleValue.(models.UserRole)
	if !ok {
		return authz.Actor{}, false
	}

	return authz.Actor{UserID: id, Role: role}, true
}

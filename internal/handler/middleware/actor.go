package middleware

import (
	"net/http"
	"strings"

	"autoshop-backend/internal/handler/httperr"
	"autoshop-backend/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	actorIDKey   = "actor_id"
	actorRoleKey = "actor_role"

	RoleAdmin = "admin"
	RoleStaff = "staff"
)

type actorClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Actor verifies the bearer token issued by the surrounding platform and
// stores the caller's identity on the context. Routes behind it can assume
// an authenticated actor.
func Actor(cfg config.AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			abortUnauthorized(c, "missing bearer token")
			return
		}

		claims := &actorClaims{}
		parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(cfg.TokenSecret), nil
		})
		if err != nil || !parsed.Valid {
			abortUnauthorized(c, "invalid bearer token")
			return
		}

		actorID, err := uuid.Parse(claims.Subject)
		if err != nil {
			abortUnauthorized(c, "invalid token subject")
			return
		}

		c.Set(actorIDKey, actorID)
		c.Set(actorRoleKey, claims.Role)
		c.Next()
	}
}

// RequireRole gates config mutation behind the admin role.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if ActorRole(c) != role {
			c.AbortWithStatusJSON(http.StatusForbidden, httperr.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "insufficient role",
			})
			return
		}
		c.Next()
	}
}

func ActorID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(actorIDKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

func ActorRole(c *gin.Context) string {
	return c.GetString(actorRoleKey)
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, httperr.ErrorResponse{
		Code:    "UNAUTHORIZED",
		Message: message,
	})
}

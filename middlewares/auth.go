package middlewares

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"foodigo/configs"
	"foodigo/entity"
	"foodigo/pkg/resp"
	"foodigo/utils"
)

// AuthMiddleware rejects requests without a valid Bearer token. The role
// claim decides the principal table: "admin" resolves against admins,
// anything else against users. When roles are given, the claim must match
// one of them.
func AuthMiddleware(secret string, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := bearerClaims(c, secret)
		if !ok {
			resp.Unauthorized(c, "Authorization token missing")
			c.Abort()
			return
		}
		if claims == nil {
			resp.Forbidden(c, "Invalid or expired token")
			c.Abort()
			return
		}

		if len(roles) > 0 && !roleAllowed(claims.Role, roles) {
			resp.Forbidden(c, "You are not allowed to access this resource")
			c.Abort()
			return
		}

		if !attachPrincipal(c, claims) {
			resp.Forbidden(c, "Account no longer exists")
			c.Abort()
			return
		}

		c.Next()
	}
}

// OptionalAuth attaches the principal when a valid token is present and
// never aborts. Anonymous requests pass through untouched.
func OptionalAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := bearerClaims(c, secret)
		if ok && claims != nil {
			attachPrincipal(c, claims)
		}
		c.Next()
	}
}

// bearerClaims returns (nil, false) when no token was sent and
// (nil, true) when a token was sent but failed verification.
func bearerClaims(c *gin.Context, secret string) (*utils.Claims, bool) {
	header := c.GetHeader("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return nil, false
	}
	raw := strings.TrimPrefix(header, "Bearer ")

	claims := &utils.Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, true
	}
	return claims, true
}

func roleAllowed(role string, roles []string) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

func attachPrincipal(c *gin.Context, claims *utils.Claims) bool {
	if claims.Role == "admin" {
		var admin entity.Admin
		if err := configs.DB().First(&admin, claims.ID).Error; err != nil {
			return false
		}
		c.Set(utils.CtxAdminID, admin.ID)
		c.Set(utils.CtxRole, "admin")
		return true
	}

	var user entity.User
	if err := configs.DB().First(&user, claims.ID).Error; err != nil {
		return false
	}
	c.Set(utils.CtxUserID, user.ID)
	c.Set(utils.CtxRole, claims.Role)
	return true
}

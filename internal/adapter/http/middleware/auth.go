package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/grupo95-symposium/registration-service/pkg"
)

const principalContextKey = "principal"

// Principal is the resolved caller. Token issuance belongs to the identity
// service; this middleware only verifies and extracts.
type Principal struct {
	AccountID string
	Email     string
	Role      string
}

// IsAdmin reports whether the principal may read other people's records.
func (p Principal) IsAdmin() bool {
	return p.Role == "super_admin" || p.Role == "department_admin"
}

var errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid bearer token", http.StatusUnauthorized)

// RequireAuth validates the Authorization bearer token (HS256, shared secret)
// and stores the resolved Principal on the request context.
func RequireAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(tokenString) == "" {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			log.Printf("[auth][middleware] token rejected err=%v", err)
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		sub, _ := claims["sub"].(string)
		email, _ := claims["email"].(string)
		role, _ := claims["role"].(string)
		if sub == "" || email == "" {
			log.Printf("[auth][middleware] token missing sub/email claims")
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		c.Set(principalContextKey, Principal{AccountID: sub, Email: strings.ToLower(email), Role: role})
		c.Next()
	}
}

// PrincipalFrom returns the caller resolved by RequireAuth.
func PrincipalFrom(c *gin.Context) (Principal, bool) {
	v, ok := c.Get(principalContextKey)
	if !ok {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok
}

// SetPrincipal injects a principal directly; test helper.
func SetPrincipal(c *gin.Context, p Principal) {
	c.Set(principalContextKey, p)
}

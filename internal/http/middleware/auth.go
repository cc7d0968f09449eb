package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"backoffice/internal/supabase"
)

const userKey = "session_user"

// TokenVerifier checks a session token. *supabase.Client satisfies it.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (supabase.User, error)
}

// RequireSession guards admin routes: a valid hosted-backend session
// token must arrive as a Bearer header.
func RequireSession(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "sesión requerida"})
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "cabecera Authorization inválida"})
			return
		}

		user, err := verifier.VerifyToken(c.Request.Context(), parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "sesión inválida o caducada"})
			return
		}
		c.Set(userKey, user)
		c.Next()
	}
}

// SessionUser returns the authenticated user when RequireSession ran.
func SessionUser(c *gin.Context) (supabase.User, bool) {
	if v, ok := c.Get(userKey); ok {
		if u, ok := v.(supabase.User); ok {
			return u, true
		}
	}
	return supabase.User{}, false
}

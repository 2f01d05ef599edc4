package middleware

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-manager/internal/auth"
	"github.com/BruksfildServices01/barber-manager/internal/httperr"
)

const (
	ContextPrincipalID   = "principalID"
	ContextPrincipalType = "principalType"
)

// TokenVerifier resolves a token to a principal id for one principal type.
type TokenVerifier interface {
	Verify(token string, pt auth.PrincipalType) (uint, error)
}

// tokenFromHeader reads the raw authorization header. A "Bearer " prefix is
// tolerated.
func tokenFromHeader(c *gin.Context) string {
	raw := strings.TrimSpace(c.GetHeader("Authorization"))
	if len(raw) > 7 && strings.EqualFold(raw[:7], "Bearer ") {
		raw = strings.TrimSpace(raw[7:])
	}
	return raw
}

// RequireToken is the request guard for pt. On any failure the chain is
// aborted and no later handler runs.
func RequireToken(tokens TokenVerifier, pt auth.PrincipalType) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromHeader(c)
		if token == "" {
			httperr.Abort(c, httperr.MissingToken())
			return
		}

		id, err := tokens.Verify(token, pt)
		if err != nil {
			httperr.Abort(c, httperr.InvalidToken())
			return
		}

		c.Set(ContextPrincipalID, id)
		c.Set(ContextPrincipalType, pt)
		c.Next()
	}
}

// PrincipalID returns the id set by RequireToken, 0 when absent.
func PrincipalID(c *gin.Context) uint {
	id, _ := c.Get(ContextPrincipalID)
	v, _ := id.(uint)
	return v
}

// ScopedBarbershopID returns the token's barbershop id after checking that
// the path parameter names the same barbershop.
func ScopedBarbershopID(c *gin.Context, param string) (uint, error) {
	id := PrincipalID(c)
	if id == 0 {
		return 0, httperr.InvalidToken()
	}

	raw := c.Param(param)
	if raw == "" {
		return id, nil
	}

	pathID, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || uint(pathID) != id {
		return 0, httperr.Forbidden("You can only read your own barbershop.")
	}
	return id, nil
}

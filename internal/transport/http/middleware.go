package httpapi

import (
	"net/http"
	"strings"

	"storefront/internal/dto"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminRequired rejects requests without a valid admin Bearer token.
func AdminRequired(auth Auth, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authz := c.GetHeader("Authorization")
		if authz == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewUnauthorizedError("missing Authorization header"))
			return
		}
		token, ok := ExtractBearerToken(authz)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewUnauthorizedError("invalid Authorization header"))
			return
		}
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewUnauthorizedError("empty token"))
			return
		}

		if err := auth.Authorize(c.Request.Context(), token); err != nil {
			log.Warn("admin token rejected", zap.String("path", c.FullPath()), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewUnauthorizedError("invalid token"))
			return
		}
		c.Next()
	}
}

// ExtractBearerToken извлекает токен из заголовка Authorization.
// Кавычки по краям снимаются, всё после запятой или пробела отбрасывается.
func ExtractBearerToken(authz string) (string, bool) {
	if authz == "" {
		return "", false
	}
	scheme, rest, found := strings.Cut(authz, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	t := strings.Trim(strings.TrimSpace(rest), " \"'")
	if i := strings.IndexAny(t, ", "); i >= 0 {
		t = t[:i]
	}
	return strings.Trim(t, " \"'"), true
}

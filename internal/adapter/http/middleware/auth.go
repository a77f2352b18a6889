package middleware

import (
	"net/http"
	"strings"

	"mitsumori_tsuikyaku/internal/infrastructure/logger"
	"mitsumori_tsuikyaku/pkg"

	"github.com/gin-gonic/gin"
)

const (
	// SessionCookieName carries the owner session for browser clients.
	SessionCookieName = "mt_session"
	LoginPath         = "/login"

	userIDKey = "auth.user_id"
)

var errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "ログインが必要です。", http.StatusUnauthorized)

// SessionParser verifies a session token and returns the owner id.
type SessionParser interface {
	ParseSession(token string) (string, error)
}

type AuthMiddleware struct {
	sessions SessionParser
	log      *logger.Logger
}

func NewAuthMiddleware(sessions SessionParser, log *logger.Logger) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions, log: log.With("middleware", "auth")}
}

// RequireOwner rejects requests without a valid session before any handler
// runs. Browsers are sent to the login page, API clients get 401.
func (am *AuthMiddleware) RequireOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := am.sessions.ParseSession(extractToken(c))
		if err != nil || userID == "" {
			am.log.Debug("session rejected", "path", c.FullPath(), "error", err)
			if wantsHTML(c) {
				c.Redirect(http.StatusFound, LoginPath)
				c.Abort()
				return
			}
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		SetUserID(c, userID)
		c.Next()
	}
}

// UserID returns the authenticated owner id, or "" outside RequireOwner.
func UserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}

func SetUserID(c *gin.Context, userID string) {
	c.Set(userIDKey, userID)
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	if v, err := c.Cookie(SessionCookieName); err == nil {
		return v
	}
	return ""
}

func wantsHTML(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "text/html")
}

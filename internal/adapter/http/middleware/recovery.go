package middleware

import (
	"net/http"

	"mitsumori_tsuikyaku/internal/infrastructure/logger"
	"mitsumori_tsuikyaku/pkg"

	"github.com/gin-gonic/gin"
)

var errPanic = pkg.NewDomainErrorSimple("INTERNAL_ERROR", "サーバーエラーが発生しました。", http.StatusInternalServerError)

// Recovery turns a handler panic into the generic 500 body.
func Recovery(log *logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error("recovered from panic", "path", c.Request.URL.Path, "panic", recovered)
		c.AbortWithStatusJSON(errPanic.HTTPStatus, errPanic.ToHTTPError())
	})
}

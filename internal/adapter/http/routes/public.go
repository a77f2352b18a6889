package routes

import (
	"mitsumori_tsuikyaku/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEstimates = "/estimates"
	PathLiffEntry = "/liff-entry"
	PathTrack     = "/track"
	PathContracts = "/contracts"
	PathLiff      = "/liff"
	PathAuth      = "/auth"
)

// addPublicRoutes registers the endpoints the customer page and the LINE
// front end call without a session.
func addPublicRoutes(
	rg *gin.RouterGroup,
	estimateHandler *handlers.PublicEstimateHandler,
	trackingHandler *handlers.TrackingHandler,
	contractHandler *handlers.ContractHandler,
	liffLinkHandler *handlers.LiffLinkHandler,
) {
	rg.GET(PathEstimates+"/:token", estimateHandler.GetByToken)
	rg.GET(PathLiffEntry+"/:token", estimateHandler.GetLiffEntry)
	rg.POST(PathTrack, trackingHandler.Track)
	rg.POST(PathContracts+"/submit", contractHandler.Submit)
	rg.POST(PathLiff+"/link", liffLinkHandler.Link)
}

func addAuthRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/signup", authHandler.SignUp)
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
	}
}

package routes

import (
	"mitsumori_tsuikyaku/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathDashboard = "/dashboard"
	PathSettings  = "/settings"
)

// addDashboardRoutes expects rg to already carry the owner guard.
func addDashboardRoutes(rg *gin.RouterGroup, estimateHandler *handlers.EstimateHandler, settingsHandler *handlers.SettingsHandler) {
	rg.GET("/activity", estimateHandler.ListActivity)

	estimates := rg.Group(PathEstimates)
	{
		estimates.GET("", estimateHandler.ListEstimates)
		estimates.POST("", estimateHandler.CreateEstimate)
		estimates.GET("/:id", estimateHandler.GetEstimate)
		estimates.PUT("/:id", estimateHandler.UpdateEstimate)
		estimates.PATCH("/:id/close", estimateHandler.CloseEstimate)
	}

	settings := rg.Group(PathSettings)
	{
		settings.GET("", settingsHandler.GetSettings)
		settings.PUT("/profile", settingsHandler.UpdateProfile)
		settings.PUT("/line", settingsHandler.SaveLineSettings)
	}
}

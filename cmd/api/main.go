package main

import (
	"log"

	_ "mitsumori_tsuikyaku/docs"
	"mitsumori_tsuikyaku/internal/adapter/http/routes"
	"mitsumori_tsuikyaku/internal/config"
	"mitsumori_tsuikyaku/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
)

// @title           見積追客 API
// @version         1.0
// @description     Estimate follow-up service: public estimate pages, engagement tracking, tentative contracts and the owner dashboard.

// @host localhost:8080

// @BasePath  /api

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLog, err := logger.New(cfg.AppEnv)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer appLog.Sync()

	routes.Run(cfg, appLog)
}

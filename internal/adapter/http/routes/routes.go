package routes

import (
	"context"
	"crypto/rand"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "mitsumori_tsuikyaku/docs"
	"mitsumori_tsuikyaku/internal/adapter/http/handlers"
	"mitsumori_tsuikyaku/internal/adapter/http/middleware"
	"mitsumori_tsuikyaku/internal/config"
	"mitsumori_tsuikyaku/internal/infrastructure/crypto"
	"mitsumori_tsuikyaku/internal/infrastructure/gallery"
	"mitsumori_tsuikyaku/internal/infrastructure/logger"
	"mitsumori_tsuikyaku/internal/infrastructure/observability"
	"mitsumori_tsuikyaku/internal/infrastructure/token"
	"mitsumori_tsuikyaku/internal/usecase"
	"mitsumori_tsuikyaku/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

var router = gin.New()

const shutdownTimeout = 10 * time.Second

// Run wires every dependency, serves HTTP and blocks until SIGINT/SIGTERM.
func Run(cfg config.Config, log *logger.Logger) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing := observability.InitTracing(ctx, log, cfg.AppEnv)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics, err := observability.NewMetrics(reg)
	if err != nil {
		log.Fatal("Failed to register metrics", "error", err)
	}

	setMiddlewares(cfg, log, metrics)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	closeStores := getRoutes(ctx, cfg, log, metrics)

	srv := &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.Port),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	go func() {
		log.Info("http server listening", "addr", srv.Addr, "store", cfg.StoreDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to startup the application", "error", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown failed", "error", err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Warn("tracer shutdown failed", "error", err)
	}
	closeStores()
}

func getRoutes(ctx context.Context, cfg config.Config, log *logger.Logger, metrics *observability.Metrics) func() {
	st, err := openStores(ctx, cfg, log, metrics)
	if err != nil {
		log.Fatal("Failed to open stores", "driver", cfg.StoreDriver, "error", err)
	}

	galleryStorage, err := gallery.NewGCSGallery(ctx, cfg, log)
	if err != nil {
		log.Fatal("Failed to open gallery storage", "error", err)
	}
	st.closers = append(st.closers, galleryStorage.Close)

	var sealer interfaces.ISecretSealer
	if cfg.EncryptionKey != "" {
		s, err := crypto.NewSealer([]byte(cfg.EncryptionKey))
		if err != nil {
			log.Fatal("Failed to init settings sealer", "error", err)
		}
		sealer = s
	} else {
		log.Warn("SETTINGS_ENCRYPTION_KEY not set; LINE settings cannot be saved")
	}

	publicEstimateUseCase := usecase.NewPublicEstimateUseCase(st.estimates, st.settings, log)
	trackingUseCase := usecase.NewTrackingUseCase(st.logs, log, metrics)
	contractUseCase := usecase.NewContractUseCase(st.estimates, log, metrics)
	liffLinkUseCase := usecase.NewLiffLinkUseCase(st.estimates, st.contacts, log, metrics)
	dashboardUseCase := usecase.NewDashboardUseCase(st.estimates, st.logs, st.contacts, log)
	authoringUseCase := usecase.NewEstimateAuthoringUseCase(
		st.estimates, st.settings, galleryStorage, token.NewNanoIDGenerator(token.DefaultLength), cfg, log, metrics,
	)
	settingsUseCase := usecase.NewSettingsUseCase(st.settings, sealer, log)
	authUseCase := usecase.NewAuthUseCase(st.accounts, sessionSecret(cfg, log), cfg.SessionTTL, log)

	loc := cfg.Location()
	publicEstimateHandler := handlers.NewPublicEstimateHandler(publicEstimateUseCase, loc)
	trackingHandler := handlers.NewTrackingHandler(trackingUseCase)
	contractHandler := handlers.NewContractHandler(contractUseCase)
	liffLinkHandler := handlers.NewLiffLinkHandler(liffLinkUseCase)
	estimateHandler := handlers.NewEstimateHandler(dashboardUseCase, authoringUseCase, loc, cfg.MaxUploadBytes)
	settingsHandler := handlers.NewSettingsHandler(settingsUseCase)
	authHandler := handlers.NewAuthHandler(authUseCase, cfg.CookieSecure)
	authMiddleware := middleware.NewAuthMiddleware(authUseCase, log)

	// Public routes
	api := router.Group("/api")
	addPingRoutes(api)
	addPublicRoutes(api, publicEstimateHandler, trackingHandler, contractHandler, liffLinkHandler)
	addAuthRoutes(api, authHandler)

	// Owner dashboard
	dashboard := api.Group(PathDashboard, authMiddleware.RequireOwner())
	addDashboardRoutes(dashboard, estimateHandler, settingsHandler)

	return st.Close(log)
}

func setMiddlewares(cfg config.Config, log *logger.Logger, metrics *observability.Metrics) {
	router.Use(middleware.Recovery(log))
	router.Use(otelgin.Middleware(observability.ServiceName))
	router.Use(middleware.CORS(cfg.CORSAllowOrigins))
	router.Use(middleware.Metrics(metrics))
	router.Use(middleware.RequestLogger(log))
}

// sessionSecret falls back to a per-process random key outside production;
// sessions then do not survive a restart.
func sessionSecret(cfg config.Config, log *logger.Logger) []byte {
	if cfg.JWTSecret != "" {
		return []byte(cfg.JWTSecret)
	}
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		log.Fatal("Failed to generate session secret", "error", err)
	}
	log.Warn("JWT_SECRET not set; using an ephemeral session secret")
	return secret
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/udaan-api/api/swagger"
	"github.com/noah-isme/udaan-api/internal/assistant"
	"github.com/noah-isme/udaan-api/internal/handler"
	internalmiddleware "github.com/noah-isme/udaan-api/internal/middleware"
	"github.com/noah-isme/udaan-api/internal/repository"
	"github.com/noah-isme/udaan-api/internal/service"
	"github.com/noah-isme/udaan-api/migrations"
	"github.com/noah-isme/udaan-api/pkg/cache"
	"github.com/noah-isme/udaan-api/pkg/config"
	"github.com/noah-isme/udaan-api/pkg/database"
	"github.com/noah-isme/udaan-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/udaan-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/udaan-api/pkg/middleware/requestid"
)

// @title Udaan Scholarship API
// @version 1.0.0
// @description Scholarship discovery: eligibility matching, exports, preferences and a Q&A assistant
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect database", "error", err)
	}
	defer db.Close() //nolint:errcheck

	if cfg.Database.AutoMigrate {
		if err := migrations.Run(db.DB); err != nil {
			logr.Sugar().Fatalw("failed to apply migrations", "error", err)
		}
	}

	var redisClient *redis.Client
	if cfg.Catalog.CacheEnabled {
		redisClient, err = cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, catalog cache disabled", zap.Error(err))
			redisClient = nil
		}
	}

	validate := validator.New()
	metricsSvc := service.NewMetricsService()

	scholarshipRepo := repository.NewScholarshipRepository(db, metricsSvc)
	appContextRepo := repository.NewAppContextRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient)
	defer cacheRepo.Close() //nolint:errcheck

	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Catalog.CacheTTL, logr, redisClient != nil)
	catalogSvc := service.NewCatalogService(scholarshipRepo, cacheSvc, metricsSvc, logr, service.CatalogConfig{
		CacheTTL:         cfg.Catalog.CacheTTL,
		RefreshInterval:  cfg.Catalog.RefreshInterval,
		FetchTimeout:     cfg.Catalog.FetchTimeout,
		KeepStaleOnError: cfg.Catalog.KeepStaleOnError,
	})
	if err := catalogSvc.Load(ctx); err != nil {
		logr.Error("initial scholarship load failed", zap.Error(err))
	}
	go catalogSvc.Run(ctx)

	var completer assistant.Completer
	if cfg.Assistant.APIKey != "" {
		gemini, err := assistant.NewGemini(ctx, assistant.GeminiConfig{
			APIKey:  cfg.Assistant.APIKey,
			Model:   cfg.Assistant.Model,
			BaseURL: cfg.Assistant.BaseURL,
			Timeout: cfg.Assistant.Timeout,
		})
		if err != nil {
			logr.Warn("assistant disabled", zap.Error(err))
		} else {
			completer = gemini
		}
	} else {
		logr.Info("ASSISTANT_API_KEY not set, assistant will answer with the fallback")
	}

	matchSvc := service.NewMatchService(catalogSvc, validate, metricsSvc, logr)
	exportSvc := service.NewExportService(logr, nil, nil)
	appContextSvc := service.NewAppContextService(appContextRepo, validate, logr)
	assistantSvc := service.NewAssistantService(completer, catalogSvc, metricsSvc, logr, cfg.Assistant.FallbackAnswer)

	scholarshipHandler := handler.NewScholarshipHandler(catalogSvc)
	matchHandler := handler.NewMatchHandler(matchSvc, exportSvc)
	criteriaHandler := handler.NewCriteriaHandler()
	assistantHandler := handler.NewAssistantHandler(assistantSvc)
	preferencesHandler := handler.NewPreferencesHandler(appContextSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc, catalogSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(internalmiddleware.ClientID())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(internalmiddleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Ready)
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	api.Use(internalmiddleware.WithResponseMeta())

	scholarships := api.Group("/scholarships")
	scholarships.GET("", scholarshipHandler.List)
	scholarships.GET("/status", scholarshipHandler.Status)
	scholarships.POST("/refresh", scholarshipHandler.Refresh)
	scholarships.POST("/match", matchHandler.Match)
	scholarships.GET("/match/latest", matchHandler.Latest)
	scholarships.POST("/match/export", matchHandler.Export)
	scholarships.GET("/:id", scholarshipHandler.Get)
	scholarships.POST("/:id/check", matchHandler.Check)

	api.GET("/criteria/options", criteriaHandler.Options)

	assistantGroup := api.Group("/assistant")
	assistantGroup.POST("/ask", assistantHandler.Ask)
	assistantGroup.GET("/faq", assistantHandler.FAQ)

	preferences := api.Group("/preferences")
	preferences.GET("", preferencesHandler.Get)
	preferences.PUT("", preferencesHandler.Update)
	preferences.POST("/theme/toggle", preferencesHandler.ToggleTheme)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
	}
}

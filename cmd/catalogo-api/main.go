package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/autodrive/catalogo-api/api/swagger"
	"github.com/autodrive/catalogo-api/internal/handler"
	"github.com/autodrive/catalogo-api/internal/middleware"
	"github.com/autodrive/catalogo-api/internal/models"
	"github.com/autodrive/catalogo-api/internal/repository"
	"github.com/autodrive/catalogo-api/internal/service"
	"github.com/autodrive/catalogo-api/pkg/cache"
	"github.com/autodrive/catalogo-api/pkg/config"
	"github.com/autodrive/catalogo-api/pkg/database"
	"github.com/autodrive/catalogo-api/pkg/export"
	"github.com/autodrive/catalogo-api/pkg/logger"
	corsmiddleware "github.com/autodrive/catalogo-api/pkg/middleware/cors"
	reqidmiddleware "github.com/autodrive/catalogo-api/pkg/middleware/requestid"
)

// @title Catálogo de Veículos API
// @version 1.0.0
// @description Vehicle catalog browsing and lead capture
// @BasePath /api/v1
// @schemes http

type vehicleStore interface {
	List(ctx context.Context) ([]models.Vehicle, error)
	FindByID(ctx context.Context, id int) (*models.Vehicle, error)
}

type leadStore interface {
	NextID(ctx context.Context) (int, error)
	HasRecentFromIP(ctx context.Context, ip string, cutoff time.Time) (bool, error)
	Create(ctx context.Context, form *models.ContactForm) error
	List(ctx context.Context) ([]models.ContactForm, error)
}

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

	var vehicles vehicleStore
	var leads leadStore
	switch cfg.Store {
	case config.StorePostgres:
		db, err := database.NewPostgres(cfg.Database)
		if err != nil {
			logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
		}
		defer db.Close() //nolint:errcheck
		vehicles = repository.NewPostgresVehicleRepository(db)
		leads = repository.NewPostgresContactFormRepository(db)
	default:
		vehicles = repository.NewMemoryVehicleRepository(nil)
		leads = repository.NewMemoryContactFormRepository(cfg.ContactForm.DuplicateWindow)
	}

	details := repository.NewMemoryVehicleDetailRepository(nil)

	var facetCache *repository.CacheRepository
	if cfg.Catalog.CacheEnabled {
		client, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, catalog cache disabled", "error", err)
		} else {
			facetCache = repository.NewCacheRepository(client, logr)
			defer facetCache.Close() //nolint:errcheck
		}
	}

	metricsSvc := service.NewMetricsService()
	validate := validator.New()

	catalogSvc := service.NewCatalogService(vehicles, facetCache, cfg.Catalog.CacheTTL, metricsSvc, logr)
	detailSvc := service.NewVehicleDetailService(details, logr)
	contactSvc := service.NewContactFormService(leads, vehicles, validate, cfg.ContactForm.DuplicateWindow, logr)

	var exportSvc *service.ExportService
	if cfg.Exports.Enabled {
		exportSvc = service.NewExportService(leads, vehicles, logr, export.NewCSVExporter(), export.NewPDFExporter())
	}

	vehicleHandler := handler.NewVehicleHandler(catalogSvc)
	detailHandler := handler.NewVehicleDetailHandler(detailSvc)
	contactHandler := handler.NewContactFormHandler(contactSvc, exportSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		internal := api.Group("/internal")
		internal.GET("/vehicle", vehicleHandler.List)
		internal.GET("/vehicle/filter-options", vehicleHandler.FilterOptions)
		internal.GET("/vehicle/modelos-by-marcas", vehicleHandler.ModelosByMarcas)
		internal.GET("/vehicle-detail/:id", detailHandler.Get)
		if cfg.Exports.Enabled {
			internal.GET("/contact-form/export", contactHandler.Export)
		}

		external := api.Group("/external")
		external.POST("/contact-form", contactHandler.Create)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "store", cfg.Store)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

package api

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kaidroger/logistics-analytics-go/internal/boundary"
	"github.com/kaidroger/logistics-analytics-go/internal/config"
	"github.com/kaidroger/logistics-analytics-go/internal/database"
	"github.com/kaidroger/logistics-analytics-go/internal/handler"
	"github.com/kaidroger/logistics-analytics-go/internal/metrics"
	"github.com/kaidroger/logistics-analytics-go/internal/middleware"
	"github.com/kaidroger/logistics-analytics-go/internal/repository"
	"github.com/kaidroger/logistics-analytics-go/internal/service"
	"github.com/kaidroger/logistics-analytics-go/pkg/events"
)

// SetupRouter wires repositories, services and handlers onto the gin engine
func SetupRouter(cfg *config.Config) (*gin.Engine, error) {
	db := database.GetDB()

	hubRepo := repository.NewHubRepository(db)
	destRepo := repository.NewDestinationRepository(db)
	datasetRepo := repository.NewDatasetRepository(db)

	// Boundary features load once; an absent file degrades to circle
	// fallback territories instead of failing startup
	features, err := boundary.LoadFile(cfg.BoundaryPath)
	if err != nil {
		log.Printf("Boundary file %s unavailable (%v), territories fall back to circles", cfg.BoundaryPath, err)
		features = nil
	} else {
		log.Printf("Loaded %d district boundary features from %s", len(features), cfg.BoundaryPath)
	}

	bus := events.NewBus()

	hubService := service.NewHubService(hubRepo, destRepo)
	if err := hubService.SeedFromFiles(cfg.HubsPath, cfg.DestinationsPath); err != nil {
		return nil, err
	}

	datasetService := service.NewDatasetService(datasetRepo, bus)
	analyticsService := service.NewAnalyticsService(datasetRepo)
	territoryService := service.NewTerritoryService(hubRepo, destRepo, features, bus)

	hubHandler := handler.NewHubHandler(hubService, territoryService)
	datasetHandler := handler.NewDatasetHandler(datasetService)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS())
	r.Use(middleware.RateLimit(cfg.RateLimitPerMin, time.Minute))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Logistics Analytics API is running",
		})
	})

	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := r.Group("/api/v1")
	{
		datasets := api.Group("/datasets")
		{
			datasets.POST("", datasetHandler.IngestDataset)
			datasets.GET("", datasetHandler.ListDatasets)
			datasets.GET("/:id", datasetHandler.GetDataset)
			datasets.DELETE("/:id", datasetHandler.DeleteDataset)

			datasets.GET("/:id/report", analyticsHandler.GetReport)
			datasets.GET("/:id/summary", analyticsHandler.GetSummary)
			datasets.GET("/:id/fc-performance", analyticsHandler.GetFCPerformance)
			datasets.GET("/:id/province-performance", analyticsHandler.GetProvincePerformance)
			datasets.GET("/:id/district-performance", analyticsHandler.GetDistrictPerformance)
			datasets.GET("/:id/value-distribution", analyticsHandler.GetValueDistribution)
			datasets.GET("/:id/repeat-customers", analyticsHandler.GetRepeatCustomers)
		}

		hubs := api.Group("/hubs")
		{
			hubs.GET("", hubHandler.GetHubs)
			hubs.GET("/:id", hubHandler.GetHubByID)
			hubs.GET("/:id/territory", hubHandler.GetTerritory)
			hubs.GET("/:id/destinations", hubHandler.GetDestinations)
			hubs.GET("/:id/filter-summary", hubHandler.GetFilterSummary)
		}
	}

	return r, nil
}

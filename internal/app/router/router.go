package router

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"creditreportanalyser/internal/app/handlers"
	"creditreportanalyser/internal/app/middleware"
	"creditreportanalyser/internal/pkg/config"
	mongodb "creditreportanalyser/internal/pkg/db/mongo"
	"creditreportanalyser/internal/pkg/store/impl/credit_reports"
	"creditreportanalyser/internal/pkg/store/repository"
	"creditreportanalyser/internal/service/ingestion"
	"creditreportanalyser/internal/service/interfaces"
	"creditreportanalyser/internal/service/summary"
)

// SetupRouter wires repositories, services and handlers onto a gin engine.
// redisClient and publisher may be nil; the affected side effects are then
// skipped.
func SetupRouter(cfg *config.AppConfig,
	mongoClient *mongodb.MongoClient,
	redisClient *redis.Client,
	publisher interfaces.PubSubPublisherInterface) *gin.Engine {

	server := gin.Default()
	server.Use(middleware.AttachTraceID())
	server.MaxMultipartMemory = cfg.Upload.MaxFileSizeMB << 20

	reportRepo := credit_reports.NewCreditReportRepository(mongoClient)

	var cache interfaces.SummaryCacheInterface
	if redisClient != nil {
		cache = repository.NewRedisStoreAdapter(redisClient)
	}

	ingestionService := ingestion.NewIngestionService(reportRepo, cache, publisher)
	summaryService := summary.NewSummaryService(reportRepo, cache)

	reportHandler := handlers.NewReportHandler(ingestionService, summaryService)
	healthCheckHandler := handlers.NewHealthCheckHandler()

	server.GET("/health", healthCheckHandler.HealthCheck)

	api := server.Group("/api/reports")
	api.POST("/upload", reportHandler.UploadReport)
	api.GET("", reportHandler.ListReports)
	api.GET("/summary", reportHandler.GetSummary)
	api.GET("/:id", reportHandler.GetReport)
	api.DELETE("/:id", reportHandler.DeleteReport)

	return server
}

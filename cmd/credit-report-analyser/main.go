package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	gcppubsub "cloud.google.com/go/pubsub"
	"github.com/redis/go-redis/v9"

	"creditreportanalyser/internal/app/router"
	"creditreportanalyser/internal/pkg/cleanup"
	config "creditreportanalyser/internal/pkg/config"
	mongodb "creditreportanalyser/internal/pkg/db/mongo"
	redisdb "creditreportanalyser/internal/pkg/db/redis"
	"creditreportanalyser/internal/pkg/log_messages"
	"creditreportanalyser/internal/pkg/logger"
	"creditreportanalyser/internal/pkg/pubsub"
	"creditreportanalyser/internal/pkg/store/impl/credit_reports"
	"creditreportanalyser/internal/service/interfaces"
)

func main() {

	ctx := context.Background()

	logger.Init()

	cfg, err := config.LoadFromConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.InitWithLevel(cfg.Logging.LogLevel)

	// Connect to MongoDB
	mongoClient, err := mongodb.ConnectToMongoDB(ctx, cfg.Mongo)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	// Unique reportNumber index backs the duplicate check
	reportRepo := credit_reports.NewCreditReportRepository(mongoClient)
	if err := reportRepo.EnsureIndexes(ctx); err != nil {
		log.Fatalf(log_messages.ErrorEnsuringCreditReportIndexes, err)
	}

	// Redis is optional; without it the summary cache is skipped
	var redisClient *redisdb.RedisClient
	var rawRedisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient, err = redisdb.ConnectToRedis(ctx, cfg.Redis, nil)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		rawRedisClient = redisClient.Client
	}

	// Pub/Sub publisher is optional; without it ingest events are skipped
	var publisher interfaces.PubSubPublisherInterface
	if cfg.PubSub.ProjectID != "" {
		client, err := initPubSubPublisher(ctx, cfg.PubSub.ProjectID, cfg.PubSub.Topic)
		if err != nil {
			log.Fatalf("Failed to create Pub/Sub publisher: %v", err)
		}
		publisher = client
	}

	server := router.SetupRouter(cfg, mongoClient, rawRedisClient, publisher)
	port := cfg.Server.Port

	if err := server.Run(":" + fmt.Sprintf("%d", port)); err != nil {
		logger.CtxError(ctx, "Failed to start server", err)
	}

	defer cleanup.CleanupResources(ctx, mongoClient, redisClient, publisher)

}

func initPubSubPublisher(ctx context.Context, projectID, topic string) (*pubsub.ReportEventPublisher, error) {
	client, err := pubsub.NewReportEventPublisher(ctx, projectID, topic, gcppubsub.NewClient)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", log_messages.ErrorPubSubClientCreation, err)
	}

	logger.Info("successful pubsub publisher creation",
		slog.String("pubsub_topic", topic),
	)

	return client, nil
}

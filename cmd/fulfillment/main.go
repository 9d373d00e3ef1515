package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/freshcart/freshcart/internal/pkg/config"
	"github.com/freshcart/freshcart/internal/pkg/constants"
	"github.com/freshcart/freshcart/internal/pkg/database"
	"github.com/freshcart/freshcart/internal/pkg/logger"
	nsqpkg "github.com/freshcart/freshcart/internal/pkg/nsq"

	cartRepository "github.com/freshcart/freshcart/services/cart/repository"
	cartUsecase "github.com/freshcart/freshcart/services/cart/usecase"
	orderGateway "github.com/freshcart/freshcart/services/orders/gateway"
	orderNSQ "github.com/freshcart/freshcart/services/orders/handler/nsq"
	orderRepository "github.com/freshcart/freshcart/services/orders/repository"
	orderUsecase "github.com/freshcart/freshcart/services/orders/usecase"
)

// The fulfillment worker drains order.created events: it reserves stock for
// every line and advances orders from new to processing.
func main() {
	appName := "fulfillment"
	configPath := config.GetEnv("CONFIG_PATH", "config/fulfillment.env")
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting worker",
		logger.String("app", appName),
		logger.String("environment", configs.App.Environment),
	)

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		logger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	privilegedClient, err := database.NewPrivilegedPostgresClient(configs.Database)
	if err != nil {
		logger.Fatal("Failed to connect to PostgreSQL with admin credentials", logger.Err(err))
	}
	defer privilegedClient.Close()

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	producer, err := nsqpkg.NewProducer(configs.NSQ.Address)
	if err != nil {
		logger.Fatal("Failed to connect to NSQ", logger.Err(err))
	}
	defer producer.Stop()

	orderRepo := orderRepository.NewOrderRepo(configs, postgresClient, privilegedClient)
	eventGW := orderGateway.NewEventGW(producer)
	cartUC := cartUsecase.NewCartUC(cartRepository.NewCartRepo(redisClient), configs)
	orderUC := orderUsecase.NewOrderUC(orderRepo, eventGW, cartUC, configs)

	fulfillmentHandler := orderNSQ.NewFulfillmentHandler(orderUC)

	consumer, err := nsqpkg.NewConsumer(
		constants.TopicOrderCreated,
		constants.ChannelFulfillment,
		configs.NSQ.Address,
		fulfillmentHandler.HandleOrderCreated,
	)
	if err != nil {
		logger.Fatal("Failed to start consumer", logger.Err(err))
	}
	defer consumer.Stop()

	logger.Info("Consuming",
		logger.String("topic", constants.TopicOrderCreated),
		logger.String("channel", constants.ChannelFulfillment),
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down", logger.String("app", appName))
}

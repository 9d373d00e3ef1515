package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/freshcart/freshcart/internal/pkg/config"
	"github.com/freshcart/freshcart/internal/pkg/database"
	"github.com/freshcart/freshcart/internal/pkg/health"
	"github.com/freshcart/freshcart/internal/pkg/logger"
	"github.com/freshcart/freshcart/internal/pkg/middleware"
	nsqpkg "github.com/freshcart/freshcart/internal/pkg/nsq"

	authFlow "github.com/freshcart/freshcart/services/auth/flow"
	authGateway "github.com/freshcart/freshcart/services/auth/gateway"
	authHandler "github.com/freshcart/freshcart/services/auth/handler"
	authHTTP "github.com/freshcart/freshcart/services/auth/handler/http"
	authRepository "github.com/freshcart/freshcart/services/auth/repository"
	authUsecase "github.com/freshcart/freshcart/services/auth/usecase"

	catalogHandler "github.com/freshcart/freshcart/services/catalog/handler"
	catalogHTTP "github.com/freshcart/freshcart/services/catalog/handler/http"
	catalogRepository "github.com/freshcart/freshcart/services/catalog/repository"
	catalogUsecase "github.com/freshcart/freshcart/services/catalog/usecase"

	cartHandler "github.com/freshcart/freshcart/services/cart/handler"
	cartHTTP "github.com/freshcart/freshcart/services/cart/handler/http"
	cartRepository "github.com/freshcart/freshcart/services/cart/repository"
	cartUsecase "github.com/freshcart/freshcart/services/cart/usecase"

	orderGateway "github.com/freshcart/freshcart/services/orders/gateway"
	orderHandler "github.com/freshcart/freshcart/services/orders/handler"
	orderHTTP "github.com/freshcart/freshcart/services/orders/handler/http"
	orderRepository "github.com/freshcart/freshcart/services/orders/repository"
	orderUsecase "github.com/freshcart/freshcart/services/orders/usecase"
)

func main() {
	appName := "storefront"
	configPath := config.GetEnv("CONFIG_PATH", "config/storefront.env")
	configs := config.InitConfig(configPath)

	if err := configs.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Restricted connection for ordinary reads, privileged for provisioning
	// and fulfillment mutations.
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

	// Auth service
	verifyGW := authGateway.NewVerifyClient(configs.Twilio)
	userRepo := authRepository.NewUserRepo(configs, postgresClient, privilegedClient)
	authUC := authUsecase.NewAuthUC(userRepo, verifyGW, configs)

	flowStore := authFlow.NewStore(time.Duration(configs.Auth.FlowTTLMinutes) * time.Minute)
	defer flowStore.Close()
	flowMachine := authFlow.NewMachine(authUC, configs)

	authRoutes := authHandler.NewHandler(
		authHTTP.NewAuthHandler(authUC),
		authHTTP.NewLoginHandler(flowMachine, flowStore),
		configs,
	)

	// Catalog service
	catalogRepo := catalogRepository.NewCatalogRepo(configs, postgresClient)
	catalogUC := catalogUsecase.NewCatalogUC(catalogRepo, redisClient, configs)
	catalogRoutes := catalogHandler.NewHandler(catalogHTTP.NewCatalogHandler(catalogUC))

	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 30*time.Second)
	if err := catalogUC.SeedLocationIndex(seedCtx); err != nil {
		cancelSeed()
		logger.Fatal("Failed to seed location index", logger.Err(err))
	}
	cancelSeed()

	// Cart service
	cartRepo := cartRepository.NewCartRepo(redisClient)
	cartUC := cartUsecase.NewCartUC(cartRepo, configs)
	cartRoutes := cartHandler.NewHandler(cartHTTP.NewCartHandler(cartUC))

	// Orders service
	orderRepo := orderRepository.NewOrderRepo(configs, postgresClient, privilegedClient)
	eventGW := orderGateway.NewEventGW(producer)
	orderUC := orderUsecase.NewOrderUC(orderRepo, eventGW, cartUC, configs)
	orderRoutes := orderHandler.NewHandler(orderHTTP.NewOrderHandler(orderUC))

	// Echo router
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.RequestID())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName, map[string]health.Check{
		"postgres": func(ctx context.Context) error {
			return postgresClient.GetDB().PingContext(ctx)
		},
		"redis": func(ctx context.Context) error {
			return redisClient.Client.Ping(ctx).Err()
		},
	})

	authMW := middleware.JWTAuthMiddleware(configs.JWT)
	sendLimiter := middleware.IPRateLimiter(5, time.Minute, redisClient.Client)

	authRoutes.RegisterRoutes(e, sendLimiter)
	catalogRoutes.RegisterRoutes(e)
	cartRoutes.RegisterRoutes(e, authMW)
	orderRoutes.RegisterRoutes(e, authMW)

	go func() {
		logger.Info("Starting server",
			logger.String("app", appName),
			logger.Int("port", configs.Server.Port),
		)
		if err := e.Start(fmt.Sprintf(":%d", configs.Server.Port)); err != nil {
			logger.Error("Server stopped", logger.Err(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownTimeout := time.Duration(configs.Server.ShutdownTimeout) * time.Second
	if shutdownTimeout == 0 {
		shutdownTimeout = 10 * time.Second
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logger.Info("Shutting down", logger.String("app", appName))
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Forced shutdown", logger.Err(err))
	}
}

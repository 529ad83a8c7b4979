package main

import (
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rajatks/sevakart/internal/pkg/config"
	"github.com/rajatks/sevakart/internal/pkg/database"
	"github.com/rajatks/sevakart/internal/pkg/health"
	"github.com/rajatks/sevakart/internal/pkg/logger"
	"github.com/rajatks/sevakart/internal/pkg/middleware"
	nsqpkg "github.com/rajatks/sevakart/internal/pkg/nsq"
	"github.com/rajatks/sevakart/internal/pkg/server"
	discoveryHandler "github.com/rajatks/sevakart/services/discovery/handler"
	discoveryHTTP "github.com/rajatks/sevakart/services/discovery/handler/http"
	discoveryRepo "github.com/rajatks/sevakart/services/discovery/repository"
	discoveryUC "github.com/rajatks/sevakart/services/discovery/usecase"
	"github.com/rajatks/sevakart/services/identity/gateway"
	identityHandler "github.com/rajatks/sevakart/services/identity/handler"
	identityHTTP "github.com/rajatks/sevakart/services/identity/handler/http"
	identityRepo "github.com/rajatks/sevakart/services/identity/repository"
	identityUC "github.com/rajatks/sevakart/services/identity/usecase"
)

func main() {
	appName := "marketplace-service"
	configPath := os.Getenv("CONFIG_PATH")
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment))

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		logger.Fatal("Failed to connect to PostgreSQL", logger.ErrorField(err))
	}
	defer postgresClient.Close()

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", logger.ErrorField(err))
	}
	defer redisClient.Close()

	producer, err := nsqpkg.NewProducer(configs.NSQ.NSQDAddress)
	if err != nil {
		logger.Fatal("Failed to connect to NSQ", logger.ErrorField(err))
	}
	defer producer.Stop()

	// Identity service wiring
	userRepo := identityRepo.NewUserRepo(postgresClient.GetDB())
	otpRepo := identityRepo.NewOTPRepo(redisClient)
	identityGW := gateway.NewIdentityGW(producer)
	idUC := identityUC.NewIdentityUC(userRepo, otpRepo, identityGW, configs)
	authHandler := identityHTTP.NewAuthHandler(idUC)
	userHandler := identityHTTP.NewUserHandler(idUC)
	idHandler := identityHandler.NewHandler(authHandler, userHandler, configs)

	// Discovery service wiring
	providerRepo := discoveryRepo.NewProviderRepo(postgresClient.GetDB(), redisClient)
	discUC := discoveryUC.NewDiscoveryUC(providerRepo, configs)
	finderHandler := discoveryHTTP.NewFinderHandler(discUC)
	presenceHandler := discoveryHTTP.NewPresenceHandler(discUC)
	discHandler := discoveryHandler.NewHandler(finderHandler, presenceHandler, configs)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName)
	idHandler.RegisterRoutes(e)
	discHandler.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		logger.Fatal("Server terminated", logger.ErrorField(err))
	}
}

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"intake-service/internal/app/config"
	"intake-service/internal/app/delivery/http/middlewares"
	"intake-service/internal/app/delivery/http/routers"
	"intake-service/internal/app/drivers/database"
	"intake-service/internal/app/drivers/logger"
	"intake-service/internal/app/drivers/messaging"
	"intake-service/internal/app/drivers/storage"
	"intake-service/internal/app/services/admins"
	"intake-service/internal/app/services/healthie"
	"intake-service/internal/app/services/intakes"
	"intake-service/internal/app/services/sessions"
	"intake-service/internal/app/services/shared/intakequeue"
	"intake-service/internal/app/services/shared/jwtmanager"
	"intake-service/internal/app/services/shared/redis"
	sharedstorage "intake-service/internal/app/services/shared/storage"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	processLog := logger.NewLogrusLogger(internalConfig)
	zapLog := logger.NewZapLogger(driverConfig, internalConfig)

	mongoClient := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQConnection := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoClient:    mongoClient,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQConnection,
		Minio:          minioClient,
		Logger:         zapLog,
		ProcessLogger:  processLog,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	if err := bootstrapTheApp(&bootstrap); err != nil {
		processLog.Fatalf("Failed to bootstrap application: %v", err)
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		processLog.Infof("Server listening on %s", internalConfig.App.Port)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			processLog.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	processLog.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		processLog.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		processLog.Errorf("Failed to close drivers: %v", err)
	}

	processLog.Println("Server exiting")
}

func bootstrapTheApp(bootstrap *config.Bootstrap) error {
	// Shared
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	minioStorage := sharedstorage.NewMinioStorage(bootstrap.Minio)
	jwtManager := jwtmanager.NewJWTManager(bootstrap.InternalConfig, bootstrap.Logger)

	queueService, err := intakequeue.NewIntakeQueueService(bootstrap.RabbitMQ, bootstrap.InternalConfig.App.RabbitMQIntakeQueue)
	if err != nil {
		return err
	}

	// Healthie
	healthieClient := healthie.NewHealthieClient(bootstrap.InternalConfig, bootstrap.Logger)

	// Sessions
	sessionUsecase := sessions.NewSessionUsecase(redisRepository, bootstrap.InternalConfig, bootstrap.Logger)
	sessionController := sessions.NewSessionController(bootstrap.Logger, sessionUsecase)

	// Intakes
	intakeMongoRepository := intakes.NewIntakeMongoRepository(
		bootstrap.MongoClient,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	intakeUsecase := intakes.NewIntakeUsecase(
		healthieClient,
		intakeMongoRepository,
		minioStorage,
		queueService,
		sessionUsecase,
		bootstrap.InternalConfig,
		bootstrap.DriverConfig,
		bootstrap.Logger,
	)
	intakeController := intakes.NewIntakeController(bootstrap.Logger, intakeUsecase)

	// Admins
	adminUsecase := admins.NewAdminUsecase(intakeMongoRepository, healthieClient, jwtManager, bootstrap.InternalConfig)
	adminController := admins.NewAdminController(bootstrap.Logger, adminUsecase)

	// Middlewares
	appMiddlewares := middlewares.NewMiddlewares(bootstrap.Logger, jwtManager, bootstrap.InternalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		appMiddlewares,
		intakeController,
		sessionController,
		adminController,
	)

	return nil
}

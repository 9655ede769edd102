package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"storyai-service/internal/app/config"
	"storyai-service/internal/app/delivery/http/controllers"
	"storyai-service/internal/app/delivery/http/middlewares"
	"storyai-service/internal/app/delivery/http/routers"
	"storyai-service/internal/app/drivers/database"
	"storyai-service/internal/app/drivers/logger"
	"storyai-service/internal/app/drivers/messaging"
	"storyai-service/internal/app/services/core/routines"
	"storyai-service/internal/app/services/shared/locker"
	"storyai-service/internal/app/services/shared/redis"
	"storyai-service/internal/app/services/shared/schedulequeue"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		zapLogger.Info("Server starting",
			zap.String("address", internalConfig.App.Port),
		)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	zapLogger.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Error closing connections: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)

	// Locker
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)

	// Schedule events
	scheduleEventPublisher, err := schedulequeue.NewService(bootstrap.RabbitMQ, bootstrap.Logger)
	if err != nil {
		log.Fatalf("Error initializing schedule event publisher: %v", err)
	}

	// Middlewares
	mw := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Routine
	routineMongoRepository := routines.NewRoutineMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	routineUsecase := routines.NewRoutineUsecase(
		routineMongoRepository,
		redisRepository,
		lockerService,
		scheduleEventPublisher,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	routineController := controllers.NewRoutineController(bootstrap.Logger, routineUsecase)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, mw, routineController)
}

package main

import (
	"cataractcare-service/internal/app/config"
	"cataractcare-service/internal/app/delivery/http/controllers"
	"cataractcare-service/internal/app/delivery/http/middlewares"
	"cataractcare-service/internal/app/delivery/http/routers"
	"cataractcare-service/internal/app/drivers/browser"
	"cataractcare-service/internal/app/drivers/database"
	"cataractcare-service/internal/app/drivers/logger"
	"cataractcare-service/internal/app/drivers/messaging"
	"cataractcare-service/internal/app/drivers/storage"
	"cataractcare-service/internal/app/services/patients"
	"cataractcare-service/internal/app/services/shared/eventqueue"
	"cataractcare-service/internal/app/services/shared/locker"
	"cataractcare-service/internal/app/services/shared/redis"
	"cataractcare-service/internal/app/services/shared/report"
	"cataractcare-service/internal/app/services/shared/spreadsheet"
	minioStorage "cataractcare-service/internal/app/services/shared/storage"
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig, internalConfig)
	minioClient := storage.NewMinio(driverConfig,
		internalConfig.Patient.MinioImageBucketName,
		internalConfig.Report.MinioBucketName,
	)
	allocCtx, browserStop := browser.NewChromeAllocator(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Logger:         zapLogger,
		RabbitMQ:       rabbitMQ,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
		BrowserStop:    browserStop,
	}

	err := bootstrapingTheApp(bootstrap, allocCtx, minioClient)
	if err != nil {
		log.Fatalf("Failed to bootstrap the app: %v", err)
	}

	server := &http.Server{
		Addr:              fmt.Sprintf(":%s", internalConfig.App.Port),
		Handler:           chiRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zapLogger.Info("Server started",
			zap.String("address", server.Addr),
			zap.String("env", internalConfig.App.Env),
		)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Failed to release resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap, allocCtx context.Context, minioClient *minio.Client) error {
	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)

	// Storage
	storageService := minioStorage.NewMinioStorage(minioClient, bootstrap.InternalConfig.Patient.MinioPublicBaseUrl)

	// Events
	eventPublisher, err := eventqueue.NewPatientEventPublisher(bootstrap.RabbitMQ, bootstrap.Logger, bootstrap.InternalConfig.Patient.RabbitMQEventQueue)
	if err != nil {
		return err
	}

	// Report and roster
	reportRenderer := report.NewPatientReportRenderer(
		allocCtx,
		bootstrap.Logger,
		time.Duration(bootstrap.InternalConfig.Report.RenderTimeoutInSeconds)*time.Second,
	)
	rosterExporter := spreadsheet.NewPatientRosterExporter()

	// Patient
	patientMongoRepository := patients.NewPatientMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	patientUsecase := patients.NewPatientUsecase(
		patientMongoRepository,
		lockerService,
		storageService,
		eventPublisher,
		reportRenderer,
		rosterExporter,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	patientController := controllers.NewPatientController(bootstrap.Logger, patientUsecase, bootstrap.InternalConfig)
	vocabularyController := controllers.NewVocabularyController(bootstrap.Logger, patientUsecase)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, patientController, vocabularyController)
	return nil
}

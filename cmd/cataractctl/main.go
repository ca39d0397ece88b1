package main

import (
	"cataractcare-service/internal/app/config"
	"cataractcare-service/internal/app/contracts"
	"cataractcare-service/internal/app/drivers/database"
	"cataractcare-service/internal/app/drivers/logger"
	"cataractcare-service/internal/app/services/patients"
	"cataractcare-service/internal/app/services/shared/spreadsheet"
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	log := logger.NewLogrusLogger(driverConfig, internalConfig, os.Stderr)

	rootCmd := &cobra.Command{
		Use:           "cataractctl",
		Short:         "Maintenance tools for the cataract screening record store",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(importCmd(driverConfig, internalConfig, log))
	rootCmd.AddCommand(exportCmd(driverConfig, internalConfig, log))

	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Fatal("cataractctl failed")
	}
}

// newPatientUsecase wires the usecase against the record store only. The
// commands never lock, upload, publish or render.
func newPatientUsecase(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig) (contracts.PatientUsecase, *mongo.Client) {
	mongoDB := database.NewMongoDB(driverConfig)
	repository := patients.NewPatientMongoRepository(mongoDB, driverConfig.MongoDB.DbName)
	usecase := patients.NewPatientUsecase(
		repository,
		nil,
		nil,
		nil,
		nil,
		spreadsheet.NewPatientRosterExporter(),
		internalConfig,
		logger.NewZapLogger(driverConfig, internalConfig),
	)
	return usecase, mongoDB
}

func disconnect(ctx context.Context, client *mongo.Client, log *logrus.Logger) {
	if err := client.Disconnect(ctx); err != nil {
		log.WithError(err).Warn("failed to disconnect from MongoDB")
	}
}

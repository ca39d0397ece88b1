package main

import (
	"cataractcare-service/internal/app/config"
	"cataractcare-service/internal/pkg/constvars"
	"context"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func exportCmd(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig, log *logrus.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the patient roster as a spreadsheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, _ := cmd.Flags().GetString("out")
			search, _ := cmd.Flags().GetString("search")

			ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
			defer cancel()

			usecase, mongoDB := newPatientUsecase(driverConfig, internalConfig)
			defer disconnect(context.WithoutCancel(ctx), mongoDB, log)

			data, err := usecase.ExportRoster(ctx, search)
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return err
			}

			log.WithFields(logrus.Fields{
				"out":    out,
				"search": search,
				"bytes":  len(data),
			}).Info("export finished")
			return nil
		},
	}
	cmd.Flags().String("out", constvars.PatientRosterFileName, "Destination .xlsx file")
	cmd.Flags().String("search", "", "Only export records matching this PID or name")
	return cmd
}

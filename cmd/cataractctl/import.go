package main

import (
	"cataractcare-service/internal/app/config"
	"cataractcare-service/internal/app/contracts"
	"cataractcare-service/internal/pkg/records"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

func importCmd(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig, log *logrus.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import a record store export keyed by PID",
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")
			perSecond, _ := cmd.Flags().GetInt("rate")
			if file == "" {
				return fmt.Errorf("--file is required")
			}

			f, err := os.Open(file)
			if err != nil {
				return err
			}
			defer f.Close()

			snapshot, err := readSnapshot(f)
			if err != nil {
				return fmt.Errorf("read %s: %w", file, err)
			}

			ctx := cmd.Context()
			usecase, mongoDB := newPatientUsecase(driverConfig, internalConfig)
			defer disconnect(context.WithoutCancel(ctx), mongoDB, log)

			limit := rate.Limit(perSecond)
			if perSecond <= 0 {
				limit = rate.Inf
			}
			limiter := rate.NewLimiter(limit, 1)
			imported, skipped, err := importSnapshot(ctx, usecase, snapshot, limiter, log)
			log.WithFields(logrus.Fields{
				"file":     file,
				"imported": imported,
				"skipped":  skipped,
			}).Info("import finished")
			return err
		},
	}
	cmd.Flags().String("file", "", "Path to the JSON export")
	cmd.Flags().Int("rate", internalConfig.Patient.ImportRateLimitPerSeconds, "Maximum record writes per second")
	return cmd
}

// readSnapshot decodes an export: one JSON object whose keys are PIDs.
func readSnapshot(r io.Reader) (map[string]interface{}, error) {
	var snapshot map[string]interface{}
	if err := json.NewDecoder(r).Decode(&snapshot); err != nil {
		return nil, err
	}
	return snapshot, nil
}

// importSnapshot writes every object entry in store key order. Entries that
// are not objects are skipped; the first write error stops the import.
func importSnapshot(ctx context.Context, usecase contracts.PatientUsecase, snapshot map[string]interface{}, limiter *rate.Limiter, log *logrus.Logger) (imported, skipped int, err error) {
	for _, key := range records.SortKeys(snapshot) {
		raw, ok := snapshot[key].(map[string]interface{})
		if !ok {
			log.WithField("pid", key).Warn("skipping entry that is not a record")
			skipped++
			continue
		}

		if err := limiter.Wait(ctx); err != nil {
			return imported, skipped, err
		}
		if err := usecase.Import(ctx, key, raw); err != nil {
			return imported, skipped, fmt.Errorf("import %s: %w", key, err)
		}
		imported++
		log.WithField("pid", key).Debug("record imported")
	}
	return imported, skipped, nil
}

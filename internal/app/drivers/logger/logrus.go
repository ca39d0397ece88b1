package logger

import (
	"cataractcare-service/internal/app/config"
	"cataractcare-service/internal/pkg/constvars"
	"io"

	"github.com/sirupsen/logrus"
)

// NewLogrusLogger builds the logger of the command line tools. Output goes
// to out so the tools can keep stdout for data.
func NewLogrusLogger(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig, out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)

	level, err := logrus.ParseLevel(driverConfig.Logger.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	switch internalConfig.App.Env {
	case constvars.AppEnvProduction:
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger
}

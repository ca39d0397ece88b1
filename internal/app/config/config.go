package config

import (
	"cataractcare-service/internal/pkg/constvars"
	"cataractcare-service/internal/pkg/utils"
	"strings"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "cataractcare"),
			Username: utils.GetEnvString("MONGODB_USERNAME", ""),
			Password: utils.GetEnvString("MONGODB_PASSWORD", ""),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		Chrome: Chrome{
			ExecPath:  utils.GetEnvString("CHROME_EXEC_PATH", ""),
			NoSandbox: utils.GetEnvBool("CHROME_NO_SANDBOX", true),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Port:                       utils.GetEnvString("APP_PORT", "8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1.0"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "localhost"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "/api"),
			APIKey:                     utils.GetEnvString("APP_API_KEY", ""),
			AllowedOrigins:             splitList(utils.GetEnvString("APP_ALLOWED_ORIGINS", "*")),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 100),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			MaxTimeRequestsPerSeconds:  utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 60),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 12),
			RequestTimeoutInSeconds:    utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
		},
		Patient: AppPatient{
			EditLockTTLInSeconds:      utils.GetEnvInt("PATIENT_EDIT_LOCK_TTL_IN_SECONDS", 30),
			RabbitMQEventQueue:        utils.GetEnvString("PATIENT_RABBITMQ_EVENT_QUEUE", "patient_record_events"),
			MinioImageBucketName:      utils.GetEnvString("PATIENT_MINIO_IMAGE_BUCKET_NAME", "patient-images"),
			MinioPublicBaseUrl:        utils.GetEnvString("PATIENT_MINIO_PUBLIC_BASE_URL", "http://localhost:9000"),
			ImageMaxUploadSizeInMB:    utils.GetEnvInt64("PATIENT_IMAGE_MAX_UPLOAD_SIZE_IN_MB", 8),
			ImportRateLimitPerSeconds: utils.GetEnvInt("PATIENT_IMPORT_RATE_LIMIT_PER_SECONDS", 50),
		},
		Report: AppReport{
			MinioBucketName:                          utils.GetEnvString("REPORT_MINIO_BUCKET_NAME", "patient-reports"),
			MinioPreSignedUrlObjectExpiryTimeInHours: utils.GetEnvInt("REPORT_MINIO_PRE_SIGNED_URL_EXPIRY_TIME_IN_HOURS", 24),
			RenderTimeoutInSeconds:                   utils.GetEnvInt("REPORT_RENDER_TIMEOUT_IN_SECONDS", 30),
		},
	}
}

func splitList(value string) []string {
	var result []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}
	return result
}

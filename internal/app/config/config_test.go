package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewInternalConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg := NewInternalConfig()

		assert.Equal(t, "/api", cfg.App.EndpointPrefix)
		assert.Equal(t, []string{"*"}, cfg.App.AllowedOrigins)
		assert.Equal(t, 30, cfg.Patient.EditLockTTLInSeconds)
		assert.Equal(t, int64(8), cfg.Patient.ImageMaxUploadSizeInMB)
	})

	t.Run("From Environment", func(t *testing.T) {
		t.Setenv("APP_ALLOWED_ORIGINS", "https://a.example, https://b.example,")
		t.Setenv("PATIENT_EDIT_LOCK_TTL_IN_SECONDS", "5")
		t.Setenv("REPORT_MINIO_BUCKET_NAME", "reports")

		cfg := NewInternalConfig()

		assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.App.AllowedOrigins)
		assert.Equal(t, 5, cfg.Patient.EditLockTTLInSeconds)
		assert.Equal(t, "reports", cfg.Report.MinioBucketName)
	})
}

func TestNewDriverConfig(t *testing.T) {
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("REDIS_DB", "2")

	cfg := NewDriverConfig()

	assert.True(t, cfg.Minio.UseSSL)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, "27017", cfg.MongoDB.Port)
}

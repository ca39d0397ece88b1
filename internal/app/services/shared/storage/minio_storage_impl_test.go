package storage

import (
	"context"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicObjectUrl(t *testing.T) {
	t.Run("Escapes Segments", func(t *testing.T) {
		got := publicObjectUrl("http://localhost:9000", "patient-images", "images/PID 1/left-a.jpg")
		assert.Equal(t, "http://localhost:9000/patient-images/images/PID%201/left-a.jpg", got)
	})

	t.Run("Trims Base Url", func(t *testing.T) {
		storage := NewMinioStorage(nil, "https://cdn.example.org/")
		got := storage.GetPublicObjectUrl("b", "o.png")
		assert.Equal(t, "https://cdn.example.org/b/o.png", got)
	})
}

func TestGetObjectUrlWithExpiryTime(t *testing.T) {
	client, err := minio.New("localhost:9000", &minio.Options{
		Creds:  credentials.NewStaticV4("minioadmin", "minioadmin", ""),
		Region: "us-east-1",
	})
	require.NoError(t, err)
	storage := NewMinioStorage(client, "http://localhost:9000")

	presigned, err := storage.GetObjectUrlWithExpiryTime(context.Background(), "patient-reports", "reports/101/r.pdf", time.Hour)

	require.NoError(t, err)
	assert.Contains(t, presigned, "http://localhost:9000/patient-reports/reports/101/r.pdf?")
	assert.Contains(t, presigned, "X-Amz-Expires=3600")
}

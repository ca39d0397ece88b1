package storage

import (
	"cataractcare-service/internal/app/contracts"
	"cataractcare-service/internal/pkg/exceptions"
	"context"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	MinioClient   *minio.Client
	PublicBaseUrl string
}

// NewMinioStorage wraps a MinIO client. publicBaseUrl is the address clients
// use to reach public buckets, e.g. "https://cdn.example.org".
func NewMinioStorage(minioClient *minio.Client, publicBaseUrl string) contracts.Storage {
	return &minioStorage{
		MinioClient:   minioClient,
		PublicBaseUrl: strings.TrimRight(publicBaseUrl, "/"),
	}
}

func (m *minioStorage) UploadObject(ctx context.Context, bucketName, objectName string, data io.Reader, size int64, contentType string) (string, error) {
	_, err := m.MinioClient.PutObject(ctx, bucketName, objectName, data, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", exceptions.ErrMinioCreateObject(err, bucketName)
	}
	return objectName, nil
}

func (m *minioStorage) GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error) {
	presignedURL, err := m.MinioClient.PresignedGetObject(ctx, bucketName, objectName, expiryTime, url.Values{})
	if err != nil {
		return "", exceptions.ErrMinioFindObjectPresignedURL(err, bucketName)
	}
	return presignedURL.String(), nil
}

func (m *minioStorage) GetPublicObjectUrl(bucketName, objectName string) string {
	return publicObjectUrl(m.PublicBaseUrl, bucketName, objectName)
}

func publicObjectUrl(baseUrl, bucketName, objectName string) string {
	segments := strings.Split(objectName, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	return baseUrl + "/" + url.PathEscape(bucketName) + "/" + strings.Join(segments, "/")
}

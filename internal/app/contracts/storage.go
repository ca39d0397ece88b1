package contracts

import (
	"context"
	"io"
	"time"
)

type Storage interface {
	UploadObject(ctx context.Context, bucketName, objectName string, data io.Reader, size int64, contentType string) (string, error)
	GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error)
	GetPublicObjectUrl(bucketName, objectName string) string
}

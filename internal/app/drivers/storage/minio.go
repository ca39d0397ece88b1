package storage

import (
	"cataractcare-service/internal/app/config"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// NewMinio connects to MinIO and creates any of the given buckets that do
// not exist yet.
func NewMinio(driverConfig *config.DriverConfig, bucketNames ...string) *minio.Client {
	endPoint := fmt.Sprintf("%s:%s", driverConfig.Minio.Host, driverConfig.Minio.Port)
	minioClient, err := minio.New(endPoint, &minio.Options{
		Creds:  credentials.NewStaticV4(driverConfig.Minio.Username, driverConfig.Minio.Password, ""),
		Secure: driverConfig.Minio.UseSSL,
	})
	if err != nil {
		log.Fatalf("Failed to initialize Minio Client: %s", err.Error())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for _, bucketName := range bucketNames {
		exists, err := minioClient.BucketExists(ctx, bucketName)
		if err != nil {
			log.Fatalf("Failed to check minio bucket %s: %s", bucketName, err.Error())
		}
		if exists {
			continue
		}
		err = minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{})
		if err != nil {
			log.Fatalf("Failed to create minio bucket %s: %s", bucketName, err.Error())
		}
		log.Printf("Created minio bucket %s", bucketName)
	}

	log.Println("Successfully connected to minio")
	return minioClient
}

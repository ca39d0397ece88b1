package database

import (
	"cataractcare-service/internal/app/config"
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

func NewMongoDB(driverConfig *config.DriverConfig) *mongo.Client {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbOptions := options.Client().ApplyURI(mongoURI(driverConfig.MongoDB))
	client, err := mongo.Connect(ctx, dbOptions)
	if err != nil {
		log.Fatalf("Failed to connect to mongo database: %s", err.Error())
	}
	err = client.Ping(ctx, readpref.Primary())
	if err != nil {
		log.Fatalf("Failed to ping or test the connection to mongo database: %s", err.Error())
	}
	log.Println("Successfully connected to mongo database")
	return client
}

// mongoURI leaves out the credentials section for unauthenticated
// development instances.
func mongoURI(cfg config.MongoDB) string {
	if cfg.Username == "" {
		return fmt.Sprintf("mongodb://%s:%s", cfg.Host, cfg.Port)
	}
	return fmt.Sprintf("mongodb://%s:%s@%s:%s", cfg.Username, cfg.Password, cfg.Host, cfg.Port)
}

package config

import (
	"context"
	"log"

	"github.com/go-chi/chi/v5"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	MongoDB        *mongo.Client
	Redis          *redis.Client
	Logger         *zap.Logger
	RabbitMQ       *amqp091.Connection
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
	// BrowserStop releases the shared headless Chrome allocator.
	BrowserStop func()
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.BrowserStop != nil {
		b.BrowserStop()
		log.Println("Successfully stopped headless browser")
	}

	err := b.Redis.Close()
	if err != nil {
		return err
	}
	log.Println("Successfully closing Redis")

	err = b.RabbitMQ.Close()
	if err != nil {
		return err
	}
	log.Println("Successfully closing RabbitMQ")

	err = b.MongoDB.Disconnect(ctx)
	if err != nil {
		return err
	}
	log.Println("Successfully closing MongoDB")

	// Sync on stdout/stderr returns EINVAL on some platforms; nothing to recover.
	_ = b.Logger.Sync()
	log.Println("Successfully closing Logger")

	return nil
}

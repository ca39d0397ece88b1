package messaging

import (
	"cataractcare-service/internal/app/config"
	"fmt"
	"log"

	"github.com/rabbitmq/amqp091-go"
)

func NewRabbitMQ(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig) *amqp091.Connection {
	connectionString := fmt.Sprintf(
		"amqp://%s:%s@%s:%s/",
		driverConfig.RabbitMQ.Username,
		driverConfig.RabbitMQ.Password,
		driverConfig.RabbitMQ.Host,
		driverConfig.RabbitMQ.Port,
	)
	conn, err := amqp091.DialConfig(connectionString, amqp091.Config{
		Properties: amqp091.Table{
			"connection_name": fmt.Sprintf("cataractcare-service/%s", internalConfig.App.Version),
		},
	})
	if err != nil {
		log.Fatalf("Failed to connect to rabbitMQ: %s", err.Error())
	}
	log.Println("Successfully connected to rabbitMQ")
	return conn
}

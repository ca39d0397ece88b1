package eventqueue

import (
	"cataractcare-service/internal/app/contracts"
	"cataractcare-service/internal/pkg/constvars"
	"cataractcare-service/internal/pkg/dto/requests"
	"cataractcare-service/internal/pkg/exceptions"
	"context"
	"fmt"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// confirmation is the broker outcome of one published message, satisfied by
// *amqp.DeferredConfirmation.
type confirmation interface {
	WaitContext(ctx context.Context) (bool, error)
}

// amqpChannel publishes one message and hands back its own confirmation. A
// nil confirmation means the channel is not in confirm mode.
type amqpChannel interface {
	PublishWithConfirm(ctx context.Context, key string, msg amqp.Publishing) (confirmation, error)
}

type confirmChannel struct {
	ch *amqp.Channel
}

func (c confirmChannel) PublishWithConfirm(ctx context.Context, key string, msg amqp.Publishing) (confirmation, error) {
	deferred, err := c.ch.PublishWithDeferredConfirmWithContext(ctx, "", key, false, false, msg)
	if err != nil || deferred == nil {
		return nil, err
	}
	return deferred, nil
}

type patientEventPublisher struct {
	ch    amqpChannel
	log   *zap.Logger
	queue string
}

// NewPatientEventPublisher declares the durable event queue, enables
// publisher confirms and returns a publisher bound to it.
func NewPatientEventPublisher(conn *amqp.Connection, log *zap.Logger, queue string) (contracts.PatientEventPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, exceptions.ErrRabbitMQOpenChannel(err)
	}

	_, err = ch.QueueDeclare(
		queue, // name
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,   // args
	)
	if err != nil {
		return nil, exceptions.ErrRabbitMQOpenChannel(err)
	}

	if err := ch.Confirm(false); err != nil {
		return nil, exceptions.ErrRabbitMQOpenChannel(err)
	}

	return &patientEventPublisher{
		ch:    confirmChannel{ch: ch},
		log:   log,
		queue: queue,
	}, nil
}

// Publish sends event as a persistent JSON message and waits for the broker
// to confirm it.
func (p *patientEventPublisher) Publish(ctx context.Context, event *requests.PatientRecordEvent) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	p.log.Info("patientEventPublisher.Publish called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventKey, event.Event),
		zap.String(constvars.LoggingPatientIDKey, event.PID),
	)

	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Type:         event.Event,
		Timestamp:    event.OccurredAt,
		Headers: amqp.Table{
			"message_type":     "JSON",
			"requeue_strategy": "DROP",
			"request_id":       requestID,
		},
	}

	confirmed, err := p.ch.PublishWithConfirm(ctx, p.queue, msg)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.queue)
	}

	if confirmed != nil {
		ack, err := confirmed.WaitContext(ctx)
		if err != nil {
			return exceptions.ErrRabbitMQPublishMessage(err, p.queue)
		}
		if !ack {
			return exceptions.ErrRabbitMQPublishMessage(fmt.Errorf("message not confirmed"), p.queue)
		}
	}

	p.log.Info("patientEventPublisher.Publish succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueKey, p.queue),
	)
	return nil
}

package eventqueue

import (
	"cataractcare-service/internal/pkg/constvars"
	"cataractcare-service/internal/pkg/dto/requests"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeConfirmation struct {
	result chan bool
}

func newFakeConfirmation() *fakeConfirmation {
	return &fakeConfirmation{result: make(chan bool, 1)}
}

func (c *fakeConfirmation) WaitContext(ctx context.Context) (bool, error) {
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case ack := <-c.result:
		return ack, nil
	}
}

type fakeChannel struct {
	published     []amqp.Publishing
	keys          []string
	confirmations []*fakeConfirmation
	err           error
	unconfirmed   bool
}

func (f *fakeChannel) PublishWithConfirm(ctx context.Context, key string, msg amqp.Publishing) (confirmation, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.keys = append(f.keys, key)
	f.published = append(f.published, msg)
	if f.unconfirmed {
		return nil, nil
	}
	confirmation := newFakeConfirmation()
	f.confirmations = append(f.confirmations, confirmation)
	return confirmation, nil
}

// ackingChannel resolves each published message with the next queued ack.
type ackingChannel struct {
	fakeChannel
	acks []bool
}

func (a *ackingChannel) PublishWithConfirm(ctx context.Context, key string, msg amqp.Publishing) (confirmation, error) {
	confirmed, err := a.fakeChannel.PublishWithConfirm(ctx, key, msg)
	if err != nil || confirmed == nil {
		return confirmed, err
	}
	if len(a.acks) > 0 {
		confirmed.(*fakeConfirmation).result <- a.acks[0]
		a.acks = a.acks[1:]
	}
	return confirmed, nil
}

func TestPatientEventPublisher(t *testing.T) {
	event := &requests.PatientRecordEvent{
		Event:      constvars.PatientEventUpdated,
		PID:        "101",
		Fields:     []string{"name"},
		OccurredAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}

	t.Run("Persistent JSON Message", func(t *testing.T) {
		ch := &ackingChannel{acks: []bool{true}}
		publisher := &patientEventPublisher{ch: ch, log: zap.NewNop(), queue: "patient_record_events"}

		err := publisher.Publish(context.Background(), event)

		require.NoError(t, err)
		require.Len(t, ch.published, 1)
		assert.Equal(t, "patient_record_events", ch.keys[0])
		msg := ch.published[0]
		assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
		assert.Equal(t, constvars.PatientEventUpdated, msg.Type)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(msg.Body, &body))
		assert.Equal(t, "101", body["pid"])
		assert.Equal(t, "2024-05-01T10:00:00Z", body["occurred_at"])
	})

	t.Run("Negative Ack", func(t *testing.T) {
		publisher := &patientEventPublisher{ch: &ackingChannel{acks: []bool{false}}, log: zap.NewNop(), queue: "q"}

		assert.ErrorContains(t, publisher.Publish(context.Background(), event), "message not confirmed")
	})

	t.Run("Late Confirmation Does Not Leak Into Next Publish", func(t *testing.T) {
		ch := &ackingChannel{}
		publisher := &patientEventPublisher{ch: ch, log: zap.NewNop(), queue: "q"}

		cancelled, cancel := context.WithCancel(context.Background())
		cancel()
		err := publisher.Publish(cancelled, event)
		assert.ErrorIs(t, err, context.Canceled)

		// the first message is nacked only after its publish gave up
		ch.confirmations[0].result <- false
		ch.acks = []bool{true}

		err = publisher.Publish(context.Background(), event)

		assert.NoError(t, err)
		assert.Len(t, ch.published, 2)
		assert.Len(t, ch.confirmations[0].result, 1)
	})

	t.Run("Channel Without Confirm Mode", func(t *testing.T) {
		publisher := &patientEventPublisher{ch: &fakeChannel{unconfirmed: true}, log: zap.NewNop(), queue: "q"}

		assert.NoError(t, publisher.Publish(context.Background(), event))
	})

	t.Run("Broker Error", func(t *testing.T) {
		publisher := &patientEventPublisher{ch: &fakeChannel{err: errors.New("channel closed")}, log: zap.NewNop(), queue: "q"}

		err := publisher.Publish(context.Background(), event)

		assert.ErrorContains(t, err, "channel closed")
	})
}

package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ronix-api/internal/application/ports"
)

type fakeChannel struct {
	key     string
	msg     amqp.Publishing
	err     error
	closed  bool
	publish int
}

func (f *fakeChannel) PublishWithContext(_ context.Context, _, key string, _, _ bool, msg amqp.Publishing) error {
	f.publish++
	f.key = key
	f.msg = msg
	return f.err
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func TestPublishOrderEvent_MensajePersistenteJSON(t *testing.T) {
	ch := &fakeChannel{}
	p := &AMQPPublisher{queue: "order_events", openChannel: func() (publishChannel, error) { return ch, nil }}
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	err := p.PublishOrderEvent(context.Background(), ports.OrderEvent{
		Type: ports.OrderEventPlaced, OrderID: "o1", Email: "a@x.com", Status: "pending", OccurredAt: at,
	})
	require.NoError(t, err)

	assert.Equal(t, "order_events", ch.key)
	assert.Equal(t, "application/json", ch.msg.ContentType)
	assert.Equal(t, amqp.Persistent, ch.msg.DeliveryMode)
	assert.Equal(t, ports.OrderEventPlaced, ch.msg.Type)
	assert.NotEmpty(t, ch.msg.MessageId)
	assert.True(t, ch.closed, "el canal se cierra después de publicar")

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(ch.msg.Body, &body))
	assert.Equal(t, "o1", body["order_id"])
	assert.Equal(t, "pending", body["status"])
}

func TestPublishOrderEvent_Errores(t *testing.T) {
	p := &AMQPPublisher{queue: "q", openChannel: func() (publishChannel, error) { return nil, errors.New("connection closed") }}
	assert.Error(t, p.PublishOrderEvent(context.Background(), ports.OrderEvent{Type: ports.OrderEventDeleted}))

	ch := &fakeChannel{err: errors.New("nack")}
	p = &AMQPPublisher{queue: "q", openChannel: func() (publishChannel, error) { return ch, nil }}
	err := p.PublishOrderEvent(context.Background(), ports.OrderEvent{Type: ports.OrderEventDeleted})
	assert.ErrorContains(t, err, ports.OrderEventDeleted)
	assert.True(t, ch.closed)
}

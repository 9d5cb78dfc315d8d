// Package events publica los eventos de órdenes en RabbitMQ.
package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/jhoicas/ronix-api/internal/application/ports"
	"github.com/jhoicas/ronix-api/pkg/config"
)

var _ ports.OrderEventPublisher = (*AMQPPublisher)(nil)

// publishChannel subconjunto de *amqp.Channel usado al publicar.
type publishChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// AMQPPublisher publica cada evento en una cola durable. Abre un canal por publicación,
// así puede usarse desde varios goroutines sin coordinación extra.
type AMQPPublisher struct {
	conn        *amqp.Connection
	queue       string
	openChannel func() (publishChannel, error)
}

// NewAMQPPublisher conecta al broker y declara la cola.
func NewAMQPPublisher(cfg config.AMQPConfig) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("conectar AMQP: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("abrir canal: %w", err)
	}
	defer ch.Close()

	if _, err := ch.QueueDeclare(
		cfg.OrderQueue, // name
		true,           // durable
		false,          // delete when unused
		false,          // exclusive
		false,          // no-wait
		nil,            // arguments
	); err != nil {
		conn.Close()
		return nil, fmt.Errorf("declarar cola %s: %w", cfg.OrderQueue, err)
	}

	return &AMQPPublisher{
		conn:  conn,
		queue: cfg.OrderQueue,
		openChannel: func() (publishChannel, error) {
			return conn.Channel()
		},
	}, nil
}

// PublishOrderEvent serializa el evento y lo publica como mensaje persistente.
func (p *AMQPPublisher) PublishOrderEvent(ctx context.Context, event ports.OrderEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("serializar evento: %w", err)
	}

	ch, err := p.openChannel()
	if err != nil {
		return fmt.Errorf("abrir canal: %w", err)
	}
	defer ch.Close()

	err = ch.PublishWithContext(ctx,
		"",      // exchange
		p.queue, // routing key (queue name)
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    uuid.NewString(),
			Type:         event.Type,
			Timestamp:    event.OccurredAt,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publicar %s: %w", event.Type, err)
	}
	return nil
}

// Close cierra la conexión con el broker.
func (p *AMQPPublisher) Close() error {
	if p.conn == nil {
		return nil
	}
	return p.conn.Close()
}

// Package publisher sends booking events to downstream consumers.
package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/srgjo27/hotel_booking/internal/core/domain"
)

// channel is the part of *amqp.Channel the publisher uses.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// RabbitPublisher writes each event as a persistent JSON message to a durable
// queue through the default exchange.
type RabbitPublisher struct {
	mu    sync.Mutex
	ch    channel
	queue string
	now   func() time.Time
}

func NewRabbitPublisher(conn *amqp.Connection, queue string) (*RabbitPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if _, err := ch.QueueDeclare(
		queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		ch.Close()
		return nil, fmt.Errorf("declare queue %s: %w", queue, err)
	}

	return newRabbitPublisher(ch, queue), nil
}

func newRabbitPublisher(ch channel, queue string) *RabbitPublisher {
	return &RabbitPublisher{ch: ch, queue: queue, now: time.Now}
}

func (p *RabbitPublisher) Publish(ctx context.Context, event domain.BookingEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", event.Type, err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    p.now().UTC(),
		Type:         string(event.Type),
		MessageId:    fmt.Sprintf("%s:%s:%s", event.BookingID, event.Type, event.Status),
		Body:         body,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ch.PublishWithContext(ctx, "", p.queue, false, false, msg); err != nil {
		return fmt.Errorf("publish %s: %w", event.Type, err)
	}
	return nil
}

func (p *RabbitPublisher) Close() error {
	return p.ch.Close()
}

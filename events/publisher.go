// Package events publishes reservation status-change notifications. When a
// broker is configured the events go to RabbitMQ; otherwise they are only
// logged. Publish failures are logged and returned so callers can ignore
// them without interrupting the request flow.
package events

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// StatusQueue is the durable queue reservation status events are
// published to.
const StatusQueue = "reservation.status"

// StatusEvent is emitted whenever a reservation is confirmed or cancelled.
// It carries enough for downstream consumers to log or notify without
// querying the database.
type StatusEvent struct {
	ReservationID uint   `json:"reservation_id"`
	ReferenceCode string `json:"reference_code"`
	Status        string `json:"status"`
	Actor         string `json:"actor"`
	OccurredAt    string `json:"occurred_at"`
}

type Publisher interface {
	PublishStatus(ctx context.Context, event StatusEvent) error
}

// NewPublisherFromEnv returns an AMQP publisher when RABBITMQ_URL or
// AMQP_URL is set, and a log-only publisher otherwise.
func NewPublisherFromEnv() Publisher {
	url := os.Getenv("RABBITMQ_URL")
	if url == "" {
		url = os.Getenv("AMQP_URL")
	}
	if url == "" {
		log.Println("ℹ️  no RABBITMQ_URL/AMQP_URL set; reservation events will only be logged")
		return LogPublisher{}
	}
	return &AMQPPublisher{URL: url}
}

// LogPublisher writes events to the process log only.
type LogPublisher struct{}

func (LogPublisher) PublishStatus(_ context.Context, event StatusEvent) error {
	log.Printf("📣 reservation %d (%s) -> %s by %s", event.ReservationID, event.ReferenceCode, event.Status, event.Actor)
	return nil
}

// AMQPPublisher publishes events to a RabbitMQ queue. A connection is
// opened per publish; status transitions are rare enough that pooling is
// not worth the bookkeeping.
type AMQPPublisher struct {
	URL string
}

func (p *AMQPPublisher) PublishStatus(ctx context.Context, event StatusEvent) error {
	conn, err := amqp.Dial(p.URL)
	if err != nil {
		log.Printf("rabbitmq: dial failed: %v", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("rabbitmq: channel open failed: %v", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	// Idempotent declare; durable so events survive broker restarts.
	if _, err := ch.QueueDeclare(StatusQueue, true, false, false, false, nil); err != nil {
		log.Printf("rabbitmq: queue declare failed: %v", err)
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("rabbitmq: marshal event failed: %v", err)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", StatusQueue, false, false, pub); err != nil {
		log.Printf("rabbitmq: publish failed: %v", err)
		return err
	}
	return nil
}

package notify

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const notificationQueue = "pos.notifications"

// AMQPPublisher mirrors events to a durable RabbitMQ queue so that
// other instances (and their subscribers) see them. It attempts to be
// robust and to never panic; any failure is logged and swallowed,
// keeping the channel's fire-and-forget contract.
type AMQPPublisher struct {
	url string
}

// NewAMQPPublisher returns a publisher for the given broker URL.
func NewAMQPPublisher(url string) *AMQPPublisher {
	return &AMQPPublisher{url: url}
}

// Publish marshals the event and sends it to the notification queue.
// The send runs on its own goroutine so a slow or unreachable broker
// never delays the mutation that raised the event. Connection, declare
// and publish errors are logged, never surfaced.
func (p *AMQPPublisher) Publish(ev Event) {
	go p.publish(ev)
}

func (p *AMQPPublisher) publish(ev Event) {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		log.Printf("notify: amqp dial failed: %v", err)
		return
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("notify: amqp channel open failed: %v", err)
		return
	}
	defer func() { _ = ch.Close() }()

	// Ensure the queue exists (idempotent). Durable so events survive
	// broker restarts even though consumers may never replay them.
	if _, err := ch.QueueDeclare(notificationQueue, true, false, false, false, nil); err != nil {
		log.Printf("notify: amqp queue declare failed: %v", err)
		return
	}

	body, err := json.Marshal(ev)
	if err != nil {
		log.Printf("notify: marshal event failed: %v", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := ch.PublishWithContext(ctx,
		"",                // default exchange
		notificationQueue, // routing key = queue name
		false,             // mandatory
		false,             // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Timestamp:   time.Now().UTC(),
			Body:        body,
		},
	); err != nil {
		log.Printf("notify: amqp publish failed: %v", err)
	}
}

package notify

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// StartRelay connects to RabbitMQ, declares the notification queue and
// forwards every consumed event into the hub, where connected stream
// subscribers pick it up. It runs a reconnect loop with exponential
// backoff and never returns under normal operation; malformed messages
// are rejected without requeue so the relay keeps running.
func StartRelay(url string, hub *Hub) {
	backoff := time.Second
	for {
		conn, err := amqp.Dial(url)
		if err != nil {
			log.Printf("notify-relay: dial failed: %v; retrying in %s", err, backoff)
			time.Sleep(backoff)
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second // reset after successful connect

		if err := relayLoop(conn, hub); err != nil {
			log.Printf("notify-relay: consume loop ended: %v; reconnecting", err)
		}
		_ = conn.Close()
		time.Sleep(2 * time.Second)
	}
}

func relayLoop(conn *amqp.Connection, hub *Hub) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(notificationQueue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}

	msgs, err := ch.Consume(notificationQueue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	for d := range msgs {
		var ev Event
		if err := json.Unmarshal(d.Body, &ev); err != nil {
			log.Printf("notify-relay: unmarshal failed: %v", err)
			_ = d.Nack(false, false) // reject, do not requeue to avoid tight loops
			continue
		}
		hub.Publish(ev)
		_ = d.Ack(false)
	}
	return errors.New("deliveries channel closed")
}

// Package messaging opens the RabbitMQ connection booking events go out on.
package messaging

import (
	"fmt"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	maxRetries = 5
	retryDelay = 2 * time.Second
)

// Dial connects to the broker at url, retrying while it starts up.
func Dial(url string) (*amqp.Connection, error) {
	var (
		conn *amqp.Connection
		err  error
	)

	for i := 1; i <= maxRetries; i++ {
		log.Printf("Connecting to RabbitMQ (Attempt %d/%d)...", i, maxRetries)

		conn, err = amqp.Dial(url)
		if err == nil {
			log.Println("RabbitMQ connected successfully!")
			return conn, nil
		}

		time.Sleep(retryDelay)
	}

	return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
}

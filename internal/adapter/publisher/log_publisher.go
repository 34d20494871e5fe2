package publisher

import (
	"context"
	"log"

	"github.com/srgjo27/hotel_booking/internal/core/domain"
)

// LogPublisher writes events to the process log. It stands in for RabbitMQ
// when no broker is configured.
type LogPublisher struct{}

func (LogPublisher) Publish(_ context.Context, event domain.BookingEvent) error {
	log.Printf("Event %s: booking %s is %s, room %s is %s",
		event.Type, event.BookingID, event.Status, event.RoomNumber, event.RoomStatus)
	return nil
}

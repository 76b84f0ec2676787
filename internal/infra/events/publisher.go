// Package events publishes booking lifecycle events to a Redis stream via
// watermill. Downstream consumers (notifications, analytics) subscribe out
// of process.
package events

import (
	"encoding/json"
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/pkg/errs"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type BookingConfirmed struct {
	BookingNumber string    `json:"booking_number"`
	ClientID      uuid.UUID `json:"client_id"`
	TripType      string    `json:"trip_type"`
	ItemID        string    `json:"item_id"`
	TotalCents    int64     `json:"total_cents"`
	Currency      string    `json:"currency"`
	BookedAt      time.Time `json:"booked_at"`
}

type Publisher struct {
	publisher message.Publisher
	topic     string
}

func NewRedisPublisher(client *redis.Client, wlogger watermill.LoggerAdapter, topic string) (*Publisher, error) {
	publisher, err := redisstream.NewPublisher(redisstream.PublisherConfig{
		Client: client,
	}, wlogger)
	if err != nil {
		return nil, errs.Wrap(err, "create redis publisher")
	}
	return &Publisher{publisher: publisher, topic: topic}, nil
}

// NewPublisher wraps an existing watermill publisher; tests pass a gochannel
// pubsub here.
func NewPublisher(publisher message.Publisher, topic string) *Publisher {
	return &Publisher{publisher: publisher, topic: topic}
}

func (p *Publisher) PublishBookingConfirmed(clientID uuid.UUID, c *booking.Confirmation, currency string) error {
	event := BookingConfirmed{
		BookingNumber: c.BookingNumber(),
		ClientID:      clientID,
		TripType:      c.Draft().TripType().String(),
		ItemID:        c.Draft().Item().ItemID(),
		TotalCents:    c.Quote().Total.Cents(),
		Currency:      currency,
		BookedAt:      c.BookedAt(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return errs.Wrap(err, "marshal booking confirmed event")
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	return p.publisher.Publish(p.topic, msg)
}

func (p *Publisher) Close() error {
	return p.publisher.Close()
}

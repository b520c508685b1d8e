package events

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/m04kA/SMC-LessonBooking/internal/domain"
)

// channel подмножество *amqp.Channel
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Publisher публикует события бронирований в topic exchange RabbitMQ
type Publisher struct {
	conn     *amqp.Connection
	ch       channel
	exchange string
	now      func() time.Time
}

// NewPublisher подключается к брокеру и объявляет exchange
func NewPublisher(url, exchange string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("%w: dial: %v", ErrConnect, err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%w: open channel: %v", ErrConnect, err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("%w: declare exchange %s: %v", ErrConnect, exchange, err)
	}
	return &Publisher{conn: conn, ch: ch, exchange: exchange, now: time.Now}, nil
}

func (p *Publisher) PublishBookingCreated(ctx context.Context, b domain.Booking) error {
	return p.publish(ctx, RoutingKeyBookingCreated, b)
}

func (p *Publisher) PublishBookingCancelled(ctx context.Context, b domain.Booking) error {
	return p.publish(ctx, RoutingKeyBookingCancelled, b)
}

func (p *Publisher) publish(ctx context.Context, key string, b domain.Booking) error {
	body, err := json.Marshal(newBookingEvent(key, b, p.now()))
	if err != nil {
		return fmt.Errorf("%w: marshal %s: %v", ErrPublish, key, err)
	}

	err = p.ch.PublishWithContext(ctx, p.exchange, key, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    b.ID,
		Timestamp:    p.now(),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("%w: %s id=%s: %v", ErrPublish, key, b.ID, err)
	}
	return nil
}

func (p *Publisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// Noop издатель для конфигурации без брокера
type Noop struct{}

func (Noop) PublishBookingCreated(context.Context, domain.Booking) error {
	return nil
}

func (Noop) PublishBookingCancelled(context.Context, domain.Booking) error {
	return nil
}

func (Noop) Close() error {
	return nil
}

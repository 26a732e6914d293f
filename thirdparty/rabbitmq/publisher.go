package rabbitmq

import (
	"context"
	"encoding/json"
	"time"

	"github.com/muhammadheryan/fashion-directory/constant"
	"github.com/rabbitmq/amqp091-go"
)

type DesignerEventMessage struct {
	Type       constant.DesignerEventType `json:"type"`
	DesignerID uint64                     `json:"designer_id"`
	Name       string                     `json:"name,omitempty"`
	OccurredAt time.Time                  `json:"occurred_at"`
}

type ResetExpirationMessage struct {
	TokenID   string    `json:"token_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// DesignerEventPublisher announces changes to the designer collection.
type DesignerEventPublisher interface {
	PublishDesignerEvent(ctx context.Context, msg DesignerEventMessage) error
}

// ResetExpirationPublisher schedules the expiry of a password reset token.
type ResetExpirationPublisher interface {
	PublishResetExpiration(ctx context.Context, msg ResetExpirationMessage) error
}

type Publisher struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

func NewPublisher(host string, port int, user, password string) (*Publisher, error) {
	conn, channel, err := dial(host, port, user, password)
	if err != nil {
		return nil, err
	}
	return &Publisher{conn: conn, channel: channel}, nil
}

func (p *Publisher) PublishDesignerEvent(ctx context.Context, msg DesignerEventMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	return p.channel.PublishWithContext(ctx,
		designerEventsExchange, // exchange
		string(msg.Type),       // routing key
		false,                  // mandatory
		false,                  // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    msg.OccurredAt,
			Body:         body,
		},
	)
}

func (p *Publisher) PublishResetExpiration(ctx context.Context, msg ResetExpirationMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	return p.channel.PublishWithContext(ctx,
		resetExpirationExchange,
		resetExpirationRoutingKey,
		false,
		false,
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Body:         body,
			Headers: amqp091.Table{
				"x-delay": delayMillis(msg.ExpiresAt, time.Now()),
			},
		},
	)
}

func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}

func delayMillis(at, now time.Time) int64 {
	delay := at.Sub(now).Milliseconds()
	if delay < 0 {
		return 0
	}
	return delay
}

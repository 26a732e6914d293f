package rabbitmq

import (
	"fmt"

	"github.com/rabbitmq/amqp091-go"
)

const (
	designerEventsExchange = "designer_events"

	resetExpirationExchange   = "password_reset_expiration_exchange"
	resetExpirationQueue      = "password_reset_expiration_queue"
	resetExpirationRoutingKey = "password_reset_expiration"
)

func dial(host string, port int, user, password string) (*amqp091.Connection, *amqp091.Channel, error) {
	dsn := fmt.Sprintf("amqp://%s:%s@%s:%d/", user, password, host, port)
	conn, err := amqp091.Dial(dsn)
	if err != nil {
		return nil, nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, err
	}

	if err := declare(channel); err != nil {
		channel.Close()
		conn.Close()
		return nil, nil, err
	}
	return conn, channel, nil
}

// declare sets up both exchanges and the expiration queue. It is
// idempotent, so publisher and consumer both run it.
func declare(channel *amqp091.Channel) error {
	err := channel.ExchangeDeclare(
		designerEventsExchange, // name
		"topic",                // type
		true,                   // durable
		false,                  // auto-delete
		false,                  // internal
		false,                  // no-wait
		nil,                    // arguments
	)
	if err != nil {
		return err
	}

	// needs the rabbitmq_delayed_message_exchange plugin
	err = channel.ExchangeDeclare(
		resetExpirationExchange,
		"x-delayed-message",
		true,
		false,
		false,
		false,
		amqp091.Table{"x-delayed-type": "direct"},
	)
	if err != nil {
		return err
	}

	_, err = channel.QueueDeclare(
		resetExpirationQueue, // name
		true,                 // durable
		false,                // auto-delete
		false,                // exclusive
		false,                // no-wait
		nil,                  // arguments
	)
	if err != nil {
		return err
	}

	return channel.QueueBind(
		resetExpirationQueue,
		resetExpirationRoutingKey,
		resetExpirationExchange,
		false,
		nil,
	)
}

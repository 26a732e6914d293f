package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/muhammadheryan/fashion-directory/utils/logger"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Consumer expires password reset tokens by calling the internal API when
// their delayed expiration message arrives.
type Consumer struct {
	conn       *amqp091.Connection
	channel    *amqp091.Channel
	apiURL     string
	apiKey     string
	httpClient *http.Client
}

func NewConsumer(host string, port int, user, password, apiURL, apiKey string) (*Consumer, error) {
	conn, channel, err := dial(host, port, user, password)
	if err != nil {
		return nil, err
	}

	return &Consumer{
		conn:       conn,
		channel:    channel,
		apiURL:     apiURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}, nil
}

// Run consumes until ctx is done or the channel is closed.
func (c *Consumer) Run(ctx context.Context) error {
	// process one message at a time
	if err := c.channel.Qos(1, 0, false); err != nil {
		return err
	}

	msgs, err := c.channel.Consume(
		resetExpirationQueue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-msgs:
			if !ok {
				return fmt.Errorf("delivery channel closed")
			}

			if err := c.handle(ctx, msg.Body); err != nil {
				if errors.Is(err, errUndecodable) {
					_ = msg.Ack(false)
					continue
				}
				// requeue
				_ = msg.Nack(false, true)
				continue
			}
			_ = msg.Ack(false)
		}
	}
}

var errUndecodable = errors.New("undecodable message")

func (c *Consumer) handle(ctx context.Context, body []byte) error {
	var resetMsg ResetExpirationMessage
	if err := json.Unmarshal(body, &resetMsg); err != nil || resetMsg.TokenID == "" {
		logger.Error("[Consumer] failed to decode reset expiration message", zap.ByteString("body", body))
		return errUndecodable
	}

	if err := c.callExpireAPI(ctx, resetMsg.TokenID); err != nil {
		logger.Error("[Consumer] failed to expire reset token", zap.String("token_id", resetMsg.TokenID), zap.Error(err))
		return err
	}

	logger.Info("[Consumer] reset token expired", zap.String("token_id", resetMsg.TokenID))
	return nil
}

func (c *Consumer) callExpireAPI(ctx context.Context, tokenID string) error {
	endpoint := fmt.Sprintf("%s/internal/v1/password-reset/%s/expire", c.apiURL, url.PathEscape(tokenID))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return err
	}

	// internal service key
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Internal-Service", "password-reset-expiration-consumer")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 500 {
		return fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	return nil
}

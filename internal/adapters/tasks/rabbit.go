package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// Envelope is the JSON task message published to the queue. ID identifies a
// task across redeliveries; handlers must be idempotent.
type Envelope struct {
	ID         string            `json:"id"`
	Task       string            `json:"task"`
	Params     map[string]string `json:"params"`
	EnqueuedAt time.Time         `json:"enqueued_at"`
}

// Client is a RabbitMQ-backed deferred task queue. It implements
// domain.TaskQueue on the publish side; the worker consumes with Consume.
type Client struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	queue    string
	logger   *slog.Logger
}

// NewClient connects to RabbitMQ and declares the durable exchange, queue,
// and binding used for deferred tasks.
func NewClient(url, exchange, queue string, logger *slog.Logger) (*Client, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open RabbitMQ channel: %w", err)
	}

	if err := ch.ExchangeDeclare(exchange, "direct", true, false, false, false, nil); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}
	if err := ch.QueueBind(queue, "", exchange, false, nil); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("bind queue: %w", err)
	}

	logger.Info("task queue initialized", "exchange", exchange, "queue", queue)
	return &Client{
		conn:     conn,
		channel:  ch,
		exchange: exchange,
		queue:    queue,
		logger:   logger,
	}, nil
}

func (c *Client) Close() {
	if c.channel != nil {
		_ = c.channel.Close()
	}
	if c.conn != nil {
		_ = c.conn.Close()
	}
	c.logger.Info("task queue connection closed")
}

// Enqueue publishes a named task with its parameter bag. Delivery is
// at-least-once; the publish does not wait for execution.
func (c *Client) Enqueue(ctx context.Context, task string, params map[string]string) error {
	env := Envelope{
		ID:         uuid.NewString(),
		Task:       task,
		Params:     params,
		EnqueuedAt: time.Now(),
	}
	body, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal task envelope: %w", err)
	}

	err = c.channel.PublishWithContext(ctx, c.exchange, "", false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    env.ID,
		Timestamp:    env.EnqueuedAt,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish task: %w", err)
	}
	c.logger.Debug("task enqueued", "task", task, "task_id", env.ID)
	return nil
}

// Consume starts delivering task envelopes to handler in a background
// goroutine. A handler error nacks the message back onto the queue.
func (c *Client) Consume(handler func(Envelope) error) error {
	msgs, err := c.channel.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("start consuming: %w", err)
	}

	go func() {
		for d := range msgs {
			var env Envelope
			if err := json.Unmarshal(d.Body, &env); err != nil {
				c.logger.Error("dropping malformed task message", "err", err)
				_ = d.Nack(false, false)
				continue
			}
			if err := handler(env); err != nil {
				c.logger.Warn("task failed, requeueing", "task", env.Task, "task_id", env.ID, "err", err)
				_ = d.Nack(false, true)
				continue
			}
			_ = d.Ack(false)
		}
	}()

	c.logger.Info("started consuming tasks", "queue", c.queue)
	return nil
}

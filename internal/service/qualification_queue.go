package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/fadilmartias/rozgar/internal/config"
	amqp "github.com/rabbitmq/amqp091-go"
)

// TaskHandler processes one qualification task by id.
type TaskHandler func(ctx context.Context, taskID string) error

// Dispatcher hands qualification tasks to a worker. Delivery is at most once:
// a lost message leaves the task pending, it is never run twice.
type Dispatcher interface {
	Dispatch(ctx context.Context, taskID string) error
}

// InProcessDispatcher runs each task on its own goroutine.
type InProcessDispatcher struct {
	handle  TaskHandler
	timeout time.Duration
}

func NewInProcessDispatcher(handle TaskHandler) *InProcessDispatcher {
	return &InProcessDispatcher{handle: handle, timeout: time.Minute}
}

func (d *InProcessDispatcher) Dispatch(_ context.Context, taskID string) error {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()
		if err := d.handle(ctx, taskID); err != nil {
			log.Printf("qualification task %s: %v", taskID, err)
		}
	}()
	return nil
}

// RabbitDispatcher publishes task ids to a durable queue and consumes them
// with auto-ack, which gives at-most-once delivery.
type RabbitDispatcher struct {
	conn  *amqp.Connection
	ch    *amqp.Channel
	queue string
}

func NewRabbitDispatcher(cfg *config.RabbitConfig) (*RabbitDispatcher, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}
	if _, err := ch.QueueDeclare(cfg.Queue, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("rabbitmq declare %s: %w", cfg.Queue, err)
	}
	return &RabbitDispatcher{conn: conn, ch: ch, queue: cfg.Queue}, nil
}

func (d *RabbitDispatcher) Dispatch(ctx context.Context, taskID string) error {
	return d.ch.PublishWithContext(ctx, "", d.queue, false, false, amqp.Publishing{
		ContentType:  "text/plain",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Body:         []byte(taskID),
	})
}

// Consume runs handle for every delivered task until ctx is done.
func (d *RabbitDispatcher) Consume(ctx context.Context, handle TaskHandler) error {
	deliveries, err := d.ch.Consume(d.queue, "", true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("rabbitmq consume %s: %w", d.queue, err)
	}
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-deliveries:
				if !ok {
					log.Printf("rabbitmq deliveries closed for %s", d.queue)
					return
				}
				taskCtx, cancel := context.WithTimeout(ctx, time.Minute)
				if err := handle(taskCtx, string(msg.Body)); err != nil {
					log.Printf("qualification task %s: %v", msg.Body, err)
				}
				cancel()
			}
		}
	}()
	return nil
}

func (d *RabbitDispatcher) Close() error {
	if err := d.ch.Close(); err != nil {
		log.Printf("rabbitmq channel close: %v", err)
	}
	return d.conn.Close()
}

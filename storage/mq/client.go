package mq

import (
	"context"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"

	"Tripweave/config"
)

var (
	conn     *amqp.Connection
	connOnce sync.Once
	connErr  error
)

const (
	// 延迟交换机，依赖 rabbitmq_delayed_message_exchange 插件
	DelayedExchange = "scheduler.delayed"
	// 事件总线
	EventsExchange = "events.topic"
)

func Init() error {
	connOnce.Do(func() {
		url := config.Cfg.GetRabbitMQURL()

		conn, connErr = amqp.Dial(url)
		if connErr != nil {
			return
		}

		connErr = declareTopology()
	})

	return connErr
}

func Connection() *amqp.Connection {
	return conn
}

// declareTopology 声明交换机与队列，幂等
func declareTopology() error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer ch.Close()

	if err := ch.ExchangeDeclare(
		DelayedExchange,
		"x-delayed-message",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		amqp.Table{"x-delayed-type": "direct"},
	); err != nil {
		return fmt.Errorf("failed to declare delayed exchange: %w", err)
	}

	if err := ch.ExchangeDeclare(
		EventsExchange,
		"topic",
		true, false, false, false, nil,
	); err != nil {
		return fmt.Errorf("failed to declare events exchange: %w", err)
	}

	bindings := []struct {
		queue      string
		exchange   string
		routingKey string
	}{
		{"scheduler.proposal.expire", DelayedExchange, "scheduler.proposal.expire"},
		{"scheduler.trip.reminder", DelayedExchange, "scheduler.trip.reminder"},
		{"events.trip.cloned", EventsExchange, "trip.cloned"},
		{"events.itinerary.reordered", EventsExchange, "itinerary.reordered"},
		{"events.proposal.created", EventsExchange, "proposal.created"},
	}

	for _, b := range bindings {
		if _, err := ch.QueueDeclare(b.queue, true, false, false, false, nil); err != nil {
			return fmt.Errorf("failed to declare queue %s: %w", b.queue, err)
		}
		if err := ch.QueueBind(b.queue, b.routingKey, b.exchange, false, nil); err != nil {
			return fmt.Errorf("failed to bind queue %s: %w", b.queue, err)
		}
	}

	return nil
}

func Close(ctx context.Context) error {
	if conn == nil {
		return nil
	}

	done := make(chan error, 1)
	go func() {
		done <- conn.Close()
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		return err
	}
}

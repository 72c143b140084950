package rabbitmq

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// HandlerFunc is function which handles messages.
type HandlerFunc func(ctx context.Context, message []byte) error

var (
	// ErrPermanent marks handler errors of messages which should be dropped instead of requeued.
	ErrPermanent = errors.New("permanent message error")
	// ErrNotConfirmed is returned when broker rejects published message or closes channel before confirming it.
	ErrNotConfirmed = errors.New("message not confirmed by broker")
)

// RabbitMQ consumes and publishes amqp messages.
type RabbitMQ struct {
	channel   *amqp.Channel
	exchange  string
	isRunning chan struct{}
}

// NewRabbitMQ returns new RabbitMQ publishing to exchange.
func NewRabbitMQ(connection *amqp.Connection, exchange string) (*RabbitMQ, error) {
	channel, err := connection.Channel()
	if err != nil {
		return nil, fmt.Errorf("can't open channel: %w", err)
	}

	return &RabbitMQ{
		channel:  channel,
		exchange: exchange,
	}, nil
}

// Setup declares durable direct exchange and queue bound to it with routing key.
func (mq *RabbitMQ) Setup(queue, routingKey string) error {
	err := mq.channel.ExchangeDeclare(mq.exchange, amqp.ExchangeDirect, true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("can't declare exchange: %w", err)
	}

	if _, err := mq.channel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("can't declare queue: %w", err)
	}

	if err := mq.channel.QueueBind(queue, routingKey, mq.exchange, false, nil); err != nil {
		return fmt.Errorf("can't bind queue: %w", err)
	}

	return nil
}

// EnableConfirms puts channel into confirm mode. Publish waits for broker acknowledgement afterwards.
func (mq *RabbitMQ) EnableConfirms() error {
	if err := mq.channel.Confirm(false); err != nil {
		return fmt.Errorf("can't enable publisher confirms: %w", err)
	}
	return nil
}

// Qos limits number of unacknowledged deliveries sent to consumer.
func (mq *RabbitMQ) Qos(prefetch int) error {
	if err := mq.channel.Qos(prefetch, 0, false); err != nil {
		return fmt.Errorf("can't set qos: %w", err)
	}
	return nil
}

// Publish publishes persistent message to routing key.
// In confirm mode it blocks until broker acknowledges the message.
func (mq *RabbitMQ) Publish(ctx context.Context, routingKey string, message []byte) error {
	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         message,
	}

	confirmation, err := mq.channel.PublishWithDeferredConfirmWithContext(ctx, mq.exchange, routingKey, false, false, msg)
	if err != nil {
		return fmt.Errorf("can't publish message: %w", err)
	}

	// nil when channel isn't in confirm mode.
	if confirmation == nil {
		return nil
	}

	acked, err := confirmation.WaitContext(ctx)
	if err != nil {
		return fmt.Errorf("can't wait for publish confirmation: %w", err)
	}
	if !acked {
		return ErrNotConfirmed
	}

	return nil
}

// Consume consumes messages from queue and passes deliveries to provided handler function.
// It returns channel with errors from handler function and consuming process, closed when consuming finishes.
// Messages are consumed in background until context is canceled or deliveries channel is closed.
func (mq *RabbitMQ) Consume(ctx context.Context, queue string, handler HandlerFunc) (<-chan error, error) {
	consumerID, err := uuid.NewUUID()
	if err != nil {
		return nil, fmt.Errorf("can't create consumer ID: %w", err)
	}

	deliveries, err := mq.channel.Consume(
		queue,
		consumerID.String(),
		false, // auto acknowledge
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("can't start consuming: %w", err)
	}

	consumingErrors := make(chan error)
	mq.isRunning = make(chan struct{})
	go func() {
		defer close(mq.isRunning)
		defer close(consumingErrors)
		mq.consumeMessages(ctx, deliveries, consumingErrors, handler)
		// stop broker from sending more deliveries, unacked ones are requeued on channel close.
		_ = mq.channel.Cancel(consumerID.String(), false)
	}()

	return consumingErrors, nil
}

func (mq *RabbitMQ) consumeMessages(
	ctx context.Context,
	deliveries <-chan amqp.Delivery,
	consumingErrors chan error,
	handler HandlerFunc,
) {
	for {
		var delivery amqp.Delivery
		select {
		case <-ctx.Done():
			return
		case d, ok := <-deliveries:
			if !ok {
				return
			}
			delivery = d
		}

		err := handler(ctx, delivery.Body)
		if err != nil {
			_ = pushError(ctx, err, consumingErrors)
			requeue := !errors.Is(err, ErrPermanent) && !delivery.Redelivered
			if err := mq.nackMessage(ctx, &delivery, requeue, consumingErrors); err != nil {
				return
			}
			continue
		}

		if err := mq.ackMessage(ctx, &delivery, consumingErrors); err != nil {
			return
		}
	}
}

func (mq *RabbitMQ) ackMessage(
	ctx context.Context,
	delivery *amqp.Delivery,
	consumingErrors chan error,
) error {
	if err := delivery.Ack(false); err != nil {
		if pushErr := pushError(ctx, fmt.Errorf("can't ack message: %w", err), consumingErrors); pushErr != nil {
			return pushErr
		}
	}
	return nil
}

func (mq *RabbitMQ) nackMessage(
	ctx context.Context,
	delivery *amqp.Delivery,
	requeue bool,
	consumingErrors chan error,
) error {
	if err := delivery.Nack(false, requeue); err != nil {
		if pushErr := pushError(ctx, fmt.Errorf("can't nack message: %w", err), consumingErrors); pushErr != nil {
			return pushErr
		}
	}
	return nil
}

// Done returns channel which will be closed when consuming will be finished.
func (mq *RabbitMQ) Done() chan struct{} {
	return mq.isRunning
}

func pushError(ctx context.Context, err error, errChan chan error) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case errChan <- err:
	}
	return nil
}

package rabbitmq_test

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"testing"
	"time"

	"github.com/MichalMitros/woocommerce-populator/internal/platform/rabbitmq"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dial(t *testing.T) *amqp.Connection {
	t.Helper()

	rabbitMQURL := os.Getenv("RABBITMQ_URL")
	if rabbitMQURL == "" {
		t.Skip("RABBITMQ_URL is not set")
	}

	connection, err := amqp.Dial(rabbitMQURL)
	require.NoError(t, err, "can't open RabbitMQ connection")
	t.Cleanup(func() { _ = connection.Close() })

	return connection
}

func TestIntegrationPublishConfirmed(t *testing.T) {
	connection := dial(t)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	suffix := rand.Int63n(100000)
	exchange := fmt.Sprintf("wcp-test-ex-%d", suffix)
	queue := fmt.Sprintf("wcp-test-%d", suffix)
	routingKey := fmt.Sprintf("wcp.test.%d", suffix)

	mq, err := rabbitmq.NewRabbitMQ(connection, exchange)
	require.NoError(t, err)
	require.NoError(t, mq.Setup(queue, routingKey))
	require.NoError(t, mq.EnableConfirms())

	channel, err := connection.Channel()
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = channel.QueueDelete(queue, false, false, false)
		_ = channel.ExchangeDelete(exchange, false, false)
		_ = channel.Close()
	})

	require.NoError(t, mq.Publish(ctx, routingKey, []byte(`{"runId": 1}`)), "should be confirmed by broker")

	// message waits in queue without any consumer.
	delivery, ok, err := channel.Get(queue, true)
	require.NoError(t, err)
	require.True(t, ok, "should keep message in declared queue")
	assert.Equal(t, `{"runId": 1}`, string(delivery.Body))
}

func TestIntegrationPublishToMissingExchange(t *testing.T) {
	connection := dial(t)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mq, err := rabbitmq.NewRabbitMQ(connection, fmt.Sprintf("wcp-missing-%d", rand.Int63n(100000)))
	require.NoError(t, err)
	require.NoError(t, mq.EnableConfirms())

	err = mq.Publish(ctx, "wcp.test", []byte(`{"runId": 1}`))

	require.ErrorIs(t, err, rabbitmq.ErrNotConfirmed, "should fail when broker closes channel")
}

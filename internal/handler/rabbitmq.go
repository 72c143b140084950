package handler

import (
	"context"
	"errors"
	"fmt"

	"github.com/MichalMitros/woocommerce-populator/internal/platform/rabbitmq"
	"github.com/MichalMitros/woocommerce-populator/pkg/v1/commander"
	"github.com/rs/zerolog"
)

//go:generate mockery --name Consumer --filename consumer.go
//go:generate mockery --name Reindexer --filename reindexer.go

// Consumer consumes messages from queue.
type Consumer interface {
	Consume(ctx context.Context, queue string, handler rabbitmq.HandlerFunc) (<-chan error, error)
}

// Reindexer rebuilds search index.
type Reindexer interface {
	Reindex(ctx context.Context, runID int) error
}

// RMQHandler handles RMQ messages.
type RMQHandler struct {
	consumer  Consumer
	reindexer Reindexer
	logger    *zerolog.Logger
}

// NewHandler returns new RMQHandler.
func NewHandler(consumer Consumer, reindexer Reindexer, logger *zerolog.Logger) *RMQHandler {
	return &RMQHandler{
		consumer:  consumer,
		reindexer: reindexer,
		logger:    logger,
	}
}

// Start starts consuming and handling reindex commands from RMQ.
// Returned channel is closed when all consuming errors are logged.
func (h *RMQHandler) Start(ctx context.Context, queue string) (<-chan struct{}, error) {
	errorsChan, err := h.consumer.Consume(ctx, queue, h.HandleReindex)
	if err != nil {
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for err := range errorsChan {
			h.logger.Error().
				Err(err).
				Msg("can't handle message")
		}
	}()

	return done, nil
}

// HandleReindex handles single reindex command message.
func (h *RMQHandler) HandleReindex(ctx context.Context, message []byte) error {
	cmd, err := commander.DecodeReindexCommand(message)
	if err != nil {
		return errors.Join(err, rabbitmq.ErrPermanent)
	}

	h.logger.Debug().
		Int("runID", cmd.RunID).
		Msg("reindex started")

	if err := h.reindexer.Reindex(ctx, cmd.RunID); err != nil {
		return fmt.Errorf("reindex failed: %w", err)
	}

	h.logger.Debug().
		Int("runID", cmd.RunID).
		Msg("reindex finished")

	return nil
}

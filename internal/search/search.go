package search

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

//go:generate mockery --name Storage --filename storage.go
//go:generate mockery --name CommandSender --filename commandsender.go

// DefaultBatchSize is number of variants read from storage at once when rebuilding index.
const DefaultBatchSize = 100

// Storage rebuilds search index items.
type Storage interface {
	RebuildSearchIndex(ctx context.Context, batchSize uint) (int32, error)
}

// Indexer rebuilds search index in process.
type Indexer struct {
	storage   Storage
	batchSize uint
	logger    *zerolog.Logger
}

// NewIndexer returns new Indexer.
func NewIndexer(storage Storage, batchSize uint, logger *zerolog.Logger) *Indexer {
	if batchSize == 0 {
		batchSize = DefaultBatchSize
	}

	return &Indexer{
		storage:   storage,
		batchSize: batchSize,
		logger:    logger,
	}
}

// Reindex rebuilds whole search index after run with provided id.
func (i *Indexer) Reindex(ctx context.Context, runID int) error {
	start := time.Now()

	indexed, err := i.storage.RebuildSearchIndex(ctx, i.batchSize)
	if err != nil {
		return fmt.Errorf("can't rebuild search index: %w", err)
	}

	i.logger.Info().
		Int("runID", runID).
		Int32("variants", indexed).
		Dur("took", time.Since(start)).
		Msg("search index rebuilt")

	return nil
}

// CommandSender sends reindex commands.
type CommandSender interface {
	SendReindexCommand(ctx context.Context, runID int) error
}

// Remote requests reindex from reindex worker instead of rebuilding index in process.
type Remote struct {
	sender CommandSender
	logger *zerolog.Logger
}

// NewRemote returns new Remote.
func NewRemote(sender CommandSender, logger *zerolog.Logger) *Remote {
	return &Remote{
		sender: sender,
		logger: logger,
	}
}

// Reindex sends reindex command for run with provided id.
func (r *Remote) Reindex(ctx context.Context, runID int) error {
	if err := r.sender.SendReindexCommand(ctx, runID); err != nil {
		return fmt.Errorf("can't send reindex command: %w", err)
	}

	r.logger.Info().Int("runID", runID).Msg("reindex requested")

	return nil
}

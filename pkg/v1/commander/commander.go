package commander

import (
	"context"
	"encoding/json"
	"fmt"
)

//go:generate mockery --name Sender --filename sender.go

// ReindexCommand is command requesting search index rebuild after population run.
type ReindexCommand struct {
	RunID int `json:"runId"`
}

// Sender sends messages.
type Sender interface {
	Send(context.Context, []byte) error
}

// ReindexCommander sends reindex commands.
type ReindexCommander struct {
	sender Sender
}

// NewReindexCommander returns new ReindexCommander using provided sender for sending messages.
func NewReindexCommander(sender Sender) ReindexCommander {
	return ReindexCommander{
		sender: sender,
	}
}

// SendReindexCommand sends reindex command for run with provided id.
func (c ReindexCommander) SendReindexCommand(ctx context.Context, runID int) error {
	cmd := ReindexCommand{
		RunID: runID,
	}

	cmdMsg, err := json.Marshal(cmd)
	if err != nil {
		return fmt.Errorf("can't marshal reindex command: %w", err)
	}

	return c.sender.Send(ctx, cmdMsg)
}

// DecodeReindexCommand decodes reindex command message.
func DecodeReindexCommand(msg []byte) (*ReindexCommand, error) {
	var cmd ReindexCommand
	if err := json.Unmarshal(msg, &cmd); err != nil {
		return nil, fmt.Errorf("can't decode reindex command: %w", err)
	}

	return &cmd, nil
}

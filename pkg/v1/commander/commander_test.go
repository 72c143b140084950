package commander_test

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/MichalMitros/woocommerce-populator/pkg/v1/commander"
	"github.com/MichalMitros/woocommerce-populator/pkg/v1/commander/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUnitSendReindexCommand(t *testing.T) {
	runID := rand.Int()
	body := []byte(fmt.Sprintf(`{"runId":%d}`, runID))

	tests := map[string]struct {
		senderError error
		wantErr     error
	}{
		"ok": {},
		"sender error": {
			senderError: assert.AnError,
			wantErr:     assert.AnError,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			sender := mocks.NewSender(t)
			sender.On("Send", mock.Anything, body).Return(tt.senderError)

			cmndr := commander.NewReindexCommander(sender)
			err := cmndr.SendReindexCommand(context.TODO(), runID)

			require.ErrorIs(t, err, tt.wantErr, "should return correct error")
		})
	}
}

func TestUnitDecodeReindexCommand(t *testing.T) {
	tests := map[string]struct {
		msg      string
		expected *commander.ReindexCommand
		wantErr  bool
	}{
		"ok": {
			msg:      `{"runId":42}`,
			expected: &commander.ReindexCommand{RunID: 42},
		},
		"unknown fields": {
			msg:      `{"runId":7,"source":"cli"}`,
			expected: &commander.ReindexCommand{RunID: 7},
		},
		"bad json": {
			msg:     `{"runId":`,
			wantErr: true,
		},
		"wrong type": {
			msg:     `{"runId":"42"}`,
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cmd, err := commander.DecodeReindexCommand([]byte(tt.msg))

			if tt.wantErr {
				require.ErrorContains(t, err, "can't decode reindex command")
				assert.Nil(t, cmd)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cmd)
		})
	}
}

package woocommerce

import (
	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"
)

// retryLogger routes retryablehttp client logs into zerolog.
type retryLogger struct {
	logger *zerolog.Logger
}

var _ retryablehttp.LeveledLogger = retryLogger{}

// NewRetryLogger returns retryablehttp.LeveledLogger writing into logger.
func NewRetryLogger(logger *zerolog.Logger) retryablehttp.LeveledLogger {
	return retryLogger{logger: logger}
}

func (l retryLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error().Fields(keysAndValues).Msg(msg)
}

func (l retryLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info().Fields(keysAndValues).Msg(msg)
}

func (l retryLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debug().Fields(keysAndValues).Msg(msg)
}

func (l retryLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn().Fields(keysAndValues).Msg(msg)
}

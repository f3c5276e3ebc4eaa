package log

import (
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// Setup builds the production logger shared by every layer.
func Setup() *otelzap.Logger {
	zapLogger, err := zap.NewProduction()
	if err != nil {
		zapLogger = zap.NewNop()
	}

	return otelzap.New(zapLogger,
		otelzap.WithMinLevel(zap.InfoLevel),
		otelzap.WithTraceIDField(true),
	)
}

// Nop is used by tests that do not care about log output.
func Nop() *otelzap.Logger {
	return otelzap.New(zap.NewNop())
}

package smartbus

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// InitLogging builds the process logger and installs it as the zap global.
func InitLogging() *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	log, err := cfg.Build()
	if err != nil {
		log = zap.NewNop()
	}
	zap.ReplaceGlobals(log)
	return log
}

package utils

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewApplicationLogger constructs a zap logger configured for human-readable console output on stderr.
func NewApplicationLogger() (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.DisableCaller = true
	config.DisableStacktrace = true
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.EncoderConfig.TimeKey = ""
	config.EncoderConfig.NameKey = ""
	config.EncoderConfig.CallerKey = ""
	config.EncoderConfig.MessageKey = "message"
	config.EncoderConfig.StacktraceKey = ""
	config.OutputPaths = []string{"stderr"}
	return config.Build()
}

// WarningLogger adapts logger to the warning hooks of the tree renderer and
// statistics counter. A nil logger discards warnings.
func WarningLogger(logger *zap.Logger, message string) func(path string, warning error) {
	if logger == nil {
		return func(string, error) {}
	}
	return func(path string, warning error) {
		logger.Warn(message, zap.String("path", path), zap.Error(warning))
	}
}

package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the service logger. Production emits JSON with ISO8601
// timestamps; anything else gets the colored development console. When
// shipper is non-nil every entry is also written to it as JSON.
func New(env string, shipper io.Writer) (*zap.Logger, error) {
	config := newConfig(env)

	if shipper == nil {
		return config.Build()
	}

	level := zap.NewAtomicLevelAt(config.Level.Level())

	var consoleEncoder zapcore.Encoder
	if env == "production" {
		consoleEncoder = zapcore.NewJSONEncoder(config.EncoderConfig)
	} else {
		consoleEncoder = zapcore.NewConsoleEncoder(config.EncoderConfig)
	}
	consoleCore := zapcore.NewCore(consoleEncoder, zapcore.Lock(os.Stdout), level)

	shipperConfig := zap.NewProductionEncoderConfig()
	shipperConfig.TimeKey = "timestamp"
	shipperConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	shipperCore := zapcore.NewCore(zapcore.NewJSONEncoder(shipperConfig), zapcore.AddSync(shipper), level)

	return zap.New(zapcore.NewTee(consoleCore, shipperCore), zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)), nil
}

func newConfig(env string) zap.Config {
	if env == "production" {
		config := zap.NewProductionConfig()
		config.EncoderConfig.TimeKey = "timestamp"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		return config
	}

	config := zap.NewDevelopmentConfig()
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return config
}

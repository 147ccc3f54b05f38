package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds a JSON logger writing to both fileSyncer and stderr.
// Unknown or empty levels fall back to info.
func NewLogger(serviceName string, logLevel string, fileSyncer zapcore.WriteSyncer) *zap.Logger {
	encodeConfig := zap.NewProductionEncoderConfig()
	encodeConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encodeConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encodeConfig.EncodeCaller = zapcore.ShortCallerEncoder

	level, err := zapcore.ParseLevel(logLevel)
	if err != nil || logLevel == "" {
		level = zap.InfoLevel
	}

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encodeConfig), zapcore.NewMultiWriteSyncer(
		fileSyncer, zapcore.Lock(os.Stderr)), level)
	return zap.New(core, zap.AddCaller(), zap.Fields(zap.String("service.name", serviceName)))
}

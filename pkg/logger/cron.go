package logger

import (
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type cronLogger struct {
	log *zap.SugaredLogger
}

// Info is only used by cron for scheduling noise, so it is kept at debug.
func (l *cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debugw(msg, keysAndValues...)
}

func (l *cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Errorw(msg, append(keysAndValues, "error", err)...)
}

// NewCronLogger adapts a zap logger to cron.Logger.
func NewCronLogger(l *zap.Logger) cron.Logger {
	return &cronLogger{
		log: l.Named("cron").Sugar(),
	}
}

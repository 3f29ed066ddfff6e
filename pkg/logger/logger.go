package logger

import (
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/huynhanx03/go-pqueue/pkg/settings"
)

const defaultLevel = zapcore.InfoLevel

// New builds a JSON logger from config.
// Output goes to a rotating file when FileLogName is set, otherwise to stdout.
func New(config settings.Logger) (*zap.Logger, error) {
	level, err := parseLevel(config.LogLevel)
	if err != nil {
		return nil, err
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "time"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		writeSyncer(config),
		level,
	)
	return zap.New(core, zap.AddCaller()), nil
}

func parseLevel(s string) (zapcore.Level, error) {
	if s == "" {
		return defaultLevel, nil
	}
	level, err := zapcore.ParseLevel(s)
	if err != nil {
		return defaultLevel, errors.Wrapf(err, "logger: invalid log level %q", s)
	}
	return level, nil
}

func writeSyncer(config settings.Logger) zapcore.WriteSyncer {
	if config.FileLogName == "" {
		return zapcore.Lock(os.Stdout)
	}
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   config.FileLogName,
		MaxSize:    config.MaxSize, // megabytes
		MaxBackups: config.MaxBackups,
		MaxAge:     config.MaxAge, // days
		Compress:   config.Compress,
	})
}

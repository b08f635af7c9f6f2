package log

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewZapLogger returns a JSON logger writing to stdout, named after the service.
func NewZapLogger(name string, level zapcore.Level) *zap.SugaredLogger {
	return newLogger(name, zapcore.AddSync(os.Stdout), level)
}

// NewZapFileLogger writes to stdout and to a size-rotated file at path.
func NewZapFileLogger(name, path string, level zapcore.Level) *zap.SugaredLogger {
	rotating := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    100, // megabytes
		MaxBackups: 5,
		MaxAge:     28, // days
		Compress:   true,
	}
	sink := zapcore.NewMultiWriteSyncer(zapcore.AddSync(os.Stdout), zapcore.AddSync(rotating))
	return newLogger(name, sink, level)
}

func newLogger(name string, sink zapcore.WriteSyncer, level zapcore.Level) *zap.SugaredLogger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "time"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), sink, zap.NewAtomicLevelAt(level))
	return zap.New(core, zap.AddCaller()).Named(name).Sugar()
}

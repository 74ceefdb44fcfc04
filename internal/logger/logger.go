package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log is the global SugaredLogger instance.
// Initialized with a no-op logger until Initialize is called.
var Log *zap.SugaredLogger = zap.NewNop().Sugar()

// Initialize sets up the global logger with the given log level.
// When filePath is not empty, records are also written to a rotating file.
func Initialize(level string, filePath string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	if filePath == "" {
		logger, err := cfg.Build()
		if err != nil {
			return err
		}
		Log = logger.Sugar()
		return nil
	}

	encoder := zapcore.NewJSONEncoder(cfg.EncoderConfig)
	rotating := &lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    128, // megabytes
		MaxAge:     30,  // days
		MaxBackups: 30,
	}

	core := zapcore.NewTee(
		zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), cfg.Level),
		zapcore.NewCore(encoder, zapcore.AddSync(rotating), cfg.Level),
	)

	Log = zap.New(core, zap.AddCaller()).Sugar()
	return nil
}

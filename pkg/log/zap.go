package log

import (
	"context"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// Init builds a Logger from cfg. It never fails: an unknown level falls back to info.
func Init(cfg ZapConfig) Logger {
	level := zap.NewAtomicLevelAt(parseLevel(cfg.Level))

	var encCfg zapcore.EncoderConfig
	if cfg.Mode == ModeProduction {
		encCfg = zap.NewProductionEncoderConfig()
	} else {
		encCfg = zap.NewDevelopmentEncoderConfig()
	}
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006/01/02 15:04:05")
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	// ANSI colours would end up as garbage inside the rotated log file.
	if cfg.ColorEnabled && cfg.FilePath == "" {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	var encoder zapcore.Encoder
	if cfg.Encoding == EncodingJSON {
		encoder = zapcore.NewJSONEncoder(encCfg)
	} else {
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}

	var sink zapcore.WriteSyncer
	if cfg.FilePath != "" {
		sink = zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    orDefault(cfg.MaxSizeMB, 10),
			MaxBackups: orDefault(cfg.MaxBackups, 3),
			MaxAge:     orDefault(cfg.MaxAgeDays, 30),
		})
	} else {
		sink = zapcore.Lock(os.Stderr)
	}

	core := zapcore.NewCore(encoder, sink, level)
	opts := []zap.Option{zap.AddCaller(), zap.AddCallerSkip(1), zap.AddStacktrace(zap.ErrorLevel)}
	if cfg.Mode != ModeProduction {
		opts = append(opts, zap.Development())
	}

	return &zapLogger{sugar: zap.New(core, opts...).Sugar()}
}

// NewNop returns a Logger that discards everything.
func NewNop() Logger {
	return &zapLogger{sugar: zap.NewNop().Sugar()}
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

func (l *zapLogger) with(ctx context.Context) *zap.SugaredLogger {
	if id := TraceID(ctx); id != "" {
		return l.sugar.With("trace_id", id)
	}
	return l.sugar
}

func (l *zapLogger) Debug(ctx context.Context, arg ...any) { l.with(ctx).Debug(arg...) }
func (l *zapLogger) Debugf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Debugf(template, arg...)
}
func (l *zapLogger) Info(ctx context.Context, arg ...any) { l.with(ctx).Info(arg...) }
func (l *zapLogger) Infof(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Infof(template, arg...)
}
func (l *zapLogger) Warn(ctx context.Context, arg ...any) { l.with(ctx).Warn(arg...) }
func (l *zapLogger) Warnf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Warnf(template, arg...)
}
func (l *zapLogger) Error(ctx context.Context, arg ...any) { l.with(ctx).Error(arg...) }
func (l *zapLogger) Errorf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Errorf(template, arg...)
}
func (l *zapLogger) DPanic(ctx context.Context, arg ...any) { l.with(ctx).DPanic(arg...) }
func (l *zapLogger) DPanicf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).DPanicf(template, arg...)
}
func (l *zapLogger) Panic(ctx context.Context, arg ...any) { l.with(ctx).Panic(arg...) }
func (l *zapLogger) Panicf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Panicf(template, arg...)
}
func (l *zapLogger) Fatal(ctx context.Context, arg ...any) { l.with(ctx).Fatal(arg...) }
func (l *zapLogger) Fatalf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Fatalf(template, arg...)
}

// Sync flushes buffered entries. Safe to call on any Logger.
func Sync(l Logger) {
	if zl, ok := l.(*zapLogger); ok {
		_ = zl.sugar.Sync()
	}
}

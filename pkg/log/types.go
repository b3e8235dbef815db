package log

import "context"

// Logger is the context-aware logging interface shared by every package.
type Logger interface {
	Debug(ctx context.Context, arg ...any)
	Debugf(ctx context.Context, template string, arg ...any)
	Info(ctx context.Context, arg ...any)
	Infof(ctx context.Context, template string, arg ...any)
	Warn(ctx context.Context, arg ...any)
	Warnf(ctx context.Context, template string, arg ...any)
	Error(ctx context.Context, arg ...any)
	Errorf(ctx context.Context, template string, arg ...any)
	DPanic(ctx context.Context, arg ...any)
	DPanicf(ctx context.Context, template string, arg ...any)
	Panic(ctx context.Context, arg ...any)
	Panicf(ctx context.Context, template string, arg ...any)
	Fatal(ctx context.Context, arg ...any)
	Fatalf(ctx context.Context, template string, arg ...any)
}

// ZapConfig configures the zap backed Logger.
type ZapConfig struct {
	Level        string // debug, info, warn, error
	Mode         string // "production" selects the production preset, anything else development
	Encoding     string // console or json
	ColorEnabled bool

	// FilePath sends output to a rotating file instead of stderr.
	FilePath   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

const (
	ModeProduction  = "production"
	EncodingConsole = "console"
	EncodingJSON    = "json"
)

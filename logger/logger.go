package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/kfly8/muxbuilder"
	"github.com/lmittmann/tint"
)

const (
	EnvironmentEnvVar = "ENVIRONMENT"
	LogJSONEnvVar     = "LOG_JSON"
	LogLevelEnvVar    = "LOG_LEVEL"

	// ErrorKey is the attribute key errors are logged under.
	ErrorKey = "error"

	timeFormat = "2006-01-02 15:04:05.000"
)

// An Option configures the [*log/slog.Logger] [New] constructs.
type Option func(*config)

type config struct {
	env      muxbuilder.Environment
	kind     slog.Value
	level    slog.Leveler
	json     bool
	colorize bool
	out      io.Writer
	sentry   bool
}

// WithEnv sets the Environment the logger is used in.
// The default is read from ENVIRONMENT, falling back to development.
func WithEnv(env muxbuilder.Environment) Option {
	return func(c *config) {
		if env.Valid() == nil {
			c.env = env
		}
	}
}

// WithKind sets the kind of log every record is tagged with; the default is [muxbuilder.AppLogKind].
func WithKind(kind slog.Value) Option {
	return func(c *config) { c.kind = kind }
}

// WithLevel sets the minimum level logged.
// The default is read from LOG_LEVEL, falling back to [log/slog.LevelInfo].
func WithLevel(l slog.Leveler) Option {
	return func(c *config) { c.level = l }
}

// WithJSON forces JSON output in development.
func WithJSON() Option {
	return func(c *config) { c.json = true }
}

// WithColor sets whether development output is colorized.
// The default depends on whether os.Stdout is a terminal.
func WithColor(on bool) Option {
	return func(c *config) { c.colorize = on }
}

// WithWriter sets where records are written; the default is os.Stdout.
func WithWriter(w io.Writer) Option {
	return func(c *config) { c.out = w }
}

// WithSentry forwards error records to Sentry.
func WithSentry() Option {
	return func(c *config) { c.sentry = true }
}

// New constructs a [*log/slog.Logger] from opts.
func New(opts ...Option) *slog.Logger {
	c := &config{
		env:      muxbuilder.EnvVarOrEnv(EnvironmentEnvVar, muxbuilder.Development),
		kind:     muxbuilder.AppLogKind,
		level:    muxbuilder.EnvVarOrLogLevel(LogLevelEnvVar, slog.LevelInfo),
		json:     muxbuilder.EnvVarOrBool(LogJSONEnvVar, false),
		colorize: !color.NoColor,
		out:      os.Stdout,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	var h slog.Handler
	useJSON := c.json || !c.env.IsDevelopment()
	isHTTP := c.kind.String() == muxbuilder.HTTPLogKind.String()

	switch {
	case isHTTP:
		opts := &slog.HandlerOptions{
			Level: c.level,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				a = DeleteLevelAttr(groups, a)
				return DeleteMessageAttr(groups, a)
			},
		}
		if useJSON {
			h = slog.NewJSONHandler(c.out, opts)
		} else {
			h = slog.NewTextHandler(c.out, opts)
		}

	case useJSON:
		h = slog.NewJSONHandler(c.out, &slog.HandlerOptions{
			AddSource:   true,
			Level:       c.level,
			ReplaceAttr: TruncSourceAttr,
		})

	default:
		colorize := c.colorize
		h = tint.NewHandler(c.out, &tint.Options{
			AddSource:  true,
			Level:      c.level,
			TimeFormat: timeFormat,
			NoColor:    !colorize,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				if colorize {
					a = ColorizeLevel(groups, a)
				}
				return TruncSourceAttr(groups, a)
			},
		})
	}

	if c.sentry {
		h = NewSentryHandler(h)
	}

	return slog.New(h.WithAttrs([]slog.Attr{{Key: muxbuilder.LogKindKey, Value: c.kind}}))
}

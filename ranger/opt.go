package ranger

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/kfly8/muxbuilder"
	"github.com/kfly8/muxbuilder/http/middleware"
)

// A RangerOption configures a [*Ranger] under construction.
// Options run after the defaults read from environment variables, so they override them.
type RangerOption func(rng *Ranger) error

// WithAddr sets the TCP address the server listens on.
func WithAddr(addr string) RangerOption {
	return func(rng *Ranger) error {
		if _, _, err := net.SplitHostPort(addr); err != nil {
			return fmt.Errorf("%w: addr %q: %s", muxbuilder.ErrNotValid, addr, err)
		}

		rng.srv.Addr = addr
		return nil
	}
}

// WithContext sets the context Guide serves until,
// and which every request context derives from.
func WithContext(ctx context.Context) RangerOption {
	return func(rng *Ranger) error {
		if ctx == nil {
			return fmt.Errorf("%w: nil context", muxbuilder.ErrMissingData)
		}

		rng.ctx = ctx
		return nil
	}
}

// WithCORS allows cross-origin requests from origin.
func WithCORS(origin string) RangerOption {
	return func(rng *Ranger) error {
		rng.corsOrigin = origin
		return nil
	}
}

// WithEnv sets the Environment the server runs in.
func WithEnv(env muxbuilder.Environment) RangerOption {
	return func(rng *Ranger) error {
		if err := env.Valid(); err != nil {
			return fmt.Errorf("%w: environment %q", err, env)
		}

		rng.env = env
		return nil
	}
}

// WithForceHTTPS redirects plain HTTP requests to HTTPS while on is true,
// except in development.
func WithForceHTTPS(on bool) RangerOption {
	return func(rng *Ranger) error {
		rng.forceHTTPS = on
		return nil
	}
}

// WithLogger sets the logger the server and its middlewares log with.
// Request logs go to l as well.
func WithLogger(l *slog.Logger) RangerOption {
	return func(rng *Ranger) error {
		if l == nil {
			return fmt.Errorf("%w: nil logger", muxbuilder.ErrMissingData)
		}

		rng.l = l
		rng.httpLog = l
		return nil
	}
}

// WithMaintenance answers every request with [MaintenanceHandler] while on is true.
func WithMaintenance(on bool) RangerOption {
	return func(rng *Ranger) error {
		rng.maintenance = on
		return nil
	}
}

// WithMiddlewares appends mws to the middleware stack, inside the standard ones.
func WithMiddlewares(mws ...middleware.Adapter) RangerOption {
	return func(rng *Ranger) error {
		rng.mws = append(rng.mws, mws...)
		return nil
	}
}

// WithRateLimit limits requests per client IP with visitors.
func WithRateLimit(visitors *middleware.Visitors) RangerOption {
	return func(rng *Ranger) error {
		rng.visitors = visitors
		return nil
	}
}

// WithTimeouts sets the read, write and idle timeouts of the server.
// A zero duration keeps the current value.
func WithTimeouts(read, write, idle time.Duration) RangerOption {
	return func(rng *Ranger) error {
		if read > 0 {
			rng.srv.ReadTimeout = read
		}
		if write > 0 {
			rng.srv.WriteTimeout = write
		}
		if idle > 0 {
			rng.srv.IdleTimeout = idle
		}
		return nil
	}
}

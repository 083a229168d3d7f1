package ranger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/kfly8/muxbuilder"
	"github.com/kfly8/muxbuilder/http/middleware"
	"github.com/kfly8/muxbuilder/http/resp"
	"github.com/kfly8/muxbuilder/logger"
	"golang.org/x/time/rate"
)

// A Ranger serves an application over HTTP.
type Ranger struct {
	app         http.Handler
	corsOrigin  string
	ctx         context.Context
	env         muxbuilder.Environment
	forceHTTPS  bool
	httpLog     *slog.Logger
	l           *slog.Logger
	maintenance bool
	mws         []middleware.Adapter
	srv         *http.Server
	visitors    *middleware.Visitors

	mu   sync.Mutex
	addr net.Addr
}

// New constructs a [*Ranger] serving app.
// Defaults are read from environment variables first; opts override them.
func New(app http.Handler, opts ...RangerOption) (*Ranger, error) {
	if app == nil {
		return nil, fmt.Errorf("%w: %s", muxbuilder.ErrBadConfig, "nil application")
	}

	rng := &Ranger{
		app:         app,
		corsOrigin:  muxbuilder.EnvVarOrString(corsOriginEnvVar, ""),
		ctx:         context.Background(),
		env:         muxbuilder.EnvVarOrEnv(environmentEnvVar, muxbuilder.Development),
		forceHTTPS:  muxbuilder.EnvVarOrBool(forceHTTPSEnvVar, false),
		maintenance: muxbuilder.EnvVarOrBool(maintModeEnvVar, false),
		srv: &http.Server{
			Addr:         defaultAddr(),
			IdleTimeout:  muxbuilder.EnvVarOrDuration(serverIdleTimeoutEnvVar, DefaultServerIdleTimeout),
			ReadTimeout:  muxbuilder.EnvVarOrDuration(serverReadTimeoutEnvVar, DefaultServerReadTimeout),
			WriteTimeout: muxbuilder.EnvVarOrDuration(serverWriteTimeoutEnvVar, DefaultServerWriteTimeout),
		},
	}

	if rps := muxbuilder.EnvVarOrInt(rateLimitEnvVar, 0); rps > 0 {
		rng.visitors = middleware.NewVisitorsWithLimit(rate.Limit(rps), muxbuilder.EnvVarOrInt(rateBurstEnvVar, middleware.DefaultBurst))
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(rng); err != nil {
			return nil, fmt.Errorf("%w: %s", muxbuilder.ErrBadConfig, err)
		}
	}

	dsn := os.Getenv(sentryDsnEnvVar)
	if dsn != "" {
		if err := logger.InitSentry(dsn, rng.env); err != nil {
			return nil, err
		}
	}

	if rng.l == nil {
		rng.l = logger.New(logger.WithEnv(rng.env), logger.WithSentry())
	}

	if rng.httpLog == nil {
		rng.httpLog = logger.New(logger.WithEnv(rng.env), logger.WithKind(muxbuilder.HTTPLogKind))
	}

	ctx := rng.ctx
	rng.srv.BaseContext = func(net.Listener) context.Context { return ctx }
	rng.srv.Handler = rng.Handler()

	return rng, nil
}

// Handler returns the application wrapped in the middleware stack of rng.
func (rng *Ranger) Handler() http.Handler {
	app := rng.app
	if rng.maintenance {
		app = MaintenanceHandler("")
	}

	var https middleware.Adapter
	if rng.forceHTTPS {
		https = middleware.ForceHTTPS(rng.env)
	}

	stack := []middleware.Adapter{
		middleware.Recover(rng.l),
		middleware.ReportPanic(rng.env),
		https,
		middleware.RequestID(),
		middleware.InjectIPAddress(),
		middleware.LogRequest(rng.httpLog),
		middleware.CORS(rng.corsOrigin),
		middleware.RateLimit(rng.visitors),
	}

	return middleware.Chain(app, append(stack, rng.mws...)...)
}

// Addr returns the address the server is listening on,
// or nil if Guide has not started listening.
func (rng *Ranger) Addr() net.Addr {
	rng.mu.Lock()
	defer rng.mu.Unlock()
	return rng.addr
}

// Env returns the Environment the server runs in.
func (rng *Ranger) Env() muxbuilder.Environment { return rng.env }

// Logger returns the application logger of rng.
func (rng *Ranger) Logger() *slog.Logger { return rng.l }

// Guide begins the web server and blocks until it stops.
//
// These, and (*Ranger).Shutdown, stop Guide:
//
//   - os.Interrupt
//   - syscall.SIGHUP
//   - syscall.SIGINT
//   - syscall.SIGQUIT
//   - syscall.SIGTERM
//   - the context set with WithContext being done
func (rng *Ranger) Guide() error {
	ctx, stop := signal.NotifyContext(
		rng.ctx,
		os.Interrupt,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGQUIT,
		syscall.SIGTERM,
	)
	defer stop()

	ln, err := net.Listen("tcp", rng.srv.Addr)
	if err != nil {
		return fmt.Errorf("could not listen: %w", err)
	}

	rng.mu.Lock()
	rng.addr = ln.Addr()
	rng.mu.Unlock()

	errc := make(chan error, 1)
	go func() {
		rng.l.Info("running web server", slog.String("addr", ln.Addr().String()), slog.String("env", rng.env.String()))
		errc <- rng.srv.Serve(ln)
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("could not serve: %w", err)

	case <-ctx.Done():
		rng.l.Info("received shutdown signal", slog.Any("cause", context.Cause(ctx)))
		return rng.Shutdown()
	}
}

// Shutdown gracefully shuts down the web server.
func (rng *Ranger) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	rng.l.Info("shutting down web server")
	err := rng.srv.Shutdown(ctx)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("could not shutdown: %w", err)
	}

	rng.l.Info("web server shutdown successfully")
	return nil
}

// MaintenanceHandler answers every request with http.StatusServiceUnavailable,
// asking clients to retry in ten minutes.
// msg, when not empty, is written as the body of GET requests.
func MaintenanceHandler(msg string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "600")
		if msg == "" || r.Method != http.MethodGet {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}

		_ = resp.Text(w, http.StatusServiceUnavailable, msg)
	})
}

package middleware

import (
	"fmt"
	"log/slog"

	"github.com/gorilla/handlers"
	"github.com/kfly8/muxbuilder"
)

// Recover responds with http.StatusInternalServerError when the wrapped http.Handler panics
// and logs the recovered value at error level.
//
// Panics inside route handlers never reach Recover;
// the router turns those into errors for its error handler.
// Recover guards the middleware stack around them.
func Recover(l *slog.Logger) Adapter {
	if l == nil {
		l = slog.Default()
	}

	return handlers.RecoveryHandler(
		handlers.RecoveryLogger(recoveryLogger{l}),
		handlers.PrintRecoveryStack(false),
	)
}

type recoveryLogger struct{ l *slog.Logger }

func (rl recoveryLogger) Println(vals ...interface{}) {
	rl.l.Error("panic recovered",
		slog.Attr{Key: muxbuilder.LogKindKey, Value: muxbuilder.HTTPLogKind},
		slog.String("panic", fmt.Sprint(vals...)),
	)
}

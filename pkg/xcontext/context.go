package xcontext

import (
	"context"

	"github.com/maggarwal/authgateway/pkg/logger"
)

type loggerKey struct{}

var nopLogger = logger.NewNopLogger()

// WithLogger returns a copy of ctx carrying l. Outbound calls made with the returned context log
// through l.
func WithLogger(ctx context.Context, l logger.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// Logger returns the logger stored in ctx, or a logger that discards everything.
func Logger(ctx context.Context) logger.Logger {
	if l, ok := ctx.Value(loggerKey{}).(logger.Logger); ok && l != nil {
		return l
	}

	return nopLogger
}

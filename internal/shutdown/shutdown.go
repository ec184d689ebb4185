package shutdown

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// InterruptContext returns a context canceled on the first of the given signals.
func InterruptContext(ctx context.Context, signals ...os.Signal) (context.Context, func()) {
	ctx, cancel := context.WithCancel(ctx)
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, signals...)

	go func() {
		select {
		case <-ch:
		case <-ctx.Done():
		}
		signal.Stop(ch)
		cancel()
	}()

	return ctx, cancel
}

// New is the root context of a command, canceled on SIGINT or SIGTERM.
func New() (context.Context, func()) {
	return InterruptContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}

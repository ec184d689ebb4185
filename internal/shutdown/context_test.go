package shutdown

import (
	"context"
	"syscall"
	"testing"
)

func TestInterruptContext(t *testing.T) {
	ctx, cancel := InterruptContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	cancel()
	<-ctx.Done()
}

func TestNew(t *testing.T) {
	ctx, done := New()
	select {
	case <-ctx.Done():
		t.Fatal("context canceled before done")
	default:
	}
	done()
	<-ctx.Done()
}

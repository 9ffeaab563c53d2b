package internal

import (
	"context"
	"os"
	"syscall"
	"testing"
	"time"
)

func TestShutdownContextOnSignal(t *testing.T) {
	ctx, cancel := ShutdownContext(context.Background())
	defer cancel()

	if err := syscall.Kill(os.Getpid(), syscall.SIGTERM); err != nil {
		t.Fatalf("could not signal self: %v", err)
	}

	select {
	case <-ctx.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("context was not cancelled after SIGTERM")
	}
}

func TestShutdownContextOnCancel(t *testing.T) {
	ctx, cancel := ShutdownContext(context.Background())
	cancel()

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context was not cancelled")
	}
}

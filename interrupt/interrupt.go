// Package interrupt tracks Ctrl-C so multi-step commands can stop at safe
// boundaries instead of dying mid-write.
package interrupt

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
)

// ErrCanceled is reported once an interrupt has been received.
var ErrCanceled = errors.New("cancelled by user")

var (
	requested   atomic.Bool
	installOnce sync.Once

	ctx    context.Context
	cancel context.CancelFunc
)

// Install registers the signal handler and returns a context that is
// cancelled on the first interrupt. Subsequent calls are no-ops and return
// the same context.
func Install() context.Context {
	installOnce.Do(func() {
		ctx, cancel = context.WithCancel(context.Background())

		ch := make(chan os.Signal, 1)
		signal.Notify(ch, os.Interrupt, syscall.SIGTERM)

		go func() {
			<-ch
			requested.Store(true)
			cancel()
			// A second Ctrl-C falls through to the default handler and
			// kills the process.
			signal.Stop(ch)
		}()
	})
	return ctx
}

// Context returns the context cancelled on interrupt, installing the
// handler if needed.
func Context() context.Context {
	if ctx == nil {
		return Install()
	}
	return ctx
}

// Requested reports whether an interrupt has been received.
func Requested() bool {
	return requested.Load()
}

// Check returns ErrCanceled once an interrupt has been received, nil
// otherwise. Commands call this between steps.
func Check() error {
	if Requested() {
		return ErrCanceled
	}
	return nil
}

// IsCanceled reports whether err stems from a user interrupt.
func IsCanceled(err error) bool {
	return errors.Is(err, ErrCanceled)
}

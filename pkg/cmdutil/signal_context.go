// Package cmdutil pkg/cmdutil/signal_context.go
package cmdutil

import (
	"context"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
)

// SignalContext returns a context that cancels on given syscall signals.
// The returned CancelFunc also stops signal delivery to the context.
func SignalContext(ctx context.Context, log logrus.FieldLogger) (context.Context, context.CancelFunc) {
	if log == nil {
		log = logrus.New()
	}

	ctx, cancel := context.WithCancel(ctx)

	ch := make(chan os.Signal, 1)
	listenSigs := listenSignals()
	signal.Notify(ch, listenSigs...)

	go func() {
		select {
		case sig := <-ch:
			log.WithField("signal", sig).
				Info("Closing with received signal.")
		case <-ctx.Done():
		}
		signal.Stop(ch)
		cancel()
	}()

	return ctx, cancel
}

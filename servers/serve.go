package servers

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/reusee/ngl/logs"
	"github.com/reusee/ngl/nglconfigs"
	"golang.org/x/net/netutil"
)

// Serve listens on the configured address until ctx is done.
type Serve func(ctx context.Context) error

func (Module) Serve(
	mux Mux,
	addr nglconfigs.ListenAddr,
	maxConns nglconfigs.MaxConns,
	logger logs.Logger,
) Serve {
	return func(ctx context.Context) error {
		ln, err := net.Listen("tcp", string(addr))
		if err != nil {
			return err
		}
		return serve(ctx, netutil.LimitListener(ln, int(maxConns)), mux, logger)
	}
}

func serve(ctx context.Context, ln net.Listener, handler http.Handler, logger logs.Logger) error {
	server := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	stop := context.AfterFunc(ctx, func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Warn("shutdown", "error", err)
		}
	})
	defer stop()

	logger.Info("serving", "addr", ln.Addr().String())
	err := server.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

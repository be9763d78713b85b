package web

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"github.com/metalagman/todolist/internal/config"
	"github.com/metalagman/todolist/internal/logging"
)

const readHeaderTimeout = 10 * time.Second

// Module wires the web server into an fx application. It expects a config.Config to be supplied.
var Module = fx.Module("web",
	fx.Provide(NewServer, newHTTPServer),
	fx.Invoke(registerLifecycle),
)

// Listener holds the bound address once the server has started.
type Listener struct {
	addr net.Addr
}

// Addr returns the address the server listens on, or nil before start.
func (l *Listener) Addr() net.Addr {
	return l.addr
}

func newHTTPServer(cfg config.Config, s *Server) *http.Server {
	handler := s.Routes()
	if logging.DebugEnabled() {
		handler = logRequests(handler)
	}
	return &http.Server{
		Addr:              cfg.Web.Addr,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}
}

type lifecycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    config.Config
	HTTP      *http.Server
	Listener  *Listener `optional:"true"`
}

func registerLifecycle(p lifecycleParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			var lc net.ListenConfig
			ln, err := lc.Listen(ctx, "tcp", p.HTTP.Addr)
			if err != nil {
				return fmt.Errorf("listen on %s: %w", p.HTTP.Addr, err)
			}
			if p.Listener != nil {
				p.Listener.addr = ln.Addr()
			}
			log.Info().Str("addr", ln.Addr().String()).Msg("web: serving")

			go func() {
				if err := p.HTTP.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error().Err(err).Msg("web: serve")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, p.Config.Web.ShutdownTimeout)
			defer cancel()
			log.Info().Msg("web: shutting down")
			return p.HTTP.Shutdown(ctx)
		},
	})
}

package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/metalagman/todolist/internal/config"
	"github.com/metalagman/todolist/internal/web"
)

func serveCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the list as a web page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Web.Addr = addr
			}
			return serve(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides web.addr")
	return cmd
}

func newServeApp(cfg config.Config, extra ...fx.Option) *fx.App {
	opts := []fx.Option{
		fx.NopLogger,
		fx.Supply(cfg),
		web.Module,
	}
	return fx.New(append(opts, extra...)...)
}

func serve(ctx context.Context, cfg config.Config) error {
	app := newServeApp(cfg)
	if err := app.Err(); err != nil {
		return fmt.Errorf("assemble server: %w", err)
	}

	startCtx, cancel := context.WithTimeout(ctx, app.StartTimeout())
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return fmt.Errorf("start server: %w", err)
	}

	select {
	case <-ctx.Done():
	case sig := <-app.Done():
		log.Info().Str("signal", sig.String()).Msg("received signal")
	}

	stopCtx, cancelStop := context.WithTimeout(context.Background(), app.StopTimeout())
	defer cancelStop()
	if err := app.Stop(stopCtx); err != nil {
		return fmt.Errorf("stop server: %w", err)
	}
	return nil
}

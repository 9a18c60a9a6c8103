package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/abelbrown/tutoriais/internal/logging"
	"github.com/abelbrown/tutoriais/internal/server"
	"github.com/spf13/cobra"
)

func newServeCommand(opts *options) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog and assistant as a JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.load()
			if err != nil {
				return err
			}
			logToStderr(e.cfg)
			if addr != "" {
				e.cfg.Server.Addr = addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logging.Info("serving catalog", "tutorials", e.catalog.Len(), "addr", e.cfg.Server.Addr)
			return server.New(e.cfg.Server.Addr, e.catalog, newAssistant(e.cfg)).Run(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	return cmd
}

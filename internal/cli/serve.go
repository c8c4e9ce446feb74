package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/GriffinCanCode/sfc-extends/internal/infrastructure/server"
)

func newServeCmd() *cobra.Command {
	var host, port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the transform over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("host") {
				a.cfg.Server.Host = host
			}
			if cmd.Flags().Changed("port") {
				a.cfg.Server.Port = port
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return server.New(a.cfg, a.transformer, a.loader, a.logger, a.metrics).Run(ctx)
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "Listen host (default $HOST or 127.0.0.1)")
	cmd.Flags().StringVar(&port, "port", "", "Listen port (default $PORT or 8000)")
	return cmd
}

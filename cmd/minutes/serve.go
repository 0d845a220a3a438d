package main

import (
	"github.com/nguyentantai21042004/meeting-minutes/internal/server"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the upload form and minutes endpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext()
			defer cancel()

			a, err := bootstrap(ctx)
			if err != nil {
				return err
			}
			if addr != "" {
				a.cfg.Server.Addr = addr
			}

			srv := server.New(a.cfg, a.proc, a.log)
			if err := srv.Serve(ctx); err != nil {
				return err
			}
			a.log.Info(ctx, "Meeting Minutes stopped")
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")
	return cmd
}

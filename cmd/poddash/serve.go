package main

import (
	"github.com/benji822/pod-dash-app/internal/server"
	"github.com/spf13/cobra"
)

func newServeCmd(c *cli) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the loaded data as a JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := c.load()
			if err != nil {
				return err
			}
			if addr == "" {
				addr = c.cfg.Server.Addr
			}
			return server.New(ds, c.logger).Run(cmd.Context(), server.Config{
				Addr:            addr,
				ReadTimeout:     c.cfg.GetReadTimeout(),
				WriteTimeout:    c.cfg.GetWriteTimeout(),
				ShutdownTimeout: c.cfg.GetShutdownTimeout(),
			})
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides server.addr)")
	return cmd
}

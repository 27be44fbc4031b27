package main

import (
	"errors"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"toolapps/server/http_server"
	"toolapps/toolconfig"
)

func newServeCommand(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := toolconfig.NewStore(a.configDir)
			if err := store.Load(); err != nil {
				// the ad hoc endpoints work without any configured pipeline
				if !errors.Is(err, os.ErrNotExist) {
					return err
				}
				logrus.WithField("config_dir", a.configDir).Warn("No config found, serving without pipelines")
			}
			return http_server.New(addr, store).Start(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", http_server.DefaultAddr, "listen address")
	return cmd
}

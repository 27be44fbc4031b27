package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var version = "dev"

type app struct {
	configDir string
	logLevel  string
	logJSON   bool
}

func newRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "toolapps",
		Short:        "Decode, convert and encode byte sequences",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initLogging()
		},
	}

	root.PersistentFlags().StringVar(&a.configDir, "config-dir", "configs", "directory holding config.json or config.yaml")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&a.logJSON, "log-json", false, "log as JSON")

	root.AddCommand(
		newServeCommand(a),
		newRunCommand(a),
		newConvertCommand(),
		newDigestCommand(),
		newSchemesCommand(),
	)
	return root
}

func (a *app) initLogging() error {
	level, err := logrus.ParseLevel(a.logLevel)
	if err != nil {
		return err
	}
	logrus.SetLevel(level)
	logrus.SetOutput(os.Stderr)
	if a.logJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

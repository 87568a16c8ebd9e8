// Package cli implements the halite command tree.
package cli

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Vlad-Shcherbina/halite/internal/app"
	"github.com/Vlad-Shcherbina/halite/internal/logging"
)

// Version is set at build time
var Version = "0.1.0"

// env carries what PersistentPreRunE resolved for the running command.
type env struct {
	configFile string
	cfg        *app.Config
	log        *zap.Logger
}

// NewRootCommand builds the command tree. stdout receives protocol and
// report output; logs go to stderr.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	rt := &env{}

	root := &cobra.Command{
		Use:   "halite",
		Short: "Validate replay traces and dump them for the reference simulator",
		Long: `halite checks the structure of a recorded replay and writes every
frame transition in the simulator's text protocol.

Commands:
  dump      - Validate a trace and write its transitions
  validate  - Check a trace without writing anything
  watch     - Re-dump a trace whenever it changes
  gen       - Write a synthetic trace
  pack      - Bundle bot sources into a submission archive

Example:
  halite dump replay.hlt > transitions.txt
  halite gen --width 20 --height 20 -n 50 -o synthetic.json
  halite pack -o a.zip`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Load(rt.configFile, cmd.Flags())
			if err != nil {
				return err
			}
			rt.cfg = cfg
			rt.log = logging.WithRunID(logging.NewWithSink(logging.Config{
				Level:  cfg.LogLevel,
				Format: cfg.LogFormat,
			}, stderr)).With(zap.String("command", cmd.Name()))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if rt.log != nil {
				_ = rt.log.Sync()
			}
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&rt.configFile, "config", "", "config file (default ./halite.yaml)")
	app.BindLogging(root.PersistentFlags())

	root.AddCommand(
		newDumpCommand(rt),
		newValidateCommand(rt),
		newWatchCommand(rt),
		newGenCommand(rt),
		newPackCommand(rt),
	)
	return root
}

// Execute runs the CLI against the process's arguments and streams.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := NewRootCommand(os.Stdout, os.Stderr)
	cmd, err := root.ExecuteContextC(ctx)
	if err != nil {
		root.PrintErrf("%s: %v\n", cmd.CommandPath(), err)
	}
	return err
}

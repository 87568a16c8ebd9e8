package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Vlad-Shcherbina/halite/internal/app"
	"github.com/Vlad-Shcherbina/halite/internal/watch"
)

func newWatchCommand(rt *env) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "watch TRACE -o FILE",
		Short: "Re-dump a trace to a file each time it is rewritten",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			rt.log.Info("watching trace", zap.String("trace", path), zap.String("output", output))
			return watch.Run(cmd.Context(), path, func() error {
				return dump(rt, path, output, cmd.OutOrStdout())
			}, rt.log)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "file rewritten after each change")
	_ = cmd.MarkFlagRequired("output")
	app.BindEmit(cmd.Flags())
	return cmd
}

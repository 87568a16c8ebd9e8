package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Vlad-Shcherbina/halite/internal/trace"
)

func newValidateCommand(rt *env) *cobra.Command {
	return &cobra.Command{
		Use:   "validate TRACE...",
		Short: "Check trace structure without writing transitions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, path := range args {
				tr, err := trace.Load(path)
				if err == nil {
					err = trace.Validate(tr)
				}
				if err != nil {
					failed++
					rt.log.Error("invalid trace", zap.String("trace", path), zap.Error(err))
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %dx%d, %d frames, %d transitions\n",
					path, tr.Width, tr.Height, tr.NumFrames, tr.Transitions())
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d traces invalid", failed, len(args))
			}
			return nil
		},
	}
}

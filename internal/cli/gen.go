package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Vlad-Shcherbina/halite/internal/trace"
	"github.com/Vlad-Shcherbina/halite/internal/tracegen"
)

func newGenCommand(rt *env) *cobra.Command {
	cfg := tracegen.DefaultConfig()
	var output string
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Write a synthetic, structurally valid trace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, err := tracegen.Generate(cfg)
			if err != nil {
				return err
			}
			if output == "" {
				return tr.Encode(cmd.OutOrStdout())
			}
			if err := trace.Save(output, tr); err != nil {
				return err
			}
			rt.log.Info("trace generated",
				zap.String("output", output),
				zap.Int("frames", tr.NumFrames),
				zap.Int64("seed", cfg.Seed),
			)
			return nil
		},
	}
	fs := cmd.Flags()
	fs.IntVar(&cfg.Width, "width", cfg.Width, "grid width")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "grid height")
	fs.IntVarP(&cfg.Frames, "frames", "n", cfg.Frames, "number of frames")
	fs.IntVar(&cfg.Players, "players", cfg.Players, "number of players")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed")
	fs.IntVar(&cfg.MaxProduction, "max-production", cfg.MaxProduction, "largest production value")
	fs.StringVarP(&output, "output", "o", "", "trace file to write (.gz and .zst compress); stdout if empty")
	return cmd
}

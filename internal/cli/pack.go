package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Vlad-Shcherbina/halite/internal/app"
	"github.com/Vlad-Shcherbina/halite/internal/archive"
)

func newPackCommand(rt *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pack [MEMBER...]",
		Short: "Bundle bot sources into a submission archive",
		Long: `Bundle bot sources into a submission archive.

Members default to archive.members from the config file, or
pretty_printing.h, hlt.hpp, networking.hpp and MyBot.cpp.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			members := rt.cfg.Archive.Members
			if len(args) > 0 {
				members = args
			}
			res, err := archive.Pack(cmd.Context(), archive.Options{
				Output:  rt.cfg.Archive.Output,
				Dir:     rt.cfg.Archive.Dir,
				Members: members,
				Deflate: rt.cfg.Archive.Deflate,
			})
			if err != nil {
				return err
			}
			rt.log.Info("archive written",
				zap.String("output", res.Output),
				zap.Int("members", res.Members),
				zap.Int64("bytes", res.Bytes),
			)
			return nil
		},
	}
	app.BindArchive(cmd.Flags())
	return cmd
}

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Vlad-Shcherbina/halite/internal/app"
	"github.com/Vlad-Shcherbina/halite/internal/protocol"
	"github.com/Vlad-Shcherbina/halite/internal/trace"
)

func newDumpCommand(rt *env) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "dump TRACE",
		Short: "Validate a trace and write its transitions in the simulator protocol",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return dump(rt, args[0], output, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of stdout")
	app.BindEmit(cmd.Flags())
	return cmd
}

// dump loads, validates and emits one trace. An output path replaces stdout;
// the file is removed if emission fails.
func dump(rt *env, path, output string, stdout io.Writer) (err error) {
	log := rt.log.With(zap.String("trace", path))

	tr, err := trace.Load(path)
	if err != nil {
		return err
	}
	if err := trace.Validate(tr); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	out := stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer func() {
			if cerr := f.Close(); err == nil && cerr != nil {
				err = cerr
			}
			if err != nil {
				os.Remove(output)
			}
		}()
		out = f
	}

	err = protocol.Emit(out, tr,
		protocol.WithBuffered(rt.cfg.Buffered),
		protocol.WithWorkers(rt.cfg.Workers),
		protocol.WithLogger(log),
	)
	if protocol.IsBrokenPipe(err) {
		log.Debug("output closed early")
		return nil
	}
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	log.Info("trace dumped",
		zap.Int("width", tr.Width),
		zap.Int("height", tr.Height),
		zap.Int("transitions", protocol.Count(tr)),
	)
	return nil
}

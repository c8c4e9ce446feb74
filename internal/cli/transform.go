package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/GriffinCanCode/sfc-extends/internal/domain/transform"
)

func newTransformCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "transform FILE",
		Short: "Resolve one component and print the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.logger.Sync()

			path, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}
			src, err := a.loader.ReadFile(cmd.Context(), path)
			if err != nil {
				return err
			}

			res, err := a.transformer.Transform(cmd.Context(), transform.Input{
				Filename: path,
				Source:   string(src),
			}, a.loader)
			if err != nil {
				return fmt.Errorf("%w: %s", ErrTransformFailed, path)
			}

			if out == "" {
				_, err = fmt.Fprint(cmd.OutOrStdout(), res.Code)
				return err
			}
			return os.WriteFile(out, []byte(res.Code), 0o644)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Write the result to this file instead of stdout")
	return cmd
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/sfc-extends/internal/pipeline"
	"github.com/GriffinCanCode/sfc-extends/internal/providers/filesystem"
)

func newBuildCmd() *cobra.Command {
	var (
		target   pipeline.Target
		manifest string
		report   string
		workers  int
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Transform every matching component below a directory",
		Example: `  sfcx build --root src --out dist/src
  sfcx build --manifest sfcx.yaml --report build-report.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.logger.Sync()

			targets := []pipeline.Target{target}
			if manifest != "" {
				m, err := pipeline.LoadManifest(manifest)
				if err != nil {
					return err
				}
				targets = m.Targets
				if !cmd.Flags().Changed("workers") && m.Workers > 0 {
					workers = m.Workers
				}
			}
			if !cmd.Flags().Changed("workers") && workers == 0 {
				workers = a.cfg.Build.Workers
			}

			cached, err := filesystem.NewCached(a.loader, a.cfg.Build.CacheSize)
			if err != nil {
				return err
			}
			runner := pipeline.NewRunner(a.transformer, cached, a.logger, workers)

			var (
				reports []*pipeline.Report
				failed  int
			)
			for _, t := range targets {
				rep, err := runner.Run(cmd.Context(), t)
				if err != nil {
					return err
				}
				reports = append(reports, rep)
				failed += rep.Failed
				for _, f := range rep.Files {
					if f.Error != "" {
						fmt.Fprintf(cmd.ErrOrStderr(), "FAIL %s: %s\n", f.Path, f.Error)
					}
				}
			}

			if report != "" {
				if err := pipeline.WriteReport(report, reports); err != nil {
					return err
				}
				a.logger.Info("report written", zap.String("path", report))
			}
			if failed > 0 {
				return fmt.Errorf("%w: %d component(s)", ErrTransformFailed, failed)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&target.Root, "root", ".", "Directory to search for components")
	flags.StringVar(&target.Pattern, "pattern", pipeline.DefaultPattern, "Glob selecting components, relative to --root")
	flags.StringVar(&target.Out, "out", "", "Output directory (nothing is written when empty)")
	flags.StringSliceVar(&target.Exclude, "exclude", []string{"**/node_modules/**"}, "Globs to skip")
	flags.StringVar(&manifest, "manifest", "", "YAML or TOML manifest listing build targets")
	flags.StringVar(&report, "report", "", "Write a JSON report to this file")
	flags.IntVar(&workers, "workers", 0, "Concurrent transforms (0 uses all CPUs)")
	return cmd
}

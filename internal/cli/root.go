package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GriffinCanCode/sfc-extends/internal/domain/extend"
	"github.com/GriffinCanCode/sfc-extends/internal/domain/sfc"
	"github.com/GriffinCanCode/sfc-extends/internal/domain/transform"
	"github.com/GriffinCanCode/sfc-extends/internal/infrastructure/config"
	"github.com/GriffinCanCode/sfc-extends/internal/infrastructure/logging"
	"github.com/GriffinCanCode/sfc-extends/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/sfc-extends/internal/providers/filesystem"
)

// Exit codes.
const (
	ExitOK        = 0
	ExitFailure   = 1
	ExitTransform = 2
)

// ErrTransformFailed is returned when one or more components failed.
var ErrTransformFailed = errors.New("transform failed")

// NewRootCmd builds the sfcx command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sfcx",
		Short: "Template inheritance for single-file components",
		Long: `sfcx resolves <template extends="..."> chains in single-file components.

A base component marks splice sites with <extension-point name="...">,
a child overrides them inside <extensions><extension point="...">.
The output is one merged component for the regular compiler.

Exit Codes:
  0 - Success
  1 - General or usage error
  2 - One or more components failed to transform`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.String("log-level", "", "Log level (debug, info, warn, error)")
	flags.Bool("dev", false, "Human readable console logs")
	flags.Int("max-depth", 0, "Maximum extends chain length")
	flags.Bool("pad-lines", false, "Pad blocks so compiler line numbers match the source file")
	flags.String("fs-root", "", "Refuse to read files outside this directory")

	root.AddCommand(newTransformCmd(), newBuildCmd(), newServeCmd(), newVersionCmd())
	return root
}

// Execute runs the root command and maps the result to an exit code.
func Execute() int {
	err := NewRootCmd().Execute()
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrTransformFailed):
		return ExitTransform
	default:
		fmt.Fprintln(errWriter, "Error:", err)
		return ExitFailure
	}
}

// app holds what every subcommand needs.
type app struct {
	cfg         *config.Config
	logger      *logging.Logger
	metrics     *monitoring.Metrics
	loader      *filesystem.Loader
	transformer *transform.Transformer
}

// newApp loads the environment configuration, applies flag overrides and
// wires the transform stack.
func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := applyFlags(cmd, cfg); err != nil {
		return nil, err
	}

	logger, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
	})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	pad := sfc.PadNone
	if cfg.Transform.PadLines {
		pad = sfc.PadLine
	}
	resolver := extend.NewResolver(extend.Options{
		MaxDepth: cfg.Transform.MaxDepth,
		Parse:    sfc.ParseOptions{Pad: pad},
	})
	metrics := monitoring.NewMetrics()

	return &app{
		cfg:         cfg,
		logger:      logger,
		metrics:     metrics,
		loader:      filesystem.NewLoader(cfg.Transform.Root),
		transformer: transform.New(resolver, logger, metrics),
	}, nil
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Logging.Level, _ = flags.GetString("log-level")
	}
	if flags.Changed("dev") {
		cfg.Logging.Development, _ = flags.GetBool("dev")
	}
	if flags.Changed("max-depth") {
		cfg.Transform.MaxDepth, _ = flags.GetInt("max-depth")
	}
	if flags.Changed("pad-lines") {
		cfg.Transform.PadLines, _ = flags.GetBool("pad-lines")
	}
	if flags.Changed("fs-root") {
		cfg.Transform.Root, _ = flags.GetString("fs-root")
	}
	return cfg.Validate()
}

// Package cli provides the command-line interface for ColorTools.
package cli

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/Paul-Toth/ColorTools/internal/colour"
	"github.com/Paul-Toth/ColorTools/internal/colormap"
	"github.com/Paul-Toth/ColorTools/internal/config"
	"github.com/Paul-Toth/ColorTools/internal/version"
)

// app carries the state shared by every command of one command tree.
type app struct {
	cfg      config.Config
	cfgErr   error
	logger   hclog.Logger
	resolver *colour.Resolver
	registry colormap.Registry

	verbose  bool
	quiet    bool
	logLevel string
}

// NewRootCmd builds the colortools command tree. Each call returns an
// independent tree, so tests can execute commands in isolation.
func NewRootCmd() *cobra.Command {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.Default()
	}

	a := &app{
		cfg:      cfg,
		cfgErr:   err,
		logger:   hclog.NewNullLogger(),
		resolver: colour.NewResolver(colour.CSSNames()),
		registry: colormap.Builtin(),
	}

	rootCmd := &cobra.Command{
		Use:   "colortools",
		Short: "Colour conversion, gradient and colormap helpers",
		Long: `ColorTools converts between hex and RGB colours, builds linear
gradients between two colours and trims named colormaps to a sub-range.

Colours may be given as hex ("#1a2b3c", "1a2b3c", "0x1a2b3c"), as CSS
colour names ("red", "cornflowerblue") or as "r,g,b" triples.

Environment:
  COLORTOOLS_LOG_LEVEL   default log level (trace, debug, info, warn, error, off)
  COLORTOOLS_STEPS       default number of gradient steps
  COLORTOOLS_TRIM_MIN    default lower bound for trim
  COLORTOOLS_TRIM_MAX    default upper bound for trim
  NO_COLOR               disable automatic colour previews`,
		Version:           version.Short(),
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "suppress log output")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", cfg.LogLevel.String(), "log level (trace, debug, info, warn, error, off)")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(
		a.hexToRGBCmd(),
		a.rgbToHexCmd(),
		a.resolveCmd(),
		a.gradientCmd(),
		a.trimCmd(),
		a.inspectCmd(),
		a.colormapsCmd(),
		a.namesCmd(),
		versionCmd(),
	)

	return rootCmd
}

// setup validates the environment configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.cfgErr != nil {
		return fmt.Errorf("invalid environment configuration: %w", a.cfgErr)
	}

	level := hclog.LevelFromString(a.logLevel)
	if level == hclog.NoLevel {
		return fmt.Errorf("invalid log level %q", a.logLevel)
	}
	switch {
	case a.quiet:
		level = hclog.Off
	case a.verbose:
		level = hclog.Debug
	}

	a.logger = hclog.New(&hclog.LoggerOptions{
		Name:   "colortools",
		Output: cmd.ErrOrStderr(),
		Level:  level,
	})
	a.logger.Debug("configuration loaded",
		"steps", a.cfg.Steps,
		"trim_min", a.cfg.TrimMin,
		"trim_max", a.cfg.TrimMax,
		"no_color", a.cfg.NoColor,
	)
	return nil
}

// versionCmd represents the version command.
func versionCmd() *cobra.Command {
	format := formatText
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format == formatJSON {
				return writeJSON(cmd.OutOrStdout(), version.GetInfo())
			}
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
			return nil
		},
	}
	addFormatFlag(cmd.Flags(), &format)
	return cmd
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Paul-Toth/ColorTools/internal/colour"
)

// gradientJSON represents a gradient in JSON output format.
type gradientJSON struct {
	Start   string   `json:"start"`
	End     string   `json:"end"`
	Steps   int      `json:"steps"`
	Colours []string `json:"colours"`
}

func (a *app) gradientCmd() *cobra.Command {
	var (
		steps           int
		format, preview string
	)

	cmd := &cobra.Command{
		Use:   "gradient <start> <end>",
		Short: "Interpolate a linear gradient between two colours",
		Long: `Interpolate a linear gradient between two colours.

Both endpoints are included, so --steps 2 prints just the two colours.
Channel values are truncated, so the midpoint of #000000 and #ffffff is
0x7f7f7f. Colours may be names, hex literals or "r,g,b" triples.

Examples:
  colortools gradient "#000000" "#ffffff" --steps 3
  colortools gradient red blue -n 8 --preview
  colortools gradient 10,20,30 navy --format json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseColour(args[0])
			if err != nil {
				return fmt.Errorf("start colour: %w", err)
			}
			end, err := parseColour(args[1])
			if err != nil {
				return fmt.Errorf("end colour: %w", err)
			}

			colours, err := a.resolver.Interpolate(start, end, steps)
			if err != nil {
				return err
			}
			a.logger.Debug("interpolated gradient", "start", args[0], "end", args[1], "steps", steps)

			out := cmd.OutOrStdout()
			if format == formatJSON {
				return writeJSON(out, gradientJSON{Start: args[0], End: args[1], Steps: steps, Colours: colours})
			}

			withSwatch := a.showPreview(preview, out)
			for _, hex := range colours {
				line := hex
				if withSwatch {
					rgb, err := colour.HexToRGB(hex)
					if err != nil {
						return err
					}
					line = colour.SwatchWithText(rgb, hex, 10)
				}
				if _, err := fmt.Fprintln(out, line); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", a.cfg.Steps, fmt.Sprintf("number of colours, including both endpoints (2-%d)", colour.MaxGradientSteps))
	addFormatFlag(cmd.Flags(), &format)
	addPreviewFlag(cmd.Flags(), &preview)
	return cmd
}

package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Paul-Toth/ColorTools/internal/colour"
	"github.com/Paul-Toth/ColorTools/internal/colormap"
	"github.com/Paul-Toth/ColorTools/internal/compression"
)

const defaultStopRows = 8

func (a *app) trimCmd() *cobra.Command {
	var (
		cmin, cmax      float64
		rows            int
		compress        bool
		format, preview string
	)

	cmd := &cobra.Command{
		Use:   "trim <colormap>",
		Short: "Trim a colormap to a sub-range of [0,1]",
		Long: `Trim a named colormap to the sub-range [min, max] of [0,1].

The colormap is sampled at its native resolution across the sub-range and
the samples become a new colormap named "trimmed_<colormap>". Use
"colortools colormaps" to list the available names.

With --format json the trimmed colormap is written to stdout; --xz
compresses that JSON stream.

Examples:
  colortools trim viridis
  colortools trim greys --min 0.3 --max 0.9 --preview
  colortools trim magma --format json --xz > trimmed_magma.json.xz`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			a.logger.Debug("trimming colormap", "name", name, "min", cmin, "max", cmax)

			trimmed, err := colormap.Trim(a.registry, name, cmin, cmax)
			if err != nil {
				return err
			}
			a.logger.Debug("trimmed colormap", "name", trimmed.Name(), "n", trimmed.N(), "stops", len(trimmed.Stops()))

			out := cmd.OutOrStdout()
			if compress {
				format = formatJSON
			}
			if format != formatJSON {
				return a.writeColormap(out, trimmed, rows, a.showPreview(preview, out))
			}
			if !compress {
				return colormap.Encode(out, trimmed)
			}

			xzw, err := compression.NewXZWriter(out)
			if err != nil {
				return err
			}
			if err := colormap.Encode(xzw, trimmed); err != nil {
				_ = xzw.Close()
				return err
			}
			if err := xzw.Close(); err != nil {
				return fmt.Errorf("failed to finish xz stream: %w", err)
			}
			a.logger.Debug("wrote compressed colormap", "name", trimmed.Name())
			return nil
		},
	}

	cmd.Flags().Float64Var(&cmin, "min", a.cfg.TrimMin, "lower bound of the kept range (0-1)")
	cmd.Flags().Float64Var(&cmax, "max", a.cfg.TrimMax, "upper bound of the kept range (0-1)")
	cmd.Flags().IntVar(&rows, "rows", defaultStopRows, "number of evenly spaced stops to list in text output")
	cmd.Flags().BoolVar(&compress, "xz", false, "write the JSON colormap as an xz stream")
	addFormatFlag(cmd.Flags(), &format)
	addPreviewFlag(cmd.Flags(), &preview)
	return cmd
}

func (a *app) inspectCmd() *cobra.Command {
	var (
		rows            int
		format, preview string
	)

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show a colormap previously written by trim",
		Long: `Read a JSON colormap from stdin, as written by "trim --format json",
and list its stops. xz-compressed input is detected automatically.

Examples:
  colortools trim viridis --format json --xz | colortools inspect
  colortools inspect --rows 16 < trimmed_viridis.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := compression.NewReader(cmd.InOrStdin())
			if err != nil {
				return err
			}
			cm, err := colormap.Decode(r)
			if err != nil {
				return err
			}
			a.logger.Debug("decoded colormap", "name", cm.Name(), "n", cm.N(), "stops", len(cm.Stops()))

			out := cmd.OutOrStdout()
			if format == formatJSON {
				return colormap.Encode(out, cm)
			}
			return a.writeColormap(out, cm, rows, a.showPreview(preview, out))
		},
	}

	cmd.Flags().IntVar(&rows, "rows", defaultStopRows, "number of evenly spaced stops to list in text output")
	addFormatFlag(cmd.Flags(), &format)
	addPreviewFlag(cmd.Flags(), &preview)
	return cmd
}

func (a *app) colormapsCmd() *cobra.Command {
	var format, preview string

	cmd := &cobra.Command{
		Use:   "colormaps",
		Short: "List the available colormaps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			names := a.registry.Names()
			out := cmd.OutOrStdout()
			if format == formatJSON {
				return writeJSON(out, names)
			}

			withSwatch := a.showPreview(preview, out)
			headers := []string{"NAME", "N", "START", "END"}
			if withSwatch {
				headers = append(headers, "PREVIEW")
			}
			table := NewTable(headers)
			for _, name := range names {
				cm, ok := a.registry.Lookup(name)
				if !ok {
					continue
				}
				row := []string{
					name,
					strconv.Itoa(cm.N()),
					colour.CSSHex(colormap.ToRGB(cm.At(0))),
					colour.CSSHex(colormap.ToRGB(cm.At(1))),
				}
				if withSwatch {
					row = append(row, strip(cm, 24))
				}
				table.AddRow(row)
			}
			_, err := io.WriteString(out, table.Render())
			return err
		},
	}

	addFormatFlag(cmd.Flags(), &format)
	addPreviewFlag(cmd.Flags(), &preview)
	return cmd
}

// writeColormap lists rows evenly spaced positions of cm as a table.
func (a *app) writeColormap(w io.Writer, cm *colormap.Colormap, rows int, withSwatch bool) error {
	if rows < 2 {
		return fmt.Errorf("%w: --rows must be at least 2, got %d", colour.ErrInvalidArgument, rows)
	}

	fmt.Fprintf(w, "%s (N=%d, %d stops)\n", cm.Name(), cm.N(), len(cm.Stops()))
	if withSwatch {
		fmt.Fprintln(w, strip(cm, 48))
	}

	headers := []string{"POS", "HEX", "RGB"}
	if withSwatch {
		headers = append(headers, "")
	}
	table := NewTable(headers)
	for i := 0; i < rows; i++ {
		pos := float64(i) / float64(rows-1)
		rgb := colormap.ToRGB(cm.At(pos))
		row := []string{strconv.FormatFloat(pos, 'f', 3, 64), colour.CSSHex(rgb), rgb.String()}
		if withSwatch {
			row = append(row, colour.Swatch(rgb, 4))
		}
		table.AddRow(row)
	}
	_, err := io.WriteString(w, table.Render())
	return err
}

// strip renders cm as a row of width single-character swatches.
func strip(cm *colormap.Colormap, width int) string {
	var b strings.Builder
	for i := 0; i < width; i++ {
		b.WriteString(colour.Swatch(colormap.ToRGB(cm.At(float64(i)/float64(width-1))), 1))
	}
	return b.String()
}

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Paul-Toth/ColorTools/internal/colour"
)

// colourJSON represents a single converted colour in JSON output format.
type colourJSON struct {
	Input string     `json:"input"`
	Hex   string     `json:"hex"`
	CSS   string     `json:"css"`
	RGB   colour.RGB `json:"rgb"`
}

func (a *app) hexToRGBCmd() *cobra.Command {
	var format, preview string

	cmd := &cobra.Command{
		Use:   "hex2rgb <hex>",
		Short: "Convert a hex colour to RGB",
		Long: `Convert a hex colour string to its red, green and blue channels.

The input must be 6 hex digits, optionally prefixed with "#" or "0x".

Examples:
  colortools hex2rgb "#1a2b3c"
  colortools hex2rgb 0x7f7f7f --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rgb, err := colour.HexToRGB(args[0])
			if err != nil {
				return err
			}
			a.logger.Debug("converted hex", "input", args[0], "rgb", rgb)
			return a.writeColour(cmd, args[0], rgb, format, preview)
		},
	}

	addFormatFlag(cmd.Flags(), &format)
	addPreviewFlag(cmd.Flags(), &preview)
	return cmd
}

func (a *app) rgbToHexCmd() *cobra.Command {
	var format, preview string

	cmd := &cobra.Command{
		Use:   "rgb2hex <r,g,b> | <r> <g> <b>",
		Short: "Convert RGB channels to a hex colour",
		Long: `Convert red, green and blue channels in [0,255] to a hex colour.

The result uses the "0x" prefix followed by 6 lowercase hex digits.
A value starting with "-" is read as a flag; put "--" before the channels
to pass one through (it is then rejected as out of range).

Examples:
  colortools rgb2hex 10,20,30
  colortools rgb2hex 255 128 0
  colortools rgb2hex -- -1 0 0`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 && len(args) != 3 {
				return fmt.Errorf("accepts 1 or 3 arg(s), received %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			parts := args
			if len(args) == 1 {
				parts = strings.Split(args[0], ",")
			}
			rgb, err := parseRGB(parts)
			if err != nil {
				return err
			}
			if _, err := colour.RGBToHex(rgb); err != nil {
				return err
			}
			a.logger.Debug("converted rgb", "rgb", rgb)
			return a.writeColour(cmd, strings.Join(args, " "), rgb, format, preview)
		},
	}

	addFormatFlag(cmd.Flags(), &format)
	addPreviewFlag(cmd.Flags(), &preview)
	return cmd
}

func (a *app) resolveCmd() *cobra.Command {
	var format, preview string

	cmd := &cobra.Command{
		Use:   "resolve <colour>",
		Short: "Resolve a colour name, hex literal or r,g,b triple",
		Long: `Resolve a colour to RGB.

Names from the CSS colour table take precedence; any other text is parsed
as a hex literal. "r,g,b" triples are passed through unchanged.

Examples:
  colortools resolve red
  colortools resolve "#c0ffee"
  colortools resolve 12,34,56 --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseColour(args[0])
			if err != nil {
				return err
			}
			rgb, err := a.resolver.Resolve(c)
			if err != nil {
				return err
			}
			if _, err := colour.RGBToHex(rgb); err != nil {
				return err
			}
			a.logger.Debug("resolved colour", "input", args[0], "rgb", rgb)
			return a.writeColour(cmd, args[0], rgb, format, preview)
		},
	}

	addFormatFlag(cmd.Flags(), &format)
	addPreviewFlag(cmd.Flags(), &preview)
	return cmd
}

// writeColour prints a valid RGB value in the requested format.
func (a *app) writeColour(cmd *cobra.Command, input string, rgb colour.RGB, format, preview string) error {
	hex, err := colour.RGBToHex(rgb)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if format == formatJSON {
		return writeJSON(out, colourJSON{Input: input, Hex: hex, CSS: colour.CSSHex(rgb), RGB: rgb})
	}

	line := fmt.Sprintf("%s  %s", hex, rgb)
	if a.showPreview(preview, out) {
		line = colour.Swatch(rgb, 4) + "  " + line
	}
	_, err = fmt.Fprintln(out, line)
	return err
}

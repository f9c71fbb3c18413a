package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Paul-Toth/ColorTools/internal/colour"
)

func (a *app) namesCmd() *cobra.Command {
	var format, preview string

	cmd := &cobra.Command{
		Use:   "names [filter]",
		Short: "List the colour names accepted in place of hex colours",
		Long: `List the CSS colour names that resolve, gradient and the other commands
accept. An optional filter keeps only names containing that text.

Examples:
  colortools names
  colortools names blue`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var filter string
			if len(args) == 1 {
				filter = strings.ToLower(args[0])
			}

			names := colour.CSSNames()
			var matched []string
			for _, name := range colour.CSSNameList() {
				if strings.Contains(name, filter) {
					matched = append(matched, name)
				}
			}
			a.logger.Debug("listing colour names", "filter", filter, "matched", len(matched))

			out := cmd.OutOrStdout()
			if format == formatJSON {
				entries := make(map[string]string, len(matched))
				for _, name := range matched {
					entries[name], _ = names.Lookup(name)
				}
				return writeJSON(out, entries)
			}

			withSwatch := a.showPreview(preview, out)
			for _, name := range matched {
				hex, _ := names.Lookup(name)
				line := fmt.Sprintf("%-20s %s", name, hex)
				if withSwatch {
					rgb, err := colour.HexToRGB(hex)
					if err != nil {
						return err
					}
					line = colour.Swatch(rgb, 2) + " " + line
				}
				if _, err := fmt.Fprintln(out, line); err != nil {
					return err
				}
			}
			return nil
		},
	}

	addFormatFlag(cmd.Flags(), &format)
	addPreviewFlag(cmd.Flags(), &preview)
	return cmd
}

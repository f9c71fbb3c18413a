// ColorTools - colour conversion, gradient and colormap helpers
//
// ColorTools converts between hex and RGB colours, interpolates linear
// gradients and trims named colormaps to a sub-range.
package main

import (
	"os"

	"github.com/Paul-Toth/ColorTools/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

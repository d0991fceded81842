package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bricktools/goblb/version"
)

var rootCmd = &cobra.Command{
	Use:   "goblb",
	Short: "A CLI tool for converting 3D scenes into BLB bricks",
	Long: `goblb converts exported 3D scene files into BLB brick definitions.
It resolves the brick bounds, builds the brick grid, extracts collision
boxes and sorts the visible geometry into the six brick sides.`,
	Version: version.GetFullVersion(),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

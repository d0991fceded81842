package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bricktools/goblb/pkg/scene"
)

var validateCmd = &cobra.Command{
	Use:   "validate [scene file]",
	Short: "Validate a scene file against the interchange schema",
	Long:  "Check that a scene file is well-formed JSON and matches the scene interchange schema.",
	Args:  cobra.ExactArgs(1),
	Run:   runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) {
	filename := args[0]

	if err := scene.Validate(filename); err != nil {
		fmt.Fprintf(os.Stderr, "%s is not a valid scene file:\n%v\n", filename, err)
		os.Exit(1)
	}

	fmt.Printf("%s is a valid scene file\n", filename)
}

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bricktools/goblb/pkg/scene"
)

var infoCmd = &cobra.Command{
	Use:   "info [scene file]",
	Short: "Display general information about a scene file",
	Long:  "Show the objects in a scene file and how the exporter would classify them.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]

	sc, err := scene.Load(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scene file: %v\n", err)
		os.Exit(1)
	}

	vertexCount := 0
	polygonCount := 0
	definitionCount := 0
	for i := range sc.Objects {
		obj := &sc.Objects[i]
		if isDefinitionName(obj.Name) {
			definitionCount++
		}
		if obj.IsMesh() {
			vertexCount += obj.Mesh.VertexCount()
			polygonCount += len(obj.Mesh.Polygons)
		}
	}

	fmt.Println("Scene File Information")
	fmt.Println("======================")
	fmt.Printf("File: %s\n\n", filename)

	fmt.Println("Scene Statistics:")
	fmt.Printf("  Objects: %d\n", len(sc.Objects))
	fmt.Printf("  Meshes: %d\n", sc.MeshCount())
	fmt.Printf("  Selected: %d\n", len(sc.SelectedObjects()))
	fmt.Printf("  Vertices: %d\n", vertexCount)
	fmt.Printf("  Polygons: %d\n\n", polygonCount)

	fmt.Printf("Definition Objects: %d\n", definitionCount)
	for i := range sc.Objects {
		obj := &sc.Objects[i]
		if kind := definitionKind(obj.Name); kind != "" {
			fmt.Printf("  %s (%s)\n", obj.Name, kind)
		}
	}
}

// definitionKind names the definition type an object name selects, or ""
// for visible geometry.
func definitionKind(name string) string {
	lower := strings.ToLower(name)
	switch {
	case strings.HasPrefix(lower, "bounds"):
		return "bounds"
	case strings.HasPrefix(lower, "collision"):
		return "collision"
	case strings.HasPrefix(lower, "grid"):
		return "brick grid"
	}
	return ""
}

func isDefinitionName(name string) bool {
	return definitionKind(name) != ""
}

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bricktools/goblb/internal/config"
	"github.com/bricktools/goblb/internal/logger"
	"github.com/bricktools/goblb/pkg/blb"
	"github.com/bricktools/goblb/pkg/processor"
	"github.com/bricktools/goblb/pkg/scene"
)

var (
	exportConfig    string
	exportOutput    string
	exportForward   string
	exportSelection bool
	exportCoverage  bool
)

var exportCmd = &cobra.Command{
	Use:   "export [scene file]",
	Short: "Convert a scene file into a BLB brick",
	Long: `Process a scene file into a BLB brick definition: the brick bounds,
grid and collision definition objects are resolved and the remaining
meshes become the visible geometry.`,
	Args: cobra.ExactArgs(1),
	Run:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportConfig, "config", "c", "", "config file (default: goblb.yaml if present)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: scene file name with .blb)")
	exportCmd.Flags().StringVarP(&exportForward, "forward", "f", "", "forward axis: +x, +y, -x or -y")
	exportCmd.Flags().BoolVarP(&exportSelection, "selection", "s", false, "export only selected objects")
	exportCmd.Flags().BoolVar(&exportCoverage, "coverage", false, "calculate coverage")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) {
	scenePath := args[0]

	cfg, err := config.Load(exportConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if cmd.Flags().Changed("forward") {
		cfg.Export.ForwardAxis = exportForward
	}
	if cmd.Flags().Changed("selection") {
		cfg.Export.UseSelection = exportSelection
	}
	if cmd.Flags().Changed("coverage") {
		cfg.Export.CalculateCoverage = exportCoverage
	}

	props, err := cfg.Properties()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	sc, err := scene.Load(scenePath)
	if err != nil {
		logger.Sugar.Errorf("Failed to load scene: %v", err)
		os.Exit(1)
	}

	data, err := processor.New(sc, props, logger.Sugar).Process()
	if err != nil {
		logger.Sugar.Errorf("Export failed: %v", err)
		os.Exit(1)
	}

	output := exportOutput
	if output == "" {
		output = outputPath(scenePath)
	}

	if err := blb.WriteFile(output, data); err != nil {
		logger.Sugar.Errorf("Failed to write brick file: %v", err)
		os.Exit(1)
	}

	logger.Sugar.Infof("Wrote %s: %d x %d x %d plates, %d quad(s).",
		output, data.BrickSize[0], data.BrickSize[1], data.BrickSize[2], data.QuadCount())
}

// outputPath derives the brick file name from the scene file name.
func outputPath(scenePath string) string {
	base := strings.TrimSuffix(scenePath, ".gz")
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".blb"
}

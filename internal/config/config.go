// Package config handles exporter configuration loading and management.
package config

import (
	"fmt"

	"github.com/bricktools/goblb/pkg/blb"
	"github.com/bricktools/goblb/pkg/processor"
)

// Config holds all exporter settings.
type Config struct {
	Export  ExportConfig  `yaml:"export"`
	Logging LoggingConfig `yaml:"logging"`
}

// ExportConfig holds the export options.
type ExportConfig struct {
	// ForwardAxis is the horizontal world direction treated as the front
	// of the brick: "+x", "+y", "-x" or "-y".
	ForwardAxis string `yaml:"forward_axis"`

	// UseSelection exports only the selected objects, falling back to
	// the whole scene when nothing is selected.
	UseSelection bool `yaml:"use_selection"`

	// CalculateCoverage enables the per-side coverage computation.
	CalculateCoverage bool `yaml:"calculate_coverage"`

	Coverage CoverageConfig `yaml:"coverage"`
}

// CoverageConfig holds the per-side coverage options.
type CoverageConfig struct {
	Top    SideConfig `yaml:"top"`
	Bottom SideConfig `yaml:"bottom"`
	North  SideConfig `yaml:"north"`
	East   SideConfig `yaml:"east"`
	South  SideConfig `yaml:"south"`
	West   SideConfig `yaml:"west"`
}

// SideConfig holds the coverage options of one brick side.
type SideConfig struct {
	Calculate    bool `yaml:"calculate"`
	HideAdjacent bool `yaml:"hide_adjacent"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Export: ExportConfig{
			ForwardAxis:       "+y",
			UseSelection:      false,
			CalculateCoverage: false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Properties converts the export settings into processor properties.
func (c *Config) Properties() (processor.Properties, error) {
	forward, err := blb.ParseForwardAxis(c.Export.ForwardAxis)
	if err != nil {
		return processor.Properties{}, fmt.Errorf("invalid forward_axis: %w", err)
	}

	sideConfigs := [blb.SideCount]SideConfig{
		blb.SectionTop:    c.Export.Coverage.Top,
		blb.SectionBottom: c.Export.Coverage.Bottom,
		blb.SectionNorth:  c.Export.Coverage.North,
		blb.SectionEast:   c.Export.Coverage.East,
		blb.SectionSouth:  c.Export.Coverage.South,
		blb.SectionWest:   c.Export.Coverage.West,
	}

	props := processor.Properties{
		UseSelection:      c.Export.UseSelection,
		ForwardAxis:       forward,
		CalculateCoverage: c.Export.CalculateCoverage,
	}
	for i, side := range sideConfigs {
		props.Sides[i] = processor.SideOptions{
			Calculate:    side.Calculate,
			HideAdjacent: side.HideAdjacent,
		}
	}
	return props, nil
}

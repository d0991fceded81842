// Package blb defines the in-memory model of a BLB brick and its file
// serialization.
package blb

import (
	"fmt"
	"strings"

	"github.com/bricktools/goblb/pkg/fixed"
	"github.com/bricktools/goblb/pkg/geometry"
)

// Section identifies one of the seven quad sections of a brick. The
// numeric order is the order sections are written to a BLB file.
type Section int

// Quad sections.
const (
	SectionTop Section = iota
	SectionBottom
	SectionNorth
	SectionEast
	SectionSouth
	SectionWest
	SectionOmni

	SectionCount = 7
)

// SideCount is the number of brick sides carrying coverage data. Omni has
// no coverage entry.
const SideCount = 6

func (s Section) String() string {
	switch s {
	case SectionTop:
		return "TOP"
	case SectionBottom:
		return "BOTTOM"
	case SectionNorth:
		return "NORTH"
	case SectionEast:
		return "EAST"
	case SectionSouth:
		return "SOUTH"
	case SectionWest:
		return "WEST"
	case SectionOmni:
		return "OMNI"
	}
	return fmt.Sprintf("Section(%d)", int(s))
}

// ForwardAxis is the horizontal direction treated as the front of the
// brick. Vertical forward axes are not supported by the format.
type ForwardAxis int

// Forward axis values.
const (
	ForwardPosX ForwardAxis = iota
	ForwardNegX
	ForwardPosY
	ForwardNegY
)

func (a ForwardAxis) String() string {
	switch a {
	case ForwardPosX:
		return "+x"
	case ForwardNegX:
		return "-x"
	case ForwardPosY:
		return "+y"
	case ForwardNegY:
		return "-y"
	}
	return fmt.Sprintf("ForwardAxis(%d)", int(a))
}

// ParseForwardAxis parses a forward axis from its textual form.
func ParseForwardAxis(s string) (ForwardAxis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "+x", "x", "positive_x":
		return ForwardPosX, nil
	case "-x", "negative_x":
		return ForwardNegX, nil
	case "+y", "y", "positive_y":
		return ForwardPosY, nil
	case "-y", "negative_y":
		return ForwardNegY, nil
	}
	return ForwardPosX, fmt.Errorf("blb: unknown forward axis %q", s)
}

// Swapped reports whether the axis swaps the brick's width and depth
// relative to the scene X/Y axes.
func (a ForwardAxis) Swapped() bool {
	return a == ForwardPosY || a == ForwardNegY
}

// Brick grid symbols.
const (
	GridOutside byte = '-' // empty space, building allowed
	GridInside  byte = 'x' // solid, building disallowed
	GridUp      byte = 'u' // bricks may be placed above this plate
	GridDown    byte = 'd' // bricks may be placed below this plate
	GridBoth    byte = 'b' // bricks may be placed above and below
)

// DefaultCoverage is the sentinel coverage area meaning "never hide this
// side". The largest real side area is 64 * 256 plates.
const DefaultCoverage = 99999

// MaxCollisionBoxes is the number of collision boxes the format accepts.
const MaxCollisionBoxes = 10

// Game-imposed size limits, in plates.
const (
	MaxHorizontalPlates = 64
	MaxVerticalPlates   = 256
)

// CoverageEntry is the coverage state of a single brick side.
type CoverageEntry struct {
	HideAdjacent bool
	Area         int
}

// CollisionBox is one axis-aligned collision volume in brick-local plate
// coordinates.
type CollisionBox struct {
	Center fixed.Vec
	Size   fixed.Vec
}

// Quad is one exported face. Positions are brick-local with Z in plates
// and the winding already reversed for the game.
type Quad struct {
	Positions [4]fixed.Vec
	Normals   [4]geometry.Vector3
	UVs       [4]geometry.Vector2
	Colors    [][4]float64 // reserved, currently always nil
	Texture   string
}

// BrickData is the complete description of one brick, ready to write.
type BrickData struct {
	// BrickSize is the integer XYZ size in plates.
	BrickSize [3]int

	// BrickGrid is indexed [depth][height][width]; height 0 is the top
	// of the brick.
	BrickGrid [][][]byte

	// Collision holds up to MaxCollisionBoxes boxes in definition order.
	Collision []CollisionBox

	// Coverage holds one entry per side in Section order.
	Coverage [SideCount]CoverageEntry

	// Quads holds one bucket per Section, always SectionCount buckets.
	Quads [SectionCount][]Quad
}

// NewGrid allocates a brick grid of the given dimensions filled with the
// outside symbol.
func NewGrid(width, depth, height int) [][][]byte {
	grid := make([][][]byte, depth)
	for d := range grid {
		grid[d] = make([][]byte, height)
		for h := range grid[d] {
			row := make([]byte, width)
			for w := range row {
				row[w] = GridOutside
			}
			grid[d][h] = row
		}
	}
	return grid
}

// QuadCount returns the total number of quads across all sections.
func (b *BrickData) QuadCount() int {
	count := 0
	for _, section := range b.Quads {
		count += len(section)
	}
	return count
}

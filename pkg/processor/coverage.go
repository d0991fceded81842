package processor

import (
	"github.com/bricktools/goblb/pkg/blb"
)

// defaultCoverage returns the coverage used when calculation is disabled:
// no side hides adjacent faces and the sentinel area means a side is
// never hidden.
func defaultCoverage() [blb.SideCount]blb.CoverageEntry {
	var coverage [blb.SideCount]blb.CoverageEntry
	for i := range coverage {
		coverage[i] = blb.CoverageEntry{HideAdjacent: false, Area: blb.DefaultCoverage}
	}
	return coverage
}

// calculateCoverage computes per-side coverage areas for the given brick
// size. Areas are computed assuming a +X forward axis and then permuted
// for the actual axis; only ±Y needs a permutation since the brick is a
// cuboid and a 180 degree turn leaves side areas unchanged.
func calculateCoverage(brickSize [3]int, sides [blb.SideCount]SideOptions, forward blb.ForwardAxis) [blb.SideCount]blb.CoverageEntry {
	var coverage [blb.SideCount]blb.CoverageEntry

	for i := range coverage {
		area := blb.DefaultCoverage
		if sides[i].Calculate {
			switch blb.Section(i) {
			case blb.SectionTop, blb.SectionBottom:
				area = brickSize[0] * brickSize[1]
			case blb.SectionNorth, blb.SectionSouth:
				area = brickSize[0] * brickSize[2]
			case blb.SectionEast, blb.SectionWest:
				area = brickSize[1] * brickSize[2]
			}
		}
		coverage[i] = blb.CoverageEntry{HideAdjacent: sides[i].HideAdjacent, Area: area}
	}

	if forward.Swapped() {
		// A quarter turn makes +Y the new north: each horizontal entry
		// takes the value of the side one step counterclockwise.
		rotated := coverage
		rotated[blb.SectionNorth] = coverage[blb.SectionWest]
		rotated[blb.SectionEast] = coverage[blb.SectionNorth]
		rotated[blb.SectionSouth] = coverage[blb.SectionEast]
		rotated[blb.SectionWest] = coverage[blb.SectionSouth]
		coverage = rotated
	}

	return coverage
}

// processCoverage computes the coverage data for the run.
func (p *Processor) processCoverage() [blb.SideCount]blb.CoverageEntry {
	if !p.props.CalculateCoverage {
		return defaultCoverage()
	}
	return calculateCoverage(p.data.BrickSize, p.props.Sides, p.props.ForwardAxis)
}

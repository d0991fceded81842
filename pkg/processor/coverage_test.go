package processor

import (
	"testing"

	"github.com/bricktools/goblb/pkg/blb"
)

func allSides(options SideOptions) [blb.SideCount]SideOptions {
	var sides [blb.SideCount]SideOptions
	for i := range sides {
		sides[i] = options
	}
	return sides
}

func TestDefaultCoverage(t *testing.T) {
	for i, entry := range defaultCoverage() {
		if entry.HideAdjacent {
			t.Errorf("side %d: expected HideAdjacent false", i)
		}
		if entry.Area != blb.DefaultCoverage {
			t.Errorf("side %d: expected area %d, got %d", i, blb.DefaultCoverage, entry.Area)
		}
	}
}

func TestCalculateCoverageAreas(t *testing.T) {
	coverage := calculateCoverage([3]int{1, 2, 3}, allSides(SideOptions{Calculate: true, HideAdjacent: true}), blb.ForwardPosX)

	expected := map[blb.Section]int{
		blb.SectionTop:    2, // 1 x 2
		blb.SectionBottom: 2,
		blb.SectionNorth:  3, // 1 x 3
		blb.SectionSouth:  3,
		blb.SectionEast:   6, // 2 x 3
		blb.SectionWest:   6,
	}
	for section, area := range expected {
		entry := coverage[section]
		if entry.Area != area {
			t.Errorf("%s: expected area %d, got %d", section, area, entry.Area)
		}
		if !entry.HideAdjacent {
			t.Errorf("%s: expected HideAdjacent true", section)
		}
	}
}

func TestCalculateCoverageDisabledSide(t *testing.T) {
	sides := allSides(SideOptions{Calculate: true})
	sides[blb.SectionTop] = SideOptions{}

	coverage := calculateCoverage([3]int{2, 2, 2}, sides, blb.ForwardPosX)

	if coverage[blb.SectionTop].Area != blb.DefaultCoverage {
		t.Errorf("expected disabled side to keep the default area, got %d", coverage[blb.SectionTop].Area)
	}
	if coverage[blb.SectionBottom].Area != 4 {
		t.Errorf("expected bottom area 4, got %d", coverage[blb.SectionBottom].Area)
	}
}

func TestCalculateCoverageSidewaysForwardAxis(t *testing.T) {
	sides := allSides(SideOptions{Calculate: true})
	coverage := calculateCoverage([3]int{1, 2, 3}, sides, blb.ForwardPosY)

	// A quarter turn: the wide faces trade places with the narrow ones.
	expected := map[blb.Section]int{
		blb.SectionTop:    2,
		blb.SectionBottom: 2,
		blb.SectionNorth:  6, // was west
		blb.SectionEast:   3, // was north
		blb.SectionSouth:  6, // was east
		blb.SectionWest:   3, // was south
	}
	for section, area := range expected {
		if coverage[section].Area != area {
			t.Errorf("%s: expected area %d, got %d", section, area, coverage[section].Area)
		}
	}
}

package processor

import (
	"strings"

	"github.com/bricktools/goblb/pkg/blb"
	"github.com/bricktools/goblb/pkg/fixed"
	"github.com/bricktools/goblb/pkg/scene"
)

// gridPrefixes maps definition object name prefixes to grid symbols. The
// order is the paint priority: volumes of a later entry overwrite cells
// painted by an earlier one, so a "grid-" definition can carve empty
// space out of any other region.
var gridPrefixes = [...]struct {
	prefix string
	symbol byte
}{
	{"gridb", blb.GridBoth},
	{"gridd", blb.GridDown},
	{"gridu", blb.GridUp},
	{"gridx", blb.GridInside},
	{"grid-", blb.GridOutside},
}

// gridPrefixIndex returns the priority index for a lower-cased object
// name, or -1 when the name is not a grid definition.
func gridPrefixIndex(lowerName string) int {
	for i, entry := range gridPrefixes {
		if strings.HasPrefix(lowerName, entry.prefix) {
			return i
		}
	}
	return -1
}

// gridVolume is a box in brick grid index space with half-open [min, max)
// ranges: d indexes the depth slices, w the cells within a row, h the
// height rows (0 = top of the brick).
type gridVolume struct {
	d, w, h [2]int
}

// gridObjectToVolume converts a grid definition mesh into grid index
// space. Must run after the bounds have been resolved. Returns
// ErrOutOfBounds or ErrZeroSize for definitions that cannot be used.
func (p *Processor) gridObjectToVolume(obj *scene.Object) (gridVolume, error) {
	halved := p.bounds.dimensions.Halved()
	worldBounds := obj.WorldBounds()

	// Recenter on the bounds and snap to valid plate positions.
	gridMin := fixed.WorldToLocal(fixed.VecFromVector3(worldBounds.Min), p.bounds.worldCenter)
	gridMax := fixed.WorldToLocal(fixed.VecFromVector3(worldBounds.Max), p.bounds.worldCenter)
	gridMin = fixed.RoundToPlateGrid(gridMin, p.bounds.dimensions)
	gridMax = fixed.RoundToPlateGrid(gridMax, p.bounds.dimensions)

	if !gridMin.WithinBounds(p.bounds.dimensions) || !gridMax.WithinBounds(p.bounds.dimensions) {
		return gridVolume{}, ErrOutOfBounds
	}

	forward := p.props.ForwardAxis

	// Translate both corners into index space: the origin moves to the
	// corner the forward axis reads from, and height counts in plates.
	for _, corner := range []*fixed.Vec{&gridMin, &gridMax} {
		if forward == blb.ForwardNegX || forward == blb.ForwardNegY {
			corner[fixed.X] = corner[fixed.X].Sub(halved[fixed.X])
		} else {
			corner[fixed.X] = corner[fixed.X].Add(halved[fixed.X])
		}

		if forward == blb.ForwardPosX || forward == blb.ForwardNegY {
			corner[fixed.Y] = corner[fixed.Y].Sub(halved[fixed.Y])
		} else {
			corner[fixed.Y] = corner[fixed.Y].Add(halved[fixed.Y])
		}

		corner[fixed.Z] = corner[fixed.Z].Sub(halved[fixed.Z]).Div(fixed.PlateHeight)
	}

	// Flip the height axis: index 0 is the top of the brick.
	gridMin[fixed.Z], gridMax[fixed.Z] = gridMax[fixed.Z].Abs(), gridMin[fixed.Z].Abs()

	switch forward {
	case blb.ForwardPosX:
		gridMin[fixed.Y], gridMax[fixed.Y] = gridMax[fixed.Y].Abs(), gridMin[fixed.Y].Abs()
		gridMin[fixed.X], gridMin[fixed.Y] = gridMin[fixed.Y], gridMin[fixed.X]
		gridMax[fixed.X], gridMax[fixed.Y] = gridMax[fixed.Y], gridMax[fixed.X]
	case blb.ForwardNegX:
		gridMin[fixed.X], gridMax[fixed.X] = gridMax[fixed.X].Abs(), gridMin[fixed.X].Abs()
		gridMin[fixed.X], gridMin[fixed.Y] = gridMin[fixed.Y], gridMin[fixed.X]
		gridMax[fixed.X], gridMax[fixed.Y] = gridMax[fixed.Y], gridMax[fixed.X]
	case blb.ForwardNegY:
		gridMin[fixed.Y], gridMax[fixed.Y] = gridMax[fixed.Y].Abs(), gridMin[fixed.Y].Abs()
		gridMin[fixed.X], gridMax[fixed.X] = gridMax[fixed.X].Abs(), gridMin[fixed.X].Abs()
	case blb.ForwardPosY:
		// Index space already reads along +Y.
	}

	minIndex := gridMin.ToInts()
	maxIndex := gridMax.ToInts()

	for i := range maxIndex {
		if maxIndex[i]-minIndex[i] == 0 {
			return gridVolume{}, ErrZeroSize
		}
	}

	return gridVolume{
		d: [2]int{minIndex[0], maxIndex[0]},
		w: [2]int{minIndex[1], maxIndex[1]},
		h: [2]int{minIndex[2], maxIndex[2]},
	}, nil
}

// processGridDefinitions builds the brick grid from the given definition
// objects, or the default grid when there are none.
func (p *Processor) processGridDefinitions(definitionObjects []scene.Object) {
	// One volume list per prefix, merged in priority order below.
	volumes := make([][]gridVolume, len(gridPrefixes))
	processed := 0

	for i := range definitionObjects {
		obj := &definitionObjects[i]

		volume, err := p.gridObjectToVolume(obj)
		switch err {
		case nil:
			index := gridPrefixIndex(strings.ToLower(obj.Name))
			volumes[index] = append(volumes[index], volume)
			processed++
		case ErrOutOfBounds:
			if p.bounds.name == "" {
				p.log.Errorf("Brick grid definition object '%s' has vertices outside the calculated brick bounds. Definition ignored.", obj.Name)
			} else {
				p.log.Errorf("Brick grid definition object '%s' has vertices outside the bounds definition object '%s'. Definition ignored.", obj.Name, p.bounds.name)
			}
		case ErrZeroSize:
			p.log.Errorf("Brick grid definition object '%s' has zero size on at least one axis. Definition ignored.", obj.Name)
		}
	}

	switch {
	case len(definitionObjects) == 0:
		p.log.Warn("No brick grid definitions found. Automatically generated brick grid may be undesirable.")
	case processed == 0:
		p.log.Warnf("%d brick grid definition(s) found but none were processed. Automatically generated brick grid may be undesirable.", len(definitionObjects))
	default:
		p.log.Infof("Processed %d of %d brick grid definition(s).", processed, len(definitionObjects))
	}

	// Grid axes are defined relative to the brick's reading orientation,
	// so a ±Y forward axis swaps width and depth.
	var gridWidth, gridDepth int
	if p.props.ForwardAxis.Swapped() {
		gridWidth = p.data.BrickSize[1]
		gridDepth = p.data.BrickSize[0]
	} else {
		gridWidth = p.data.BrickSize[0]
		gridDepth = p.data.BrickSize[1]
	}
	gridHeight := p.data.BrickSize[2]

	grid := blb.NewGrid(gridWidth, gridDepth, gridHeight)

	if len(definitionObjects) == 0 {
		fillDefaultGrid(grid)
	} else {
		for index, volumeList := range volumes {
			symbol := gridPrefixes[index].symbol
			for _, volume := range volumeList {
				paintVolume(grid, volume, symbol)
			}
		}
	}

	p.data.BrickGrid = grid
}

// fillDefaultGrid writes the procedural grid used when no definitions
// exist: buildable above the top layer, below the bottom layer, solid in
// between. A single-plate brick is buildable both ways.
func fillDefaultGrid(grid [][][]byte) {
	for _, slice := range grid {
		height := len(slice)
		for h, row := range slice {
			var symbol byte
			isTop := h == 0
			isBottom := h == height-1

			switch {
			case isTop && isBottom:
				symbol = blb.GridBoth
			case isBottom:
				symbol = blb.GridDown
			case isTop:
				symbol = blb.GridUp
			default:
				symbol = blb.GridInside
			}

			for w := range row {
				row[w] = symbol
			}
		}
	}
}

// paintVolume writes the symbol into every cell of the volume.
func paintVolume(grid [][][]byte, volume gridVolume, symbol byte) {
	for d := volume.d[0]; d < volume.d[1]; d++ {
		for h := volume.h[0]; h < volume.h[1]; h++ {
			for w := volume.w[0]; w < volume.w[1]; w++ {
				grid[d][h][w] = symbol
			}
		}
	}
}

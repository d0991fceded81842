package processor

import (
	"github.com/shopspring/decimal"

	"github.com/bricktools/goblb/pkg/fixed"
	"github.com/bricktools/goblb/pkg/geometry"
	"github.com/bricktools/goblb/pkg/scene"
)

// humanError is the tolerance used to round away small modelling
// imprecision in explicitly defined bounds.
var humanError = decimal.RequireFromString("0.1")

var wholePlate = decimal.NewFromInt(1)

// processBoundsObject resolves the brick bounds from an explicit bounds
// definition object.
func (p *Processor) processBoundsObject(obj *scene.Object) {
	worldBounds := obj.WorldBounds()

	p.bounds.name = obj.Name
	p.bounds.dimensions = fixed.VecFromVector3(obj.Dimensions())
	p.bounds.worldMin = fixed.VecFromVector3(worldBounds.Min)
	p.bounds.worldMax = fixed.VecFromVector3(worldBounds.Max)
	p.bounds.worldCenter = fixed.Center(p.bounds.worldMin, p.bounds.dimensions)

	size := p.bounds.dimensions.ZToPlates()

	if !size.AllIntegral() {
		p.log.Warnf("Defined bounds have a non-integer size %s %s %s, rounding to a precision of %s.",
			fixed.Format(size[0]), fixed.Format(size[1]), fixed.Format(size[2]), humanError)
		for i := range size {
			// Snap to the tolerance, then to a whole plate.
			snapped, _ := fixed.Quantize(size[i], humanError)
			size[i], _ = fixed.Quantize(snapped, wholePlate)
		}
	}

	p.data.BrickSize = size.ToInts()
}

// calculateBounds resolves the brick bounds from the recorded vertex
// extent of all visible meshes.
func (p *Processor) calculateBounds(recorded geometry.BoundingBox) {
	p.log.Warnf("No '%s' definition found. Automatically calculated brick size may be undesirable.", boundsPrefix)

	if recorded.IsEmpty() {
		// No visible mesh vertices either; the size check fails the run.
		p.bounds = brickBounds{}
		p.data.BrickSize = [3]int{}
		return
	}

	p.bounds.name = ""
	p.bounds.dimensions = fixed.VecFromVector3(recorded.Size())
	p.bounds.worldMin = fixed.VecFromVector3(recorded.Min)
	p.bounds.worldMax = fixed.VecFromVector3(recorded.Max)
	p.bounds.worldCenter = fixed.Center(p.bounds.worldMin, p.bounds.dimensions)

	size := p.bounds.dimensions.ZToPlates()

	if !size.AllIntegral() {
		p.log.Warnf("Calculated bounds have a non-integer size %s %s %s, rounding up.",
			fixed.Format(size[0]), fixed.Format(size[1]), fixed.Format(size[2]))
		// Round up so the brick is guaranteed to contain the geometry.
		size = size.Ceil()
	}

	p.data.BrickSize = size.ToInts()
}

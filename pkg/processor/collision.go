package processor

import (
	"github.com/bricktools/goblb/pkg/blb"
	"github.com/bricktools/goblb/pkg/fixed"
	"github.com/bricktools/goblb/pkg/scene"
)

// collisionBox converts one collision definition mesh into a box in
// brick-local plate space. Must run after the bounds have been resolved.
func (p *Processor) collisionBox(obj *scene.Object) (blb.CollisionBox, error) {
	vertexCount := obj.Mesh.VertexCount()

	// A bounding box needs at least two corners.
	if vertexCount < 2 {
		return blb.CollisionBox{}, ErrTooFewVertices
	}
	if vertexCount > 8 {
		p.log.Warnf("Collision definition object '%s' has more than 8 vertices suggesting a shape other than a cuboid. Bounding box of this mesh will be used.", obj.Name)
	}

	worldBounds := obj.WorldBounds()
	boxMin := fixed.WorldToLocal(fixed.VecFromVector3(worldBounds.Min), p.bounds.worldCenter)
	boxMax := fixed.WorldToLocal(fixed.VecFromVector3(worldBounds.Max), p.bounds.worldCenter)

	if !boxMin.WithinBounds(p.bounds.dimensions) || !boxMax.WithinBounds(p.bounds.dimensions) {
		return blb.CollisionBox{}, ErrOutOfBounds
	}

	size := boxMax.Sub(boxMin)
	for i := range size {
		if size[i].IsZero() {
			return blb.CollisionBox{}, ErrZeroSize
		}
	}

	center := fixed.Center(boxMin, size)

	return blb.CollisionBox{
		Center: center.ZToPlates(),
		Size:   size.ZToPlates(),
	}, nil
}

// processCollisionDefinitions extracts up to blb.MaxCollisionBoxes boxes
// from the given definition objects, preserving definition order.
func (p *Processor) processCollisionDefinitions(definitionObjects []scene.Object) {
	if len(definitionObjects) > blb.MaxCollisionBoxes {
		p.log.Errorf("%d collision boxes defined but %d is the maximum. Only the first %d will be processed.",
			len(definitionObjects), blb.MaxCollisionBoxes, blb.MaxCollisionBoxes)
	}

	processed := 0
	for i := range definitionObjects {
		if processed >= blb.MaxCollisionBoxes {
			break
		}
		obj := &definitionObjects[i]

		box, err := p.collisionBox(obj)
		switch err {
		case nil:
			p.data.Collision = append(p.data.Collision, box)
			processed++
		case ErrTooFewVertices:
			p.log.Errorf("Collision definition object '%s' has less than 2 vertices. Definition ignored.", obj.Name)
		case ErrZeroSize:
			p.log.Errorf("Collision definition object '%s' has zero size on at least one axis. Definition ignored.", obj.Name)
		case ErrOutOfBounds:
			if p.bounds.name == "" {
				p.log.Errorf("Collision definition object '%s' has vertices outside the calculated brick bounds. Definition ignored.", obj.Name)
			} else {
				p.log.Errorf("Collision definition object '%s' has vertices outside the bounds definition object '%s'. Definition ignored.", obj.Name, p.bounds.name)
			}
		}
	}

	switch {
	case len(definitionObjects) == 0:
		p.log.Warn("No collision definitions found. Default generated collision may be undesirable.")
	case processed == 0:
		p.log.Warnf("%d collision definition(s) found but none were processed. Default generated collision may be undesirable.", len(definitionObjects))
	default:
		p.log.Infof("Processed %d of %d collision definition(s).", processed, len(definitionObjects))
	}
}

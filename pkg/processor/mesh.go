package processor

import (
	"strings"

	"github.com/bricktools/goblb/pkg/blb"
	"github.com/bricktools/goblb/pkg/fixed"
	"github.com/bricktools/goblb/pkg/geometry"
	"github.com/bricktools/goblb/pkg/scene"
)

// blankTexture is used when a polygon has no material assigned; with the
// default UV point it renders as a blank face.
const blankTexture = "SIDE"

// defaultUV is the center of the texture, used when a mesh has no UV
// layer.
var defaultUV = geometry.NewVector2(0.5, 0.5)

// processMeshes converts the visible meshes into quads partitioned by
// section. Triangles are degenerated to quads, n-gons are skipped; both
// are reported as aggregate counts.
func (p *Processor) processMeshes(meshes []scene.Object) [blb.SectionCount][]blb.Quad {
	var quads []blb.Quad
	triangleCount := 0
	ngonCount := 0

	for i := range meshes {
		obj := &meshes[i]
		p.log.Infof("Exporting mesh: %s", obj.Name)

		var uvData []geometry.Vector2
		if len(obj.Mesh.UVLayers) > 0 {
			if len(obj.Mesh.UVLayers) > 1 {
				p.log.Warnf("Object '%s' has %d UV layers, only using the first.", obj.Name, len(obj.Mesh.UVLayers))
			}
			uvData = obj.Mesh.UVLayers[0].Data
		}

		for _, poly := range obj.Mesh.Polygons {
			var loopIndices []int
			switch poly.LoopTotal {
			case 4:
				loopIndices = poly.LoopIndices()
			case 3:
				// Degenerate the triangle by repeating its first loop.
				loopIndices = append(poly.LoopIndices(), poly.LoopStart)
				triangleCount++
			default:
				ngonCount++
				continue
			}

			quads = append(quads, p.buildQuad(obj, poly, loopIndices, uvData))
		}
	}

	if triangleCount > 0 {
		p.log.Warnf("%d triangle(s) degenerated to quads.", triangleCount)
	}
	if ngonCount > 0 {
		p.log.Warnf("%d n-gon(s) skipped.", ngonCount)
	}

	var sorted [blb.SectionCount][]blb.Quad
	for i := range quads {
		section := sortQuad(&quads[i], p.bounds.dimensions, p.props.ForwardAxis)
		sorted[section] = append(sorted[section], quads[i])
	}
	return sorted
}

// buildQuad assembles one quad record from a polygon. The loop order is
// reversed to correct the winding for the game.
func (p *Processor) buildQuad(obj *scene.Object, poly scene.Polygon, loopIndices []int, uvData []geometry.Vector2) blb.Quad {
	var quad blb.Quad

	for i := range quad.Positions {
		loop := loopIndices[len(loopIndices)-1-i]
		world := obj.WorldVertex(obj.LoopVertex(loop))
		local := fixed.WorldToLocal(fixed.VecFromVector3(world), p.bounds.worldCenter)
		quad.Positions[i] = local.ZToPlates()
	}

	// TODO: flat-shaded normals ignore the object rotation; smooth ones
	// are transformed.
	if poly.Smooth {
		for i := range quad.Normals {
			loop := loopIndices[len(loopIndices)-1-i]
			quad.Normals[i] = obj.LoopNormal(loop)
		}
	} else {
		for i := range quad.Normals {
			quad.Normals[i] = poly.Normal
		}
	}

	if uvData != nil {
		for i := range quad.UVs {
			loop := loopIndices[len(loopIndices)-1-i]
			quad.UVs[i] = uvData[loop]
		}
	} else {
		for i := range quad.UVs {
			quad.UVs[i] = defaultUV
		}
	}

	if material := obj.Mesh.MaterialName(poly.MaterialIndex); material != "" {
		quad.Texture = strings.ToUpper(material)
	} else {
		quad.Texture = blankTexture
	}

	return quad
}

// sortQuad determines the section a quad belongs to. A quad lies on a
// brick side when all four vertices share a coordinate on one axis and
// that coordinate is on the bounding plane of that axis; the first axis
// that matches in X, Y, Z order wins. Everything else is omni.
func sortQuad(quad *blb.Quad, boundsDimensions fixed.Vec, forward blb.ForwardAxis) blb.Section {
	// Half dimensions with Z in plates, the same space the positions use.
	localBounds := boundsDimensions.Halved().ZToPlates()

	direction := blb.SectionOmni

axes:
	for axis := 0; axis < 3; axis++ {
		common := quad.Positions[0][axis]
		for i := 1; i < 4; i++ {
			if !quad.Positions[i][axis].Equal(common) {
				continue axes
			}
		}

		switch {
		case common.Equal(localBounds[axis]):
			switch axis {
			case fixed.X:
				direction = blb.SectionEast
			case fixed.Y:
				direction = blb.SectionNorth
			default:
				direction = blb.SectionTop
			}
		case common.Equal(localBounds[axis].Neg()):
			switch axis {
			case fixed.X:
				direction = blb.SectionWest
			case fixed.Y:
				direction = blb.SectionSouth
			default:
				direction = blb.SectionBottom
			}
		default:
			// Planar but not on a bounding plane.
			continue axes
		}
		break
	}

	// Top, bottom and omni do not rotate with the forward axis.
	if direction <= blb.SectionBottom || direction == blb.SectionOmni || forward == blb.ForwardPosX {
		return direction
	}

	// The raw direction was computed for +X forward. The other axes turn
	// the compass by quarter steps: north, east, south, west wrap around.
	var steps int
	switch forward {
	case blb.ForwardPosY:
		steps = 1
	case blb.ForwardNegX:
		steps = 2
	case blb.ForwardNegY:
		steps = 3
	}

	rotated := (int(direction)-int(blb.SectionNorth)+steps)%4 + int(blb.SectionNorth)
	return blb.Section(rotated)
}

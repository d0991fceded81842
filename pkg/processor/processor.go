// Package processor converts a scene into brick data: it resolves the
// brick bounds, voxelizes the build grid, extracts collision boxes,
// computes coverage and partitions the visible geometry into face
// sections. All coordinate work is done in exact decimal arithmetic.
package processor

import (
	"strings"

	"go.uber.org/zap"

	"github.com/bricktools/goblb/pkg/blb"
	"github.com/bricktools/goblb/pkg/fixed"
	"github.com/bricktools/goblb/pkg/geometry"
	"github.com/bricktools/goblb/pkg/scene"
)

// Definition object name prefixes. Matching is case-insensitive.
const (
	boundsPrefix    = "bounds"
	collisionPrefix = "collision"
)

// SideOptions is the per-side coverage configuration.
type SideOptions struct {
	Calculate    bool
	HideAdjacent bool
}

// Properties holds the user-configured export options.
type Properties struct {
	// UseSelection exports only selected objects, falling back to the
	// whole scene when nothing is selected.
	UseSelection bool

	// ForwardAxis is the horizontal direction treated as the front of
	// the brick.
	ForwardAxis blb.ForwardAxis

	// CalculateCoverage enables coverage computation; when false every
	// side gets the default "never hide" entry.
	CalculateCoverage bool

	// Sides is indexed in blb.Section order (top, bottom, north, east,
	// south, west). Only consulted when CalculateCoverage is set.
	Sides [blb.SideCount]SideOptions
}

// brickBounds is the resolved brick bounding box. It is computed once per
// run and read by every later stage.
type brickBounds struct {
	// name of the bounds definition object, or "" when inferred.
	name        string
	dimensions  fixed.Vec
	worldCenter fixed.Vec
	worldMin    fixed.Vec
	worldMax    fixed.Vec
}

// Processor holds the state of one export run. A Processor is not
// reusable; create a new one per run.
type Processor struct {
	scene  *scene.Scene
	props  Properties
	log    *zap.SugaredLogger
	bounds brickBounds
	data   *blb.BrickData
}

// New creates a processor for one export run. A nil logger disables
// diagnostics.
func New(sc *scene.Scene, props Properties, log *zap.SugaredLogger) *Processor {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Processor{
		scene: sc,
		props: props,
		log:   log,
		data:  &blb.BrickData{},
	}
}

// Process runs the export: definition objects are classified and
// resolved, then the grid, collision, coverage and quad data are
// computed. Individual invalid definitions are logged and skipped; an
// empty object set or a degenerate brick size aborts the run.
func (p *Processor) Process() (*blb.BrickData, error) {
	objects := p.objectSequence()
	if len(objects) == 0 {
		p.log.Error("Nothing to export.")
		return nil, ErrNothingToExport
	}

	meshes, err := p.processDefinitionObjects(objects)
	if err != nil {
		return nil, err
	}

	p.data.Coverage = p.processCoverage()
	p.data.Quads = p.processMeshes(meshes)

	return p.data, nil
}

// objectSequence returns the objects to export in creation order.
func (p *Processor) objectSequence() []scene.Object {
	if p.props.UseSelection {
		p.log.Info("Exporting selection.")
		selected := p.scene.SelectedObjects()
		p.log.Infof("Found %d selected object(s).", len(selected))
		if len(selected) > 0 {
			return selected
		}
	}

	p.log.Info("Exporting scene.")
	p.log.Infof("Found %d object(s).", len(p.scene.Objects))
	return p.scene.Objects
}

// processDefinitionObjects splits the object set into definitions and
// visible meshes, resolves the bounds and runs the grid and collision
// processors. It returns the meshes to be exported as visible geometry.
func (p *Processor) processDefinitionObjects(objects []scene.Object) ([]scene.Object, error) {
	var gridObjects, collisionObjects, meshObjects []scene.Object

	// Vertex extent of all visible meshes, recorded while no explicit
	// bounds definition has been seen. Used for inferred bounds.
	recorded := geometry.NewBoundingBox()
	haveBounds := false

	for i := range objects {
		obj := objects[i]
		lower := strings.ToLower(obj.Name)

		if !obj.IsMesh() {
			switch {
			case strings.HasPrefix(lower, boundsPrefix):
				p.log.Warnf("Object '%s' cannot be used to define bounds, must be a mesh.", obj.Name)
			case gridPrefixIndex(lower) >= 0:
				p.log.Warnf("Object '%s' cannot be used to define brick grid, must be a mesh.", obj.Name)
			case strings.HasPrefix(lower, collisionPrefix):
				p.log.Warnf("Object '%s' cannot be used to define collision, must be a mesh.", obj.Name)
			}
			continue
		}

		switch {
		case strings.HasPrefix(lower, boundsPrefix):
			if haveBounds {
				p.log.Warnf("Multiple bounds definitions found. '%s' definition ignored.", obj.Name)
				continue
			}
			p.processBoundsObject(&obj)
			haveBounds = true
			p.log.Infof("Defined brick size in plates: %d wide %d deep %d tall",
				p.data.BrickSize[0], p.data.BrickSize[1], p.data.BrickSize[2])

		case gridPrefixIndex(lower) >= 0:
			// Grid definitions need the bounds, processed below.
			gridObjects = append(gridObjects, obj)

		case strings.HasPrefix(lower, collisionPrefix):
			// Collision definitions need the bounds, processed below.
			collisionObjects = append(collisionObjects, obj)

		default:
			meshObjects = append(meshObjects, obj)
			if !haveBounds {
				recorded.ExtendBox(obj.WorldBounds())
			}
		}
	}

	if !haveBounds {
		p.calculateBounds(recorded)
		p.log.Infof("Calculated brick size in plates: %d wide %d deep %d tall",
			p.data.BrickSize[0], p.data.BrickSize[1], p.data.BrickSize[2])
	}

	if err := p.checkBrickSize(); err != nil {
		return nil, err
	}

	p.processGridDefinitions(gridObjects)
	p.processCollisionDefinitions(collisionObjects)

	return meshObjects, nil
}

// checkBrickSize verifies the resolved size is positive everywhere and
// warns about sizes the game refuses to load.
func (p *Processor) checkBrickSize() error {
	size := p.data.BrickSize
	for _, value := range size {
		if value <= 0 {
			p.log.Errorf("Brick has invalid size %d %d %d, all axes must be positive.",
				size[0], size[1], size[2])
			return ErrZeroBrickSize
		}
	}

	if size[0] > blb.MaxHorizontalPlates || size[1] > blb.MaxHorizontalPlates {
		p.log.Warnf("Brick is %d x %d plates wide, the game caps bricks at %d x %d.",
			size[0], size[1], blb.MaxHorizontalPlates, blb.MaxHorizontalPlates)
	}
	if size[2] > blb.MaxVerticalPlates {
		p.log.Warnf("Brick is %d plates tall, the game caps bricks at %d.",
			size[2], blb.MaxVerticalPlates)
	}
	return nil
}

// Package scene provides the read-only scene model the exporter consumes:
// objects with world transforms, mesh data, UV layers and materials.
package scene

import (
	"github.com/bricktools/goblb/pkg/geometry"
)

// TypeMesh is the object type discriminator for mesh objects.
const TypeMesh = "MESH"

// Scene is an ordered set of objects. Objects appear oldest-created
// first; the exporter relies on this order when resolving definitions.
type Scene struct {
	Objects []Object
}

// SelectedObjects returns the selected objects in scene order.
func (s *Scene) SelectedObjects() []Object {
	var selected []Object
	for _, obj := range s.Objects {
		if obj.Selected {
			selected = append(selected, obj)
		}
	}
	return selected
}

// MeshCount returns the number of mesh objects in the scene.
func (s *Scene) MeshCount() int {
	count := 0
	for _, obj := range s.Objects {
		if obj.IsMesh() {
			count++
		}
	}
	return count
}

// Object is a single scene object. Non-mesh objects (empties, lights,
// cameras) carry no mesh data.
type Object struct {
	Name      string
	Type      string
	Selected  bool
	Transform geometry.Matrix4
	Mesh      *Mesh
}

// IsMesh reports whether the object carries mesh data.
func (o *Object) IsMesh() bool {
	return o.Type == TypeMesh && o.Mesh != nil
}

// WorldVertex returns the world-space position of the vertex at the given
// index.
func (o *Object) WorldVertex(index int) geometry.Vector3 {
	return o.Transform.TransformPoint(o.Mesh.Vertices[index])
}

// WorldBounds returns the axis-aligned bounding box of the object's
// vertices in world space.
func (o *Object) WorldBounds() geometry.BoundingBox {
	bounds := geometry.NewBoundingBox()
	for i := range o.Mesh.Vertices {
		bounds.Extend(o.WorldVertex(i))
	}
	return bounds
}

// Dimensions returns the world-space extents of the object.
func (o *Object) Dimensions() geometry.Vector3 {
	return o.WorldBounds().Size()
}

// LoopVertex returns the vertex index referenced by the given loop.
func (o *Object) LoopVertex(loop int) int {
	return o.Mesh.Loops[loop]
}

// LoopNormal returns the normalized world-space vertex normal for the
// given loop.
func (o *Object) LoopNormal(loop int) geometry.Vector3 {
	normal := o.Mesh.Normals[o.Mesh.Loops[loop]]
	return o.Transform.TransformDirection(normal).Normalize()
}

// Mesh holds polygon data the way a host DCC tool stores it: a flat loop
// array referencing vertices, with polygons as loop ranges.
type Mesh struct {
	Vertices  []geometry.Vector3
	Normals   []geometry.Vector3 // per vertex
	Loops     []int              // vertex index per loop
	Polygons  []Polygon
	UVLayers  []UVLayer
	Materials []string // material name table, "" for an empty slot
}

// VertexCount returns the number of vertices in the mesh.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// MaterialName returns the material name at the given index, or "" when
// the index is unassigned or out of range.
func (m *Mesh) MaterialName(index int) string {
	if index < 0 || index >= len(m.Materials) {
		return ""
	}
	return m.Materials[index]
}

// Polygon is a face described as a contiguous run of loops.
type Polygon struct {
	LoopStart     int
	LoopTotal     int
	Normal        geometry.Vector3
	Smooth        bool
	MaterialIndex int
}

// LoopIndices returns the loop indices of the polygon in stored order.
func (p Polygon) LoopIndices() []int {
	indices := make([]int, p.LoopTotal)
	for i := range indices {
		indices[i] = p.LoopStart + i
	}
	return indices
}

// UVLayer is one UV channel, indexed by loop.
type UVLayer struct {
	Name string
	Data []geometry.Vector2
}

package processor

import (
	"github.com/bricktools/goblb/pkg/blb"
	"github.com/bricktools/goblb/pkg/geometry"
	"github.com/bricktools/goblb/pkg/scene"
)

// cuboidMesh builds an axis-aligned cuboid centered on the object origin
// with one quad polygon per face. Vertex normals point away from the
// center so smooth shading has something to read.
func cuboidMesh(size geometry.Vector3) *scene.Mesh {
	x := size.X / 2
	y := size.Y / 2
	z := size.Z / 2

	vertices := []geometry.Vector3{
		{X: -x, Y: -y, Z: -z},
		{X: x, Y: -y, Z: -z},
		{X: x, Y: y, Z: -z},
		{X: -x, Y: y, Z: -z},
		{X: -x, Y: -y, Z: z},
		{X: x, Y: -y, Z: z},
		{X: x, Y: y, Z: z},
		{X: -x, Y: y, Z: z},
	}

	normals := make([]geometry.Vector3, len(vertices))
	for i, v := range vertices {
		normals[i] = v.Normalize()
	}

	loops := []int{
		0, 1, 2, 3, // bottom
		4, 5, 6, 7, // top
		3, 2, 6, 7, // north
		0, 1, 5, 4, // south
		1, 2, 6, 5, // east
		0, 3, 7, 4, // west
	}

	faceNormals := []geometry.Vector3{
		{Z: -1}, {Z: 1}, {Y: 1}, {Y: -1}, {X: 1}, {X: -1},
	}

	mesh := &scene.Mesh{
		Vertices: vertices,
		Normals:  normals,
		Loops:    loops,
	}
	for i, n := range faceNormals {
		mesh.Polygons = append(mesh.Polygons, scene.Polygon{
			LoopStart: i * 4,
			LoopTotal: 4,
			Normal:    n,
		})
	}
	return mesh
}

// cuboidObject builds a mesh object at the given world center.
func cuboidObject(name string, center, size geometry.Vector3) scene.Object {
	return scene.Object{
		Name:      name,
		Type:      scene.TypeMesh,
		Transform: geometry.Translate(center.X, center.Y, center.Z),
		Mesh:      cuboidMesh(size),
	}
}

// sceneOf wraps objects in a scene, oldest first.
func sceneOf(objects ...scene.Object) *scene.Scene {
	return &scene.Scene{Objects: objects}
}

// run processes the scene with the given properties and no logging.
func run(sc *scene.Scene, props Properties) (*blb.BrickData, error) {
	return New(sc, props, nil).Process()
}

// gridLayers flattens each height layer of the grid into strings for
// compact comparisons, one string per layer spanning all depth slices.
func gridLayers(grid [][][]byte) []string {
	if len(grid) == 0 {
		return nil
	}
	layers := make([]string, len(grid[0]))
	for h := range grid[0] {
		layer := ""
		for d := range grid {
			layer += string(grid[d][h])
		}
		layers[h] = layer
	}
	return layers
}

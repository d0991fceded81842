package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/bricktools/goblb/pkg/geometry"
)

var compiledSchema = jsonschema.MustCompileString("scene.schema.json", sceneSchema)

// Load reads a scene file and returns the decoded Scene. A path ending in
// .gz is transparently decompressed. The file is schema-validated before
// decoding.
func Load(path string) (*Scene, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	var reader io.Reader = file
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read gzip scene file: %w", err)
		}
		defer zr.Close()
		reader = zr
	}

	return Decode(reader)
}

// Validate checks a scene file against the interchange schema without
// building the scene model.
func Validate(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	var reader io.Reader = file
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(file)
		if err != nil {
			return fmt.Errorf("failed to read gzip scene file: %w", err)
		}
		defer zr.Close()
		reader = zr
	}

	raw, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("failed to read scene file: %w", err)
	}
	return validateBytes(raw)
}

// Decode reads a JSON scene document from the reader.
func Decode(r io.Reader) (*Scene, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene data: %w", err)
	}

	if err := validateBytes(raw); err != nil {
		return nil, err
	}

	var doc sceneFile
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode scene data: %w", err)
	}

	return doc.toScene()
}

func validateBytes(raw []byte) error {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("scene file is not valid JSON: %w", err)
	}
	if err := compiledSchema.Validate(doc); err != nil {
		return fmt.Errorf("scene file failed validation: %w", err)
	}
	return nil
}

// sceneFile mirrors the interchange JSON layout.
type sceneFile struct {
	Objects []objectFile `json:"objects"`
}

type objectFile struct {
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Selected  bool      `json:"selected"`
	Transform []float64 `json:"transform"`
	Mesh      *meshFile `json:"mesh"`
}

type meshFile struct {
	Vertices  [][3]float64  `json:"vertices"`
	Normals   [][3]float64  `json:"normals"`
	Loops     []int         `json:"loops"`
	Polygons  []polygonFile `json:"polygons"`
	UVLayers  []uvLayerFile `json:"uv_layers"`
	Materials []*string     `json:"materials"`
}

type polygonFile struct {
	LoopStart     int        `json:"loop_start"`
	LoopTotal     int        `json:"loop_total"`
	Normal        [3]float64 `json:"normal"`
	Smooth        bool       `json:"smooth"`
	MaterialIndex int        `json:"material_index"`
}

type uvLayerFile struct {
	Name string       `json:"name"`
	Data [][2]float64 `json:"data"`
}

func (f *sceneFile) toScene() (*Scene, error) {
	sc := &Scene{Objects: make([]Object, 0, len(f.Objects))}
	for i := range f.Objects {
		obj, err := f.Objects[i].toObject()
		if err != nil {
			return nil, err
		}
		sc.Objects = append(sc.Objects, obj)
	}
	return sc, nil
}

func (f *objectFile) toObject() (Object, error) {
	obj := Object{
		Name:      f.Name,
		Type:      strings.ToUpper(f.Type),
		Selected:  f.Selected,
		Transform: geometry.Identity(),
	}

	if f.Transform != nil {
		copy(obj.Transform[:], f.Transform)
	}

	if f.Mesh != nil {
		mesh, err := f.Mesh.toMesh(f.Name)
		if err != nil {
			return Object{}, err
		}
		obj.Mesh = mesh
	}

	return obj, nil
}

func (f *meshFile) toMesh(objName string) (*Mesh, error) {
	mesh := &Mesh{
		Vertices: toVectors(f.Vertices),
		Normals:  toVectors(f.Normals),
		Loops:    f.Loops,
	}

	// Meshes without explicit normals still need one slot per vertex so
	// smooth shading cannot index out of range.
	if len(mesh.Normals) == 0 {
		mesh.Normals = make([]geometry.Vector3, len(mesh.Vertices))
	} else if len(mesh.Normals) != len(mesh.Vertices) {
		return nil, fmt.Errorf("scene object %q: %d normals for %d vertices",
			objName, len(mesh.Normals), len(mesh.Vertices))
	}

	for _, loop := range f.Loops {
		if loop >= len(mesh.Vertices) {
			return nil, fmt.Errorf("scene object %q: loop references vertex %d of %d",
				objName, loop, len(mesh.Vertices))
		}
	}

	for _, poly := range f.Polygons {
		if poly.LoopStart+poly.LoopTotal > len(f.Loops) {
			return nil, fmt.Errorf("scene object %q: polygon loops [%d, %d) exceed %d loops",
				objName, poly.LoopStart, poly.LoopStart+poly.LoopTotal, len(f.Loops))
		}
		mesh.Polygons = append(mesh.Polygons, Polygon{
			LoopStart:     poly.LoopStart,
			LoopTotal:     poly.LoopTotal,
			Normal:        geometry.NewVector3(poly.Normal[0], poly.Normal[1], poly.Normal[2]),
			Smooth:        poly.Smooth,
			MaterialIndex: poly.MaterialIndex,
		})
	}

	for _, layer := range f.UVLayers {
		data := make([]geometry.Vector2, len(layer.Data))
		for i, uv := range layer.Data {
			data[i] = geometry.NewVector2(uv[0], uv[1])
		}
		if len(data) < len(f.Loops) {
			return nil, fmt.Errorf("scene object %q: UV layer %q has %d entries for %d loops",
				objName, layer.Name, len(data), len(f.Loops))
		}
		mesh.UVLayers = append(mesh.UVLayers, UVLayer{Name: layer.Name, Data: data})
	}

	for _, mat := range f.Materials {
		if mat == nil {
			mesh.Materials = append(mesh.Materials, "")
		} else {
			mesh.Materials = append(mesh.Materials, *mat)
		}
	}

	return mesh, nil
}

func toVectors(values [][3]float64) []geometry.Vector3 {
	if values == nil {
		return nil
	}
	vectors := make([]geometry.Vector3, len(values))
	for i, v := range values {
		vectors[i] = geometry.NewVector3(v[0], v[1], v[2])
	}
	return vectors
}

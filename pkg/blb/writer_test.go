package blb

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"

	"github.com/bricktools/goblb/pkg/fixed"
	"github.com/bricktools/goblb/pkg/geometry"
)

func singlePlateBrick() *BrickData {
	data := &BrickData{
		BrickSize: [3]int{1, 1, 1},
		BrickGrid: NewGrid(1, 1, 1),
	}
	data.BrickGrid[0][0][0] = GridBoth

	for i := range data.Coverage {
		data.Coverage[i] = CoverageEntry{Area: DefaultCoverage}
	}

	quad := Quad{Texture: "SIDE"}
	quad.Positions = [4]fixed.Vec{
		fixed.VecFromFloats(0.5, -0.5, 0.5),
		fixed.VecFromFloats(0.5, 0.5, 0.5),
		fixed.VecFromFloats(-0.5, 0.5, 0.5),
		fixed.VecFromFloats(-0.5, -0.5, 0.5),
	}
	for i := range quad.UVs {
		quad.UVs[i] = geometry.NewVector2(0.5, 0.5)
		quad.Normals[i] = geometry.NewVector3(0, 0, 1)
	}
	data.Quads[SectionTop] = []Quad{quad}

	return data
}

const singlePlateOutput = `1 1 1
SPECIAL
b
0
COVERAGE:
0 : 99999
0 : 99999
0 : 99999
0 : 99999
0 : 99999
0 : 99999
---------------- TOP QUADS ----------------
1

TEX:SIDE

POSITION:
0.5 -0.5 0.5
0.5 0.5 0.5
-0.5 0.5 0.5
-0.5 -0.5 0.5

UV COORDS:
0.5 0.5
0.5 0.5
0.5 0.5
0.5 0.5

NORMALS:
0 0 1
0 0 1
0 0 1
0 0 1
---------------- BOTTOM QUADS ----------------
0
---------------- NORTH QUADS ----------------
0
---------------- EAST QUADS ----------------
0
---------------- SOUTH QUADS ----------------
0
---------------- WEST QUADS ----------------
0
---------------- OMNI QUADS ----------------
0
`

func TestWrite(t *testing.T) {
	var out strings.Builder
	if err := Write(&out, singlePlateBrick()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.String() != singlePlateOutput {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestWriteGridSlicesSeparated(t *testing.T) {
	data := &BrickData{
		BrickSize: [3]int{1, 2, 1},
		BrickGrid: NewGrid(1, 2, 1),
	}
	data.BrickGrid[0][0][0] = GridBoth
	data.BrickGrid[1][0][0] = GridInside

	var out strings.Builder
	if err := Write(&out, data); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out.String(), "b\n\nx\n") {
		t.Errorf("expected a blank line between depth slices:\n%s", out.String())
	}
}

func TestWriteCollision(t *testing.T) {
	data := &BrickData{
		BrickSize: [3]int{1, 1, 1},
		BrickGrid: NewGrid(1, 1, 1),
		Collision: []CollisionBox{
			{
				Center: fixed.VecFromFloats(0.5, 0.5, 0.5),
				Size:   fixed.VecFromFloats(1, 1, 1),
			},
		},
	}

	var out strings.Builder
	if err := Write(&out, data); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out.String(), "1\n\n0.5 0.5 0.5\n1 1 1\n") {
		t.Errorf("expected collision block:\n%s", out.String())
	}
}

func TestWriteFileGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brick.blb.gz")

	if err := WriteFile(path, singlePlateBrick()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer file.Close()

	zr, err := gzip.NewReader(file)
	if err != nil {
		t.Fatalf("gzip: %v", err)
	}
	defer zr.Close()

	raw, err := io.ReadAll(zr)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(raw) != singlePlateOutput {
		t.Errorf("unexpected decompressed output:\n%s", raw)
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{0, "0"},
		{1, "1"},
		{0.5, "0.5"},
		{-0.25, "-0.25"},
		{1.0 / 3.0, "0.3333333333333333"},
	}
	for _, test := range tests {
		if got := formatFloat(test.value); got != test.expected {
			t.Errorf("%v: expected %q, got %q", test.value, test.expected, got)
		}
	}
}

package blb

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/bricktools/goblb/pkg/fixed"
)

const (
	brickTypeSpecial = "SPECIAL"

	headerCoverage = "COVERAGE:"
	headerPosition = "POSITION:"
	headerUV       = "UV COORDS:"
	headerColors   = "COLORS:"
	headerNormals  = "NORMALS:"
	prefixTexture  = "TEX:"

	sectionSeparator = "---------------- %s QUADS ----------------"
)

// WriteFile serializes the brick to the given path. A path ending in .gz
// is gzip compressed.
func WriteFile(path string, data *BrickData) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create BLB file: %w", err)
	}
	defer file.Close()

	var out io.Writer = file
	if strings.HasSuffix(path, ".gz") {
		zw := gzip.NewWriter(file)
		defer zw.Close()
		out = zw
	}

	return Write(out, data)
}

// Write serializes the brick in BLB text form.
func Write(w io.Writer, data *BrickData) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%d %d %d\n", data.BrickSize[0], data.BrickSize[1], data.BrickSize[2])
	fmt.Fprintln(bw, brickTypeSpecial)

	writeGrid(bw, data.BrickGrid)
	writeCollision(bw, data.Collision)
	writeCoverage(bw, data.Coverage)

	for section, quads := range data.Quads {
		writeSection(bw, Section(section), quads)
	}

	return bw.Flush()
}

// writeGrid writes one text block per depth slice, top row first.
func writeGrid(w *bufio.Writer, grid [][][]byte) {
	for d, slice := range grid {
		if d > 0 {
			fmt.Fprintln(w)
		}
		for _, row := range slice {
			w.Write(row)
			fmt.Fprintln(w)
		}
	}
}

func writeCollision(w *bufio.Writer, boxes []CollisionBox) {
	fmt.Fprintf(w, "%d\n", len(boxes))
	for _, box := range boxes {
		fmt.Fprintln(w)
		writeVec(w, box.Center)
		writeVec(w, box.Size)
	}
}

func writeCoverage(w *bufio.Writer, coverage [SideCount]CoverageEntry) {
	fmt.Fprintln(w, headerCoverage)
	for _, entry := range coverage {
		hide := 0
		if entry.HideAdjacent {
			hide = 1
		}
		fmt.Fprintf(w, "%d : %d\n", hide, entry.Area)
	}
}

func writeSection(w *bufio.Writer, section Section, quads []Quad) {
	fmt.Fprintf(w, sectionSeparator+"\n", section)
	fmt.Fprintf(w, "%d\n", len(quads))

	for i := range quads {
		writeQuad(w, &quads[i])
	}
}

func writeQuad(w *bufio.Writer, quad *Quad) {
	fmt.Fprintf(w, "\n%s%s\n", prefixTexture, quad.Texture)

	fmt.Fprintf(w, "\n%s\n", headerPosition)
	for _, pos := range quad.Positions {
		writeVec(w, pos)
	}

	fmt.Fprintf(w, "\n%s\n", headerUV)
	for _, uv := range quad.UVs {
		fmt.Fprintf(w, "%s %s\n", formatFloat(uv.U), formatFloat(uv.V))
	}

	if quad.Colors != nil {
		fmt.Fprintf(w, "\n%s\n", headerColors)
		for _, c := range quad.Colors {
			fmt.Fprintf(w, "%s %s %s %s\n",
				formatFloat(c[0]), formatFloat(c[1]), formatFloat(c[2]), formatFloat(c[3]))
		}
	}

	fmt.Fprintf(w, "\n%s\n", headerNormals)
	for _, n := range quad.Normals {
		fmt.Fprintf(w, "%s %s %s\n", formatFloat(n.X), formatFloat(n.Y), formatFloat(n.Z))
	}
}

func writeVec(w *bufio.Writer, v fixed.Vec) {
	fmt.Fprintf(w, "%s %s %s\n", fixed.Format(v[0]), fixed.Format(v[1]), fixed.Format(v[2]))
}

// maxDecimalsToWrite caps the written precision of float-valued fields.
const maxDecimalsToWrite = 16

func formatFloat(f float64) string {
	s := fmt.Sprintf("%.*f", maxDecimalsToWrite, f)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

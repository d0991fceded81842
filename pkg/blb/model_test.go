package blb

import "testing"

func TestSectionString(t *testing.T) {
	tests := []struct {
		section  Section
		expected string
	}{
		{SectionTop, "TOP"},
		{SectionBottom, "BOTTOM"},
		{SectionNorth, "NORTH"},
		{SectionEast, "EAST"},
		{SectionSouth, "SOUTH"},
		{SectionWest, "WEST"},
		{SectionOmni, "OMNI"},
	}
	for _, test := range tests {
		if got := test.section.String(); got != test.expected {
			t.Errorf("expected %q, got %q", test.expected, got)
		}
	}
}

func TestParseForwardAxis(t *testing.T) {
	tests := []struct {
		input    string
		expected ForwardAxis
	}{
		{"+x", ForwardPosX},
		{"x", ForwardPosX},
		{"POSITIVE_X", ForwardPosX},
		{"-x", ForwardNegX},
		{"+y", ForwardPosY},
		{" -y ", ForwardNegY},
	}
	for _, test := range tests {
		axis, err := ParseForwardAxis(test.input)
		if err != nil {
			t.Errorf("%q: unexpected error: %v", test.input, err)
			continue
		}
		if axis != test.expected {
			t.Errorf("%q: expected %s, got %s", test.input, test.expected, axis)
		}
	}
}

func TestParseForwardAxisInvalid(t *testing.T) {
	for _, input := range []string{"", "+z", "up", "north"} {
		if _, err := ParseForwardAxis(input); err == nil {
			t.Errorf("%q: expected an error", input)
		}
	}
}

func TestForwardAxisSwapped(t *testing.T) {
	if ForwardPosX.Swapped() || ForwardNegX.Swapped() {
		t.Error("expected X axes to keep width and depth")
	}
	if !ForwardPosY.Swapped() || !ForwardNegY.Swapped() {
		t.Error("expected Y axes to swap width and depth")
	}
}

func TestNewGrid(t *testing.T) {
	grid := NewGrid(2, 3, 4)

	if len(grid) != 3 {
		t.Fatalf("expected depth 3, got %d", len(grid))
	}
	for d := range grid {
		if len(grid[d]) != 4 {
			t.Fatalf("expected height 4, got %d", len(grid[d]))
		}
		for h := range grid[d] {
			if len(grid[d][h]) != 2 {
				t.Fatalf("expected width 2, got %d", len(grid[d][h]))
			}
			for w, symbol := range grid[d][h] {
				if symbol != GridOutside {
					t.Errorf("cell %d %d %d: expected %q, got %q", d, h, w, GridOutside, symbol)
				}
			}
		}
	}
}

func TestQuadCount(t *testing.T) {
	var data BrickData
	data.Quads[SectionTop] = make([]Quad, 2)
	data.Quads[SectionOmni] = make([]Quad, 3)

	if count := data.QuadCount(); count != 5 {
		t.Errorf("expected 5 quads, got %d", count)
	}
}

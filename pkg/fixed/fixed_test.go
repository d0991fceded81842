package fixed

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestQuantizeHalfUp(t *testing.T) {
	tests := []struct {
		value, step, want string
	}{
		{"0.25", "0.5", "0.5"},
		{"0.24", "0.5", "0"},
		{"0.75", "0.5", "1"},
		{"1.2", "0.5", "1"},
		{"1.25", "0.5", "1.5"},
		{"0.2", "0.4", "0.4"},
		{"0.6", "0.4", "0.8"},
		{"3.1415926535", "0.000001", "3.141593"},
	}

	for _, tt := range tests {
		got, err := Quantize(dec(tt.value), dec(tt.step))
		if err != nil {
			t.Fatalf("Quantize(%s, %s): %v", tt.value, tt.step, err)
		}
		if !got.Equal(dec(tt.want)) {
			t.Errorf("Quantize(%s, %s) = %s, want %s", tt.value, tt.step, got, tt.want)
		}
	}
}

func TestQuantizeNegativeTiesAwayFromZero(t *testing.T) {
	got, err := Quantize(dec("-0.25"), dec("0.5"))
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(dec("-0.5")) {
		t.Errorf("Quantize(-0.25, 0.5) = %s, want -0.5", got)
	}

	got, err = Quantize(dec("-0.2"), dec("0.5"))
	if err != nil {
		t.Fatal(err)
	}
	if !got.IsZero() {
		t.Errorf("Quantize(-0.2, 0.5) = %s, want 0", got)
	}
}

func TestQuantizeIdempotent(t *testing.T) {
	values := []string{"0.25", "-0.25", "1.333333", "7", "-3.7"}
	steps := []string{"0.5", "1.0", "0.000001", "0.4"}

	for _, v := range values {
		for _, s := range steps {
			once, err := Quantize(dec(v), dec(s))
			if err != nil {
				t.Fatal(err)
			}
			twice, err := Quantize(once, dec(s))
			if err != nil {
				t.Fatal(err)
			}
			if !once.Equal(twice) {
				t.Errorf("Quantize(%s, %s) not idempotent: %s then %s", v, s, once, twice)
			}
		}
	}
}

func TestQuantizeInvalidStep(t *testing.T) {
	for _, step := range []string{"0", "-0.5"} {
		if _, err := Quantize(dec("1"), dec(step)); err != ErrInvalidStep {
			t.Errorf("Quantize with step %s: expected ErrInvalidStep, got %v", step, err)
		}
	}
}

func TestFromFloatUsesShortestRepresentation(t *testing.T) {
	// 0.1 has no exact binary representation; conversion must go through
	// the decimal string form, not the float expansion.
	if got := FromFloat(0.1); !got.Equal(dec("0.1")) {
		t.Errorf("FromFloat(0.1) = %s", got)
	}
}

func TestZToPlates(t *testing.T) {
	v := VecFromFloats(1, 2, 1.2)
	got := v.ZToPlates()

	if !got[X].Equal(dec("1")) || !got[Y].Equal(dec("2")) {
		t.Errorf("ZToPlates changed X or Y: %v", got)
	}
	if !got[Z].Equal(dec("3")) {
		t.Errorf("ZToPlates Z = %s, want 3", got[Z])
	}
}

func TestRoundToPlateGrid(t *testing.T) {
	// Brick 2 x 3 x 1.2 scene units: even X, odd Y, 3 plates tall (odd).
	dims := Vec{dec("2"), dec("3"), dec("1.2")}

	got := RoundToPlateGrid(Vec{dec("0.6"), dec("0.6"), dec("0.3")}, dims)

	if !got[X].Equal(dec("1")) {
		t.Errorf("even X axis rounds to whole units: got %s", got[X])
	}
	if !got[Y].Equal(dec("0.5")) {
		t.Errorf("odd Y axis rounds to half units: got %s", got[Y])
	}
	// Odd plate count: Z rounds to half plate heights (0.2 steps).
	if !got[Z].Equal(dec("0.4")) {
		t.Errorf("Z = %s, want 0.4", got[Z])
	}

	// Brick 4 plates tall (even): Z rounds to whole plate heights.
	dims[Z] = dec("1.6")
	got = RoundToPlateGrid(Vec{dec("0"), dec("0"), dec("0.3")}, dims)
	if !got[Z].Equal(dec("0.4")) {
		t.Errorf("even Z = %s, want 0.4", got[Z])
	}
	got = RoundToPlateGrid(Vec{dec("0"), dec("0"), dec("0.19")}, dims)
	if !got[Z].IsZero() {
		t.Errorf("even Z = %s, want 0", got[Z])
	}
}

func TestWithinBounds(t *testing.T) {
	dims := Vec{dec("2"), dec("4"), dec("2")}

	inside := Vec{dec("1"), dec("-2"), dec("0.5")}
	if !inside.WithinBounds(dims) {
		t.Errorf("%v should be within %v (boundary inclusive)", inside, dims)
	}

	outside := Vec{dec("1.000001"), dec("0"), dec("0")}
	if outside.WithinBounds(dims) {
		t.Errorf("%v should be outside %v", outside, dims)
	}
}

func TestAllIntegral(t *testing.T) {
	if !(Vec{dec("1"), dec("-2"), dec("3.000")}).AllIntegral() {
		t.Error("integral vector reported as non-integral")
	}
	if (Vec{dec("1"), dec("2"), dec("3.5")}).AllIntegral() {
		t.Error("non-integral vector reported as integral")
	}
}

func TestCenter(t *testing.T) {
	got := Center(Vec{dec("-1"), dec("-1.5"), dec("-0.8")}, Vec{dec("2"), dec("3"), dec("1.6")})
	want := Vec{dec("0"), dec("0"), dec("0")}
	for i := range got {
		if !got[i].Equal(want[i]) {
			t.Errorf("Center[%d] = %s, want 0", i, got[i])
		}
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"2.000000", "2"},
		{"0.500000", "0.5"},
		{"-1.250000", "-1.25"},
		{"3", "3"},
		{"0.000000", "0"},
	}
	for _, tt := range tests {
		if got := Format(dec(tt.in)); got != tt.want {
			t.Errorf("Format(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

package svograde

import "testing"

func TestApplyWhiteBalanceNeutralAtAnchor(t *testing.T) {
	in := flatFrame(2, 2, 128, 128, 128)
	out := ApplyWhiteBalance(in, 6600)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			b, g, r := out.BGRAt(x, y)
			if b != 128 || g != 128 || r != 128 {
				t.Fatalf("6600K shifted gray: (%d,%d,%d)", b, g, r)
			}
		}
	}
}

func TestApplyWhiteBalanceDefaultTemperature(t *testing.T) {
	// At the 5500K default the curve is on the warm side of its anchor:
	// mid-gray picks up red and loses blue by a known amount.
	in := flatFrame(2, 2, 128, 128, 128)
	out := ApplyWhiteBalance(in, 5500)
	b, g, r := out.BGRAt(0, 0)
	if b != 120 || g != 128 || r != 137 {
		t.Fatalf("5500K on gray 128 = (%d,%d,%d), want (120,128,137)", b, g, r)
	}
}

func TestApplyWhiteBalanceGreenPivot(t *testing.T) {
	in := flatFrame(1, 1, 33, 77, 214)
	for _, kelvin := range []int{2000, 3500, 5500, 6600, 8000} {
		out := ApplyWhiteBalance(in, kelvin)
		if _, g, _ := out.BGRAt(0, 0); g != 77 {
			t.Fatalf("green channel changed at %dK: %d", kelvin, g)
		}
	}
}

func TestApplyWhiteBalanceWarmCoolOrdering(t *testing.T) {
	in := flatFrame(1, 1, 128, 128, 128)
	prevB, _, _ := ApplyWhiteBalance(in, 2000).BGRAt(0, 0)
	for kelvin := 2200; kelvin <= 8000; kelvin += 200 {
		b, _, _ := ApplyWhiteBalance(in, kelvin).BGRAt(0, 0)
		if b < prevB {
			t.Fatalf("blue decreased from %dK to %dK: %d -> %d", kelvin-200, kelvin, prevB, b)
		}
		prevB = b
	}

	// The green-normalized red scale is only monotonic up to the curve's
	// anchor; above it the green clamp introduces a small kink, so the
	// warm-side ordering is asserted on the raw gains in the kelvin tests
	// and on pixels only below the anchor here.
	_, _, prevR := ApplyWhiteBalance(in, 2000).BGRAt(0, 0)
	for kelvin := 2200; kelvin <= 6600; kelvin += 200 {
		_, _, r := ApplyWhiteBalance(in, kelvin).BGRAt(0, 0)
		if r > prevR {
			t.Fatalf("red increased from %dK to %dK: %d -> %d", kelvin-200, kelvin, prevR, r)
		}
		prevR = r
	}
}

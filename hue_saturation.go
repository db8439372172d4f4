package svograde

import "math"

// ApplyHueSaturation rotates hue and offsets saturation in HSV space, using
// the 180-step hue wheel common to 8-bit pixel pipelines (one hue unit is
// two degrees). The shift is computed as round(hueUnits*2) degrees and then
// applied as hueShiftDeg/2 wheel steps with truncating integer division;
// for odd shift values this drops the half step, which is the historical
// behavior being reproduced. Saturation is offset by satUnits and clamped
// to [0, 255]; value is untouched.
func ApplyHueSaturation(f Frame, hueUnits, satUnits int) Frame {
	hueShiftDeg := hueUnits * 2

	out := Frame{W: f.W, H: f.H, Pix: make([]uint8, len(f.Pix))}
	for i := 0; i < len(f.Pix); i += Channels {
		h, s, v := bgrToHSV(f.Pix[i], f.Pix[i+1], f.Pix[i+2])
		h = (h + hueShiftDeg/2) % 180
		if h < 0 {
			h += 180
		}
		s = clampI(s+satUnits, 0, 255)
		b, g, r := hsvToBGR(h, s, v)
		out.Pix[i], out.Pix[i+1], out.Pix[i+2] = b, g, r
	}
	return out
}

// bgrToHSV converts one 8-bit BGR pixel to HSV with hue in [0, 180) and
// saturation/value in [0, 255].
func bgrToHSV(b, g, r uint8) (h, s, v int) {
	bf, gf, rf := float64(b), float64(g), float64(r)
	maxC := math.Max(bf, math.Max(gf, rf))
	minC := math.Min(bf, math.Min(gf, rf))
	diff := maxC - minC

	v = int(maxC)
	if maxC > 0 {
		s = int(math.Round(diff * 255.0 / maxC))
	}
	if diff == 0 {
		return 0, s, v
	}

	var deg float64
	switch maxC {
	case rf:
		deg = 60 * (gf - bf) / diff
	case gf:
		deg = 120 + 60*(bf-rf)/diff
	default:
		deg = 240 + 60*(rf-gf)/diff
	}
	if deg < 0 {
		deg += 360
	}
	h = int(math.Round(deg/2)) % 180
	return h, s, v
}

// hsvToBGR converts hue in [0, 180), saturation and value in [0, 255] back
// to an 8-bit BGR pixel.
func hsvToBGR(h, s, v int) (b, g, r uint8) {
	if s == 0 {
		u := uint8(clampI(v, 0, 255))
		return u, u, u
	}

	vf := float64(v)
	sf := float64(s) / 255.0
	sector := float64(h) / 30.0 // h*2 degrees / 60 per sector
	i := int(sector) % 6
	frac := sector - math.Floor(sector)

	p := vf * (1 - sf)
	q := vf * (1 - sf*frac)
	t := vf * (1 - sf*(1-frac))

	var rf, gf, bf float64
	switch i {
	case 0:
		rf, gf, bf = vf, t, p
	case 1:
		rf, gf, bf = q, vf, p
	case 2:
		rf, gf, bf = p, vf, t
	case 3:
		rf, gf, bf = p, q, vf
	case 4:
		rf, gf, bf = t, p, vf
	default:
		rf, gf, bf = vf, p, q
	}
	return roundU8(bf), roundU8(gf), roundU8(rf)
}

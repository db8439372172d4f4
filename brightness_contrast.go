package svograde

// ApplyBrightnessContrast scales and shifts every channel of every pixel:
// out = clamp(round(alpha*in + beta)) with alpha = 1 + 0.02*max(0, contrast)
// and beta = brightness. Contrast units of 0..100 map to a gain of 1..3.
// The input frame is left untouched.
func ApplyBrightnessContrast(f Frame, brightness, contrastUnits int) Frame {
	alpha := 1.0 + 0.02*float64(max(0, contrastUnits))
	beta := float64(brightness)

	out := Frame{W: f.W, H: f.H, Pix: make([]uint8, len(f.Pix))}
	for i, v := range f.Pix {
		out.Pix[i] = roundU8(alpha*float64(v) + beta)
	}
	return out
}

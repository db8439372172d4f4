package svograde

import "math"

// sharpenSigma is the Gaussian sigma used for the unsharp-mask blur.
const sharpenSigma = 1.2

// ApplySharpness applies an unsharp mask: out = clamp(round((1+amount)*in -
// amount*blurred)) with amount = 0.05*max(0, sharpUnits). Units of 0..60
// map to an amount of 0..3. When the amount vanishes the input frame is
// returned unchanged.
func ApplySharpness(f Frame, sharpUnits int) Frame {
	amount := 0.05 * float64(max(0, sharpUnits))
	if amount <= 1e-6 {
		return f
	}

	blurred := gaussianBlur(f, sharpenSigma)
	out := Frame{W: f.W, H: f.H, Pix: make([]uint8, len(f.Pix))}
	for i := range f.Pix {
		out.Pix[i] = roundU8((1+amount)*float64(f.Pix[i]) - amount*float64(blurred.Pix[i]))
	}
	return out
}

// gaussianKernel returns one-dimensional Gaussian weights normalized to sum
// to one. The kernel size is derived from sigma the way 8-bit pixel
// pipelines conventionally do it: round(sigma*3*2 + 1) forced odd.
func gaussianKernel(sigma float64) []float64 {
	ksize := int(math.Round(sigma*3*2+1)) | 1
	radius := ksize / 2
	k := make([]float64, ksize)
	sum := 0.0
	for i := range k {
		d := float64(i - radius)
		k[i] = math.Exp(-d * d / (2 * sigma * sigma))
		sum += k[i]
	}
	for i := range k {
		k[i] /= sum
	}
	return k
}

// reflect101 maps an out-of-range coordinate into [0, n) by mirroring about
// the edge pixels (the edge itself is not repeated).
func reflect101(p, n int) int {
	if n == 1 {
		return 0
	}
	for p < 0 || p >= n {
		if p < 0 {
			p = -p
		}
		if p >= n {
			p = 2*n - 2 - p
		}
	}
	return p
}

// gaussianBlur convolves the frame with a separable Gaussian kernel,
// mirroring at the borders, and rounds the result back to 8 bits.
func gaussianBlur(f Frame, sigma float64) Frame {
	k := gaussianKernel(sigma)
	radius := len(k) / 2

	// Horizontal pass into a float buffer, then vertical pass.
	tmp := make([]float64, len(f.Pix))
	for y := 0; y < f.H; y++ {
		row := y * f.W * Channels
		for x := 0; x < f.W; x++ {
			for c := 0; c < Channels; c++ {
				acc := 0.0
				for t := -radius; t <= radius; t++ {
					sx := reflect101(x+t, f.W)
					acc += k[t+radius] * float64(f.Pix[row+sx*Channels+c])
				}
				tmp[row+x*Channels+c] = acc
			}
		}
	}

	out := Frame{W: f.W, H: f.H, Pix: make([]uint8, len(f.Pix))}
	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			for c := 0; c < Channels; c++ {
				acc := 0.0
				for t := -radius; t <= radius; t++ {
					sy := reflect101(y+t, f.H)
					acc += k[t+radius] * tmp[(sy*f.W+x)*Channels+c]
				}
				out.Pix[(y*f.W+x)*Channels+c] = roundU8(acc)
			}
		}
	}
	return out
}

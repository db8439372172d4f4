package svograde

// ApplyWhiteBalance multiplies each pixel by the per-channel gains for the
// given color temperature, normalized so the green channel is the pivot:
// a neutral image stays neutral at the formula's reference temperature.
// Raising kelvin shifts the result toward blue, lowering it toward red.
func ApplyWhiteBalance(f Frame, kelvin int) Frame {
	gain := KelvinToGain(float64(kelvin))
	pivot := gain.G
	if pivot < 1e-6 {
		pivot = 1e-6
	}
	scaleR := gain.R / pivot
	scaleG := gain.G / pivot
	scaleB := gain.B / pivot

	out := Frame{W: f.W, H: f.H, Pix: make([]uint8, len(f.Pix))}
	for i := 0; i < len(f.Pix); i += Channels {
		out.Pix[i] = roundU8(scaleB * float64(f.Pix[i]))
		out.Pix[i+1] = roundU8(scaleG * float64(f.Pix[i+1]))
		out.Pix[i+2] = roundU8(scaleR * float64(f.Pix[i+2]))
	}
	return out
}

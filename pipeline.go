package svograde

import "math"

// Render runs the full grading chain over one frame with a parameter
// snapshot and returns the transformed frame. The stage order is fixed:
// brightness/contrast, white balance, hue/saturation, sharpness. Exposure
// and gain are folded into the brightness term as round(EXPOSURE + 0.6*GAIN)
// extra brightness, a deliberate simplification of the hardware controls.
//
// Render holds no state; repeated calls with different snapshots have no
// residual effect on each other. The frame shape is validated before any
// stage runs.
func Render(f Frame, p Snapshot) (Frame, error) {
	if err := f.Validate(); err != nil {
		return Frame{}, err
	}

	extra := int(math.Round(float64(p.Exposure) + 0.6*float64(p.Gain)))
	out := ApplyBrightnessContrast(f, p.Brightness+extra, p.Contrast)
	out = ApplyWhiteBalance(out, p.WhiteBalanceTemperature)
	out = ApplyHueSaturation(out, p.Hue, p.Saturation)
	out = ApplySharpness(out, p.Sharpness)
	return out, nil
}

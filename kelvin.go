package svograde

import "math"

// Gain is a normalized RGB gain triple, each channel in [0, 1].
type Gain struct {
	R, G, B float64
}

// KelvinToGain maps a color temperature to a normalized RGB gain triple
// approximating a black-body illuminant. The input is clamped to
// [1000, 12000] kelvin. The curve is anchored so the gains meet at 1.0
// around 6600K; lower temperatures bias red, higher temperatures bias blue.
func KelvinToGain(kelvin float64) Gain {
	k := clampF(kelvin, 1000, 12000) / 100.0

	var r, g, b float64
	if k <= 66 {
		r = 255.0
	} else {
		r = clampF(329.698727446*math.Pow(k-60.0, -0.1332047592), 0, 255)
	}
	if k <= 66 {
		g = 99.4708025861*math.Log(k) - 161.1195681661
	} else {
		g = 288.1221695283 * math.Pow(k-60.0, -0.0755148492)
	}
	g = clampF(g, 0, 255)
	switch {
	case k >= 66:
		b = 255.0
	case k <= 19:
		b = 0.0
	default:
		b = clampF(138.5177312231*math.Log(k-10.0)-305.0447927307, 0, 255)
	}

	return Gain{R: r / 255.0, G: g / 255.0, B: b / 255.0}
}

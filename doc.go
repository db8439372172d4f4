// Package svograde provides a pure-Go software color-grading pipeline that
// emulates camera-ISP controls (brightness, contrast, hue, saturation,
// sharpness, white balance) on frames sourced from a recorded session.
//
// It reproduces a specific, simplified approximation chain used when
// hardware-level adjustment is unavailable; it is not a color-managed or
// photometrically accurate ISP.
package svograde

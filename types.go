package svograde

import (
	"errors"
	"fmt"
)

// Channels is the fixed number of interleaved channels in a Frame.
const Channels = 3

// ErrInvalidFrame reports a frame with zero width/height or a pixel buffer
// that does not match the declared dimensions.
var ErrInvalidFrame = errors.New("invalid frame")

// ErrUnknownSetting reports a setting name outside the fixed eight.
var ErrUnknownSetting = errors.New("unknown setting")

// Frame is a rectangular buffer of 8-bit pixels with three interleaved
// channels in BGR order, matching what recorded-session readers deliver.
// Stages treat frames as immutable and return a fresh Frame.
type Frame struct {
	W, H int
	Pix  []uint8 // interleaved BGR, len == W*H*Channels
}

// NewFrame allocates a zero-filled frame of the given dimensions.
func NewFrame(w, h int) Frame {
	if w <= 0 || h <= 0 {
		return Frame{W: w, H: h}
	}
	return Frame{W: w, H: h, Pix: make([]uint8, w*h*Channels)}
}

// Validate checks the frame shape invariants.
func (f Frame) Validate() error {
	if f.W <= 0 || f.H <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrInvalidFrame, f.W, f.H)
	}
	if len(f.Pix) != f.W*f.H*Channels {
		return fmt.Errorf("%w: buffer length %d, want %d", ErrInvalidFrame, len(f.Pix), f.W*f.H*Channels)
	}
	return nil
}

// Clone returns a deep copy of the frame.
func (f Frame) Clone() Frame {
	out := Frame{W: f.W, H: f.H, Pix: make([]uint8, len(f.Pix))}
	copy(out.Pix, f.Pix)
	return out
}

// BGRAt returns the pixel at (x, y). Bounds are not checked.
func (f Frame) BGRAt(x, y int) (b, g, r uint8) {
	i := (y*f.W + x) * Channels
	return f.Pix[i], f.Pix[i+1], f.Pix[i+2]
}

// SetBGR stores the pixel at (x, y). Bounds are not checked.
func (f Frame) SetBGR(x, y int, b, g, r uint8) {
	i := (y*f.W + x) * Channels
	f.Pix[i], f.Pix[i+1], f.Pix[i+2] = b, g, r
}

// Setting names one of the eight adjustable grading controls.
type Setting string

const (
	Brightness              Setting = "BRIGHTNESS"
	Contrast                Setting = "CONTRAST"
	Hue                     Setting = "HUE"
	Saturation              Setting = "SATURATION"
	Sharpness               Setting = "SHARPNESS"
	GainSetting             Setting = "GAIN"
	Exposure                Setting = "EXPOSURE"
	WhiteBalanceTemperature Setting = "WHITEBALANCE_TEMPERATURE"
)

// settingOrder is the cycle order for the active setting. It mirrors the
// toggle order of the original camera-control sample.
var settingOrder = [...]Setting{
	Brightness,
	Contrast,
	Hue,
	Saturation,
	Sharpness,
	GainSetting,
	Exposure,
	WhiteBalanceTemperature,
}

type settingRange struct {
	min, max, def int
}

var settingRanges = map[Setting]settingRange{
	Brightness:              {-100, 100, 0},
	Contrast:                {0, 100, 0},
	Hue:                     {-90, 90, 0},
	Saturation:              {-100, 100, 0},
	Sharpness:               {0, 60, 0},
	GainSetting:             {0, 100, 0},
	Exposure:                {0, 100, 0},
	WhiteBalanceTemperature: {2000, 8000, 5500},
}

// Settings returns the eight setting names in cycle order.
func Settings() []Setting {
	out := make([]Setting, len(settingOrder))
	copy(out, settingOrder[:])
	return out
}

// Range returns the legal bounds and default for a setting.
func Range(name Setting) (min, max, def int, err error) {
	r, ok := settingRanges[name]
	if !ok {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrUnknownSetting, string(name))
	}
	return r.min, r.max, r.def, nil
}

package svograde

import (
	"fmt"
	"sort"
)

// Snapshot is a read-only copy of the eight grading settings, taken from a
// Store before rendering a frame.
type Snapshot struct {
	Brightness              int
	Contrast                int
	Hue                     int
	Saturation              int
	Sharpness               int
	Gain                    int
	Exposure                int
	WhiteBalanceTemperature int
}

// DefaultSnapshot returns the documented defaults for every setting.
func DefaultSnapshot() Snapshot {
	var s Snapshot
	for name, r := range settingRanges {
		s.set(name, r.def)
	}
	return s
}

func (s *Snapshot) set(name Setting, v int) {
	switch name {
	case Brightness:
		s.Brightness = v
	case Contrast:
		s.Contrast = v
	case Hue:
		s.Hue = v
	case Saturation:
		s.Saturation = v
	case Sharpness:
		s.Sharpness = v
	case GainSetting:
		s.Gain = v
	case Exposure:
		s.Exposure = v
	case WhiteBalanceTemperature:
		s.WhiteBalanceTemperature = v
	}
}

func (s Snapshot) value(name Setting) int {
	switch name {
	case Brightness:
		return s.Brightness
	case Contrast:
		return s.Contrast
	case Hue:
		return s.Hue
	case Saturation:
		return s.Saturation
	case Sharpness:
		return s.Sharpness
	case GainSetting:
		return s.Gain
	case Exposure:
		return s.Exposure
	default:
		return s.WhiteBalanceTemperature
	}
}

// SettingValue is one name/value pair of a snapshot.
type SettingValue struct {
	Name  Setting
	Value int
}

// Values returns the snapshot as name/value pairs sorted by name, a stable
// layout for persistence and export.
func (s Snapshot) Values() []SettingValue {
	names := Settings()
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	out := make([]SettingValue, len(names))
	for i, n := range names {
		out[i] = SettingValue{Name: n, Value: s.value(n)}
	}
	return out
}

// Store holds the current value of the eight grading settings plus the
// single "active" setting targeted by increment/decrement commands. It is
// not safe for concurrent use; command handling and rendering are expected
// to be serialized by the caller.
type Store struct {
	vals   map[Setting]int
	active int // index into settingOrder
}

// NewStore returns a store with every setting at its default and
// BRIGHTNESS active.
func NewStore() *Store {
	s := &Store{vals: make(map[Setting]int, len(settingOrder))}
	s.Reset()
	return s
}

// Get returns the current value of a setting.
func (s *Store) Get(name Setting) (int, error) {
	v, ok := s.vals[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSetting, string(name))
	}
	return v, nil
}

// Adjust moves a setting one step in the given direction (positive is up,
// negative is down) and clamps it to the setting's bounds. It returns the
// stored value after clamping.
func (s *Store) Adjust(name Setting, direction int) (int, error) {
	r, ok := settingRanges[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSetting, string(name))
	}
	step := 1
	if direction < 0 {
		step = -1
	}
	v := clampI(s.vals[name]+step, r.min, r.max)
	s.vals[name] = v
	return v, nil
}

// Reset restores every setting to its default. The active setting is not
// changed.
func (s *Store) Reset() {
	for name, r := range settingRanges {
		s.vals[name] = r.def
	}
}

// Active returns the setting currently targeted by increment/decrement
// commands.
func (s *Store) Active() Setting {
	return settingOrder[s.active]
}

// CycleActive advances the active setting through the fixed order, wrapping
// after the last one, and returns the new active setting.
func (s *Store) CycleActive() Setting {
	s.active = (s.active + 1) % len(settingOrder)
	return settingOrder[s.active]
}

// Snapshot copies the current settings into an immutable value for
// rendering or export.
func (s *Store) Snapshot() Snapshot {
	var snap Snapshot
	for name, v := range s.vals {
		snap.set(name, v)
	}
	return snap
}

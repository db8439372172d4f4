package svograde

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// MarshalJSON encodes the snapshot as a flat name→value object. Keys are
// emitted sorted by name so the output is stable across runs.
func (s Snapshot) MarshalJSON() ([]byte, error) {
	m := make(map[string]int, len(settingOrder))
	for _, sv := range s.Values() {
		m[string(sv.Name)] = sv.Value
	}
	return json.Marshal(m)
}

// UnmarshalJSON decodes a name→value object. Settings absent from the input
// keep their defaults; unknown names and out-of-range values are rejected.
func (s *Snapshot) UnmarshalJSON(data []byte) error {
	var m map[string]int
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	out := DefaultSnapshot()
	for k, v := range m {
		r, ok := settingRanges[Setting(k)]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownSetting, k)
		}
		if v < r.min || v > r.max {
			return fmt.Errorf("setting %s: value %d out of range [%d, %d]", k, v, r.min, r.max)
		}
		out.set(Setting(k), v)
	}
	*s = out
	return nil
}

// WriteFile writes the snapshot as indented JSON, the format produced by
// the interactive preview tool's save binding.
func (s Snapshot) WriteFile(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Clean(path), append(data, '\n'), 0o644)
}

// LoadSnapshot reads a snapshot JSON file written by Snapshot.WriteFile.
func LoadSnapshot(path string) (Snapshot, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Snapshot{}, err
	}
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return s, nil
}

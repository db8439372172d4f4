package svograde

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSnapshotMarshalStableOrder(t *testing.T) {
	data, err := json.Marshal(DefaultSnapshot())
	if err != nil {
		t.Fatal(err)
	}
	want := `{"BRIGHTNESS":0,"CONTRAST":0,"EXPOSURE":0,"GAIN":0,"HUE":0,"SATURATION":0,"SHARPNESS":0,"WHITEBALANCE_TEMPERATURE":5500}`
	if string(data) != want {
		t.Fatalf("marshal mismatch\ngot:  %s\nwant: %s", data, want)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	p := DefaultSnapshot()
	p.Brightness = -42
	p.Hue = 17
	p.WhiteBalanceTemperature = 7100

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatal(err)
	}
	var back Snapshot
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(p, back); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestSnapshotUnmarshalPartial(t *testing.T) {
	var p Snapshot
	if err := json.Unmarshal([]byte(`{"SATURATION":-40}`), &p); err != nil {
		t.Fatal(err)
	}
	if p.Saturation != -40 {
		t.Fatalf("saturation = %d, want -40", p.Saturation)
	}
	if p.WhiteBalanceTemperature != 5500 {
		t.Fatalf("absent setting lost its default: wb = %d", p.WhiteBalanceTemperature)
	}
}

func TestSnapshotUnmarshalRejects(t *testing.T) {
	var p Snapshot
	if err := json.Unmarshal([]byte(`{"ZOOM":3}`), &p); !errors.Is(err, ErrUnknownSetting) {
		t.Fatalf("unknown name: err = %v, want ErrUnknownSetting", err)
	}
	err := json.Unmarshal([]byte(`{"CONTRAST":101}`), &p)
	if err == nil || !strings.Contains(err.Error(), "out of range") {
		t.Fatalf("out-of-range value: err = %v", err)
	}
}

func TestSnapshotFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	p := DefaultSnapshot()
	p.Sharpness = 25
	if err := p.WriteFile(path); err != nil {
		t.Fatal(err)
	}
	back, err := LoadSnapshot(path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(p, back); diff != "" {
		t.Fatalf("file round trip mismatch (-want +got):\n%s", diff)
	}
}

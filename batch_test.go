package svograde

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

// writeSession lays out an extracted session: inDir/images/img_NNNNNN.png
// plus a poses.csv next to the images directory.
func writeSession(t *testing.T, dir string, frames int) {
	t.Helper()
	imgDir := filepath.Join(dir, "images")
	if err := os.MkdirAll(imgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < frames; i++ {
		name := fmt.Sprintf("img_%06d.png", i)
		if err := WriteFrameFile(filepath.Join(imgDir, name), gradientFrame(8, 6)); err != nil {
			t.Fatal(err)
		}
	}
	poses := "frame,tx,ty,tz,qx,qy,qz,qw\n0,0,0,0,0,0,0,1\n"
	if err := os.WriteFile(filepath.Join(dir, "poses.csv"), []byte(poses), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestGradeFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	out := filepath.Join(dir, "out.png")
	if err := WriteFrameFile(in, flatFrame(4, 4, 128, 128, 128)); err != nil {
		t.Fatal(err)
	}

	if err := GradeFile(in, out, DefaultSnapshot()); err != nil {
		t.Fatal(err)
	}
	got, err := ReadFrameFile(out)
	if err != nil {
		t.Fatal(err)
	}
	b, g, r := got.BGRAt(0, 0)
	if b != 120 || g != 128 || r != 137 {
		t.Fatalf("graded pixel = (%d,%d,%d), want (120,128,137)", b, g, r)
	}
}

func TestGradeDir(t *testing.T) {
	inDir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "graded")
	writeSession(t, inDir, 3)

	res, err := GradeDir(context.Background(), inDir, outDir, DefaultSnapshot(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.Frames != 3 {
		t.Fatalf("graded %d frames, want 3", res.Frames)
	}
	if _, err := uuid.Parse(res.SessionID); err != nil {
		t.Fatalf("session id %q not a UUID: %v", res.SessionID, err)
	}

	for i := 0; i < 3; i++ {
		name := fmt.Sprintf("img_%06d.png", i)
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Fatalf("missing graded frame %s: %v", name, err)
		}
	}
	if _, err := os.Stat(filepath.Join(outDir, "poses.csv")); err != nil {
		t.Fatalf("poses.csv not copied: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(outDir, "manifest.json"))
	if err != nil {
		t.Fatal(err)
	}
	var manifest BatchResult
	if err := json.Unmarshal(data, &manifest); err != nil {
		t.Fatal(err)
	}
	if manifest.SessionID != res.SessionID || manifest.Frames != 3 {
		t.Fatalf("manifest mismatch: %+v", manifest)
	}
	if manifest.Settings.WhiteBalanceTemperature != 5500 {
		t.Fatalf("manifest settings = %+v", manifest.Settings)
	}
}

func TestGradeDirFlatLayout(t *testing.T) {
	// Frames directly in the input directory, no images/ subdirectory.
	inDir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "graded")
	for _, name := range []string{"b.png", "a.png"} {
		if err := WriteFrameFile(filepath.Join(inDir, name), gradientFrame(4, 4)); err != nil {
			t.Fatal(err)
		}
	}

	res, err := GradeDir(context.Background(), inDir, outDir, DefaultSnapshot(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.Frames != 2 {
		t.Fatalf("graded %d frames, want 2", res.Frames)
	}
}

func TestGradeDirMaxFrames(t *testing.T) {
	inDir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "graded")
	writeSession(t, inDir, 5)

	res, err := GradeDir(context.Background(), inDir, outDir, DefaultSnapshot(), &BatchOptions{MaxFrames: 2})
	if err != nil {
		t.Fatal(err)
	}
	if res.Frames != 2 {
		t.Fatalf("graded %d frames, want 2", res.Frames)
	}
	if _, err := os.Stat(filepath.Join(outDir, "img_000002.png")); err == nil {
		t.Fatal("frame beyond the limit was graded")
	}
}

func TestGradeDirCanceled(t *testing.T) {
	inDir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "graded")
	writeSession(t, inDir, 2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := GradeDir(ctx, inDir, outDir, DefaultSnapshot(), nil); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestGradeDirEmpty(t *testing.T) {
	inDir := t.TempDir()
	if _, err := GradeDir(context.Background(), inDir, t.TempDir(), DefaultSnapshot(), nil); err == nil {
		t.Fatal("expected error for a session with no frames")
	}
}

package svograde

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// BatchOptions controls directory grading.
type BatchOptions struct {
	// MaxFrames limits how many frames are graded; zero means all.
	MaxFrames int
	// Logger receives per-session and per-frame progress. Nil disables
	// logging.
	Logger logrus.FieldLogger
}

// BatchResult summarizes one graded session.
type BatchResult struct {
	SessionID string   `json:"session_id"`
	Source    string   `json:"source"`
	Frames    int      `json:"frames"`
	Settings  Snapshot `json:"settings"`
}

// manifestName is the per-session summary written next to the graded frames.
const manifestName = "manifest.json"

// posesName is the camera-pose CSV an extraction leaves next to its images.
const posesName = "poses.csv"

// GradeDir grades every PNG frame of an extracted recording session. It
// reads frames from inDir (or inDir/images when inDir itself holds none,
// matching the extraction layout), writes graded PNGs with the same file
// names under outDir, copies the session's poses.csv when present, and
// writes a manifest with a fresh session id, the frame count and the
// parameter snapshot used.
//
// Cancellation is frame-granular: ctx is checked between frames and a
// started frame is always finished.
func GradeDir(ctx context.Context, inDir, outDir string, p Snapshot, opts *BatchOptions) (*BatchResult, error) {
	var o BatchOptions
	if opts != nil {
		o = *opts
	}

	srcDir, frames, err := sessionFrames(inDir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, err
	}

	res := &BatchResult{
		SessionID: uuid.NewString(),
		Source:    inDir,
		Settings:  p,
	}
	log := o.Logger
	if log != nil {
		log = log.WithFields(logrus.Fields{"session": res.SessionID, "source": inDir})
		log.WithField("frames", len(frames)).Info("grading session")
	}

	limit := len(frames)
	if o.MaxFrames > 0 && o.MaxFrames < limit {
		limit = o.MaxFrames
	}
	for i := 0; i < limit; i++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		name := frames[i]
		if err := GradeFile(filepath.Join(srcDir, name), filepath.Join(outDir, name), p); err != nil {
			return res, fmt.Errorf("frame %s: %w", name, err)
		}
		res.Frames++
		if log != nil && res.Frames%100 == 0 {
			log.WithField("done", res.Frames).Debug("progress")
		}
	}

	if err := copyPoses(srcDir, outDir, log); err != nil {
		return res, err
	}
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return res, err
	}
	if err := os.WriteFile(filepath.Join(outDir, manifestName), append(data, '\n'), 0o644); err != nil {
		return res, err
	}
	if log != nil {
		log.WithField("frames", res.Frames).Info("session graded")
	}
	return res, nil
}

// sessionFrames returns the directory actually holding the session's PNG
// frames and their sorted file names.
func sessionFrames(inDir string) (string, []string, error) {
	names, err := pngNames(inDir)
	if err != nil {
		return "", nil, err
	}
	if len(names) == 0 {
		sub := filepath.Join(inDir, "images")
		if subNames, subErr := pngNames(sub); subErr == nil && len(subNames) > 0 {
			return sub, subNames, nil
		}
		return "", nil, fmt.Errorf("no PNG frames in %s", inDir)
	}
	return inDir, names, nil
}

func pngNames(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".png") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// copyPoses copies poses.csv from the session (next to the frames or one
// level up, where extractions write it) into outDir. A missing file is not
// an error.
func copyPoses(srcDir, outDir string, log logrus.FieldLogger) error {
	for _, dir := range []string{srcDir, filepath.Dir(srcDir)} {
		src := filepath.Join(dir, posesName)
		if _, err := os.Stat(src); err != nil {
			continue
		}
		if err := copyFile(src, filepath.Join(outDir, posesName)); err != nil {
			return fmt.Errorf("copy %s: %w", posesName, err)
		}
		if log != nil {
			log.WithField("from", src).Debug("copied poses")
		}
		return nil
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(filepath.Clean(src))
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(filepath.Clean(dst))
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

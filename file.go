package svograde

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
)

// ReadFrameFile decodes a PNG file into a Frame.
func ReadFrameFile(path string) (Frame, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return Frame{}, err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return Frame{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return FrameFromImage(img)
}

// WriteFrameFile encodes a Frame as a PNG file.
func WriteFrameFile(path string, fr Frame) error {
	if err := fr.Validate(); err != nil {
		return err
	}
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return err
	}
	if err := png.Encode(f, fr.Image()); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// GradeFile reads a PNG frame from inPath, renders it with the snapshot,
// and writes the result to outPath.
func GradeFile(inPath, outPath string, p Snapshot) error {
	fr, err := ReadFrameFile(inPath)
	if err != nil {
		return err
	}
	out, err := Render(fr, p)
	if err != nil {
		return err
	}
	return WriteFrameFile(outPath, out)
}

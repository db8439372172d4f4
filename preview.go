package svograde

import (
	"github.com/nfnt/resize"
)

// RenderPreview renders a frame and downscales the result to fit within
// maxW×maxH, preserving aspect ratio. Frames already inside the box are
// returned at full size. Interactive tools use this to keep the graded
// preview at a displayable size without touching the full-resolution path.
func RenderPreview(f Frame, p Snapshot, maxW, maxH int) (Frame, error) {
	out, err := Render(f, p)
	if err != nil {
		return Frame{}, err
	}
	if maxW <= 0 || maxH <= 0 || (out.W <= maxW && out.H <= maxH) {
		return out, nil
	}

	w, h := fitBox(out.W, out.H, maxW, maxH)
	img := resize.Resize(uint(w), uint(h), out.Image(), resize.Lanczos3)
	return FrameFromImage(img)
}

// RenderPreviewFile is the file-path variant of RenderPreview, reading a
// PNG from inPath and writing the downscaled graded PNG to outPath.
func RenderPreviewFile(inPath, outPath string, p Snapshot, maxW, maxH int) error {
	fr, err := ReadFrameFile(inPath)
	if err != nil {
		return err
	}
	out, err := RenderPreview(fr, p, maxW, maxH)
	if err != nil {
		return err
	}
	return WriteFrameFile(outPath, out)
}

// fitBox scales w×h down to fit within maxW×maxH, keeping aspect ratio.
// Both results are at least 1.
func fitBox(w, h, maxW, maxH int) (int, int) {
	scaleW := float64(maxW) / float64(w)
	scaleH := float64(maxH) / float64(h)
	scale := scaleW
	if scaleH < scale {
		scale = scaleH
	}
	ow := int(float64(w) * scale)
	oh := int(float64(h) * scale)
	if ow < 1 {
		ow = 1
	}
	if oh < 1 {
		oh = 1
	}
	return ow, oh
}

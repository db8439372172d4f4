package svograde

import (
	"fmt"
	"image"
	"image/color"
)

// FrameFromImage converts a decoded image into a Frame, dropping any alpha
// channel. The pixel order is flipped to the BGR layout frames use
// internally.
func FrameFromImage(img image.Image) (Frame, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return Frame{}, fmt.Errorf("%w: image bounds %v", ErrInvalidFrame, b)
	}

	f := NewFrame(w, h)
	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := 0; y < h; y++ {
			src := nrgba.Pix[y*nrgba.Stride:]
			for x := 0; x < w; x++ {
				f.SetBGR(x, y, src[x*4+2], src[x*4+1], src[x*4])
			}
		}
		return f, nil
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			f.SetBGR(x, y, uint8(bl>>8), uint8(g>>8), uint8(r>>8))
		}
	}
	return f, nil
}

// Image converts the frame to an opaque NRGBA image for encoding or
// interop with the standard imaging packages.
func (f Frame) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, f.W, f.H))
	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			b, g, r := f.BGRAt(x, y)
			img.SetNRGBA(x, y, color.NRGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}

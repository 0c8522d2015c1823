// Package bitmap provides bitmap drawing primitives.
package bitmap

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// NewCanvas returns a fully transparent canvas of the given size.
func NewCanvas(width, height int) *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, width, height))
}

// Inclusive returns the rectangle that covers the pixels from (x0, y0) to
// (x1, y1), both corners included.
func Inclusive(x0, y0, x1, y1 int) image.Rectangle {
	return image.Rect(x0, y0, x1+1, y1+1)
}

// VerticalGradient paints dst with a linear gradient that goes from top
// colour at the first row to bottom colour at the (virtual) row past the
// last one.  Channels are interpolated independently and truncated, the
// alpha is always opaque.
func VerticalGradient(dst *image.RGBA, top, bottom color.RGBA) {
	b := dst.Bounds()
	h := b.Dy()
	for i := 0; i < h; i++ {
		t := float64(i) / float64(h)
		c := color.RGBA{
			R: lerp(top.R, bottom.R, t),
			G: lerp(top.G, bottom.G, t),
			B: lerp(top.B, bottom.B, t),
			A: 0xff,
		}
		row := image.Rect(b.Min.X, b.Min.Y+i, b.Max.X, b.Min.Y+i+1)
		draw.Draw(dst, row, image.NewUniform(c), image.Point{}, draw.Src)
	}
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

// FillRect replaces the pixels of r with col.  The rectangle is clipped to
// the canvas.
func FillRect(dst draw.Image, r image.Rectangle, col color.Color) {
	r = r.Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(dst, r, image.NewUniform(col), image.Point{}, draw.Src)
}

package bitmap

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/vector"
)

// kappa is the distance of the cubic control points from the corner when
// approximating a quarter circle.
const kappa = 0.5522847498

// FillRoundedRect replaces the pixels of r, with corners rounded by radius,
// with col.  Edge pixels are anti-aliased.
func FillRoundedRect(dst *image.RGBA, r image.Rectangle, radius int, col color.Color) {
	if r.Empty() {
		return
	}
	z := newRasterizer(dst)
	roundedRectPath(z, rectF(r), clampRadius(r, radius), true)
	paint(dst, z, col)
}

// StrokeRoundedRect draws the outline of the rounded rectangle r, width
// pixels thick, inside r.  The interior is left untouched.
func StrokeRoundedRect(dst *image.RGBA, r image.Rectangle, radius, width int, col color.Color) {
	if r.Empty() || width <= 0 {
		return
	}
	inner := r.Inset(width)
	if inner.Empty() {
		FillRoundedRect(dst, r, radius, col)
		return
	}
	z := newRasterizer(dst)
	radius = clampRadius(r, radius)
	roundedRectPath(z, rectF(r), radius, true)
	// opposite winding cuts the hole
	roundedRectPath(z, rectF(inner), max(radius-width, 0), false)
	paint(dst, z, col)
}

// Line draws a straight segment through the centres of pixels p and q,
// width pixels thick.  Both end pixels are covered.
func Line(dst *image.RGBA, p, q image.Point, width int, col color.Color) {
	if width <= 0 {
		return
	}
	x0, y0 := float64(p.X)+0.5, float64(p.Y)+0.5
	x1, y1 := float64(q.X)+0.5, float64(q.Y)+0.5
	dx, dy := x1-x0, y1-y0
	l := math.Hypot(dx, dy)
	if l == 0 {
		FillRect(dst, image.Rect(p.X, p.Y, p.X+width, p.Y+width).Sub(image.Pt(width/2, width/2)), col)
		return
	}
	ux, uy := dx/l, dy/l
	x0, y0 = x0-ux/2, y0-uy/2
	x1, y1 = x1+ux/2, y1+uy/2
	hw := float64(width) / 2
	nx, ny := -uy*hw, ux*hw

	z := newRasterizer(dst)
	z.MoveTo(float32(x0+nx), float32(y0+ny))
	z.LineTo(float32(x1+nx), float32(y1+ny))
	z.LineTo(float32(x1-nx), float32(y1-ny))
	z.LineTo(float32(x0-nx), float32(y0-ny))
	z.ClosePath()
	paint(dst, z, col)
}

func newRasterizer(dst image.Image) *vector.Rasterizer {
	b := dst.Bounds()
	return vector.NewRasterizer(b.Dx(), b.Dy())
}

// paint replaces the pixels of dst covered by the path in z with col.
// Partially covered pixels are interpolated between the old value and col
// by the coverage, fully covered ones get col exactly.
func paint(dst *image.RGBA, z *vector.Rasterizer, col color.Color) {
	b := dst.Bounds()
	mask := image.NewAlpha(image.Rect(0, 0, b.Dx(), b.Dy()))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	c := color.RGBAModel.Convert(col).(color.RGBA)
	src := [4]uint8{c.R, c.G, c.B, c.A}
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			m := uint32(mask.AlphaAt(x, y).A)
			if m == 0 {
				continue
			}
			i := dst.PixOffset(b.Min.X+x, b.Min.Y+y)
			px := dst.Pix[i : i+4 : i+4]
			if m == 0xff {
				copy(px, src[:])
				continue
			}
			for j := range px {
				px[j] = uint8((uint32(src[j])*m + uint32(px[j])*(0xff-m) + 0x7f) / 0xff)
			}
		}
	}
}

type rectf struct {
	x0, y0, x1, y1 float32
}

func rectF(r image.Rectangle) rectf {
	return rectf{float32(r.Min.X), float32(r.Min.Y), float32(r.Max.X), float32(r.Max.Y)}
}

func clampRadius(r image.Rectangle, radius int) int {
	return max(0, min(radius, r.Dx()/2, r.Dy()/2))
}

// roundedRectPath adds a closed rounded rectangle to z.  Clockwise is in
// screen coordinates, y pointing down.
func roundedRectPath(z *vector.Rasterizer, r rectf, radius int, clockwise bool) {
	rad := float32(radius)
	k := rad * (1 - kappa)
	z.MoveTo(r.x0+rad, r.y0)
	if clockwise {
		z.LineTo(r.x1-rad, r.y0)
		z.CubeTo(r.x1-k, r.y0, r.x1, r.y0+k, r.x1, r.y0+rad)
		z.LineTo(r.x1, r.y1-rad)
		z.CubeTo(r.x1, r.y1-k, r.x1-k, r.y1, r.x1-rad, r.y1)
		z.LineTo(r.x0+rad, r.y1)
		z.CubeTo(r.x0+k, r.y1, r.x0, r.y1-k, r.x0, r.y1-rad)
		z.LineTo(r.x0, r.y0+rad)
		z.CubeTo(r.x0, r.y0+k, r.x0+k, r.y0, r.x0+rad, r.y0)
	} else {
		z.CubeTo(r.x0+k, r.y0, r.x0, r.y0+k, r.x0, r.y0+rad)
		z.LineTo(r.x0, r.y1-rad)
		z.CubeTo(r.x0, r.y1-k, r.x0+k, r.y1, r.x0+rad, r.y1)
		z.LineTo(r.x1-rad, r.y1)
		z.CubeTo(r.x1-k, r.y1, r.x1, r.y1-k, r.x1, r.y1-rad)
		z.LineTo(r.x1, r.y0+rad)
		z.CubeTo(r.x1, r.y0+k, r.x1-k, r.y0, r.x1-rad, r.y0)
	}
	z.ClosePath()
}

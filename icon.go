// Package checkicon renders the checklist launcher icon and writes it out
// for every launcher density.
package checkicon

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/rusq/checkicon/bitmap"
)

var (
	GradientTop    = color.RGBA{65, 105, 225, 0xff}
	GradientBottom = color.RGBA{33, 150, 243, 0xff}

	CardColor      = color.NRGBA{0xff, 0xff, 0xff, 240}
	CheckedColor   = color.NRGBA{34, 197, 94, 0xff}   // green
	UncheckedColor = color.NRGBA{156, 163, 175, 0xff} // gray outline
	CheckmarkColor = color.NRGBA{0xff, 0xff, 0xff, 0xff}
	DoneLineColor  = color.NRGBA{156, 163, 175, 0xff}
	TodoLineColor  = color.NRGBA{75, 85, 99, 0xff}
	ShadowColor    = color.NRGBA{0, 0, 0, 30}
)

// shadowOffset is the margin of the shadow buffer on each side of the icon.
const shadowOffset = 2

// Render draws the icon of size×size pixels.  Render panics if size is not
// positive.
func Render(size int) *image.NRGBA {
	if size <= 0 {
		panic(fmt.Sprintf("checkicon: invalid icon size %d", size))
	}
	l := NewLayout(size)

	img := bitmap.NewCanvas(size, size)
	bitmap.VerticalGradient(img, GradientTop, GradientBottom)
	bitmap.FillRoundedRect(img, l.Card(), l.CornerRadius, CardColor)
	for i := 0; i < NumRows; i++ {
		drawRow(img, l, l.Row(i))
	}
	return withShadow(img, l)
}

func drawRow(dst *image.RGBA, l Layout, r Row) {
	if r.Done {
		bitmap.FillRoundedRect(dst, r.Checkbox, l.CheckboxRadius(), CheckedColor)
		pts := l.Checkmark(r.Checkbox.Min)
		w := l.CheckmarkWidth()
		bitmap.Line(dst, pts[0], pts[1], w, CheckmarkColor)
		bitmap.Line(dst, pts[1], pts[2], w, CheckmarkColor)
		// same gray is used for the strike-through, so the line is simply
		// drawn in it.
		bitmap.FillRect(dst, r.Line, DoneLineColor)
		return
	}
	bitmap.StrokeRoundedRect(dst, r.Checkbox, l.CheckboxRadius(), l.OutlineWidth(), UncheckedColor)
	bitmap.FillRect(dst, r.Line, TodoLineColor)
}

// withShadow composes the icon with its drop shadow on a buffer with a
// shadowOffset margin on each side, and crops the result back to the icon
// bounds.  The icon is pasted, not blended, so the shadow only survives
// where the icon has no pixels.
func withShadow(img *image.RGBA, l Layout) *image.NRGBA {
	var (
		size = l.Size
		full = size + 2*shadowOffset
	)
	shadow := bitmap.NewCanvas(full, full)
	bitmap.FillRoundedRect(shadow,
		bitmap.Inclusive(shadowOffset, shadowOffset, size+shadowOffset, size+shadowOffset),
		l.CornerRadius, ShadowColor)

	final := imaging.New(full, full, color.NRGBA{0xff, 0xff, 0xff, 0})
	final = imaging.Paste(final, shadow, image.Point{})
	final = imaging.Paste(final, img, image.Pt(shadowOffset, shadowOffset))
	return imaging.Crop(final, image.Rect(shadowOffset, shadowOffset, size+shadowOffset, size+shadowOffset))
}

package checkicon

import "image"

// NumRows is the number of checklist rows on the card.
const NumRows = 3

// Layout is the geometry of an icon of a given size.  All values are derived
// from the size with integer division.
type Layout struct {
	Size         int
	Margin       int // card inset from the canvas edge
	CornerRadius int // card and shadow corner radius
	ItemHeight   int
	ItemMargin   int // inset of the first row and the checkboxes
	Checkbox     int // checkbox side
}

// Row is the geometry of a single checklist row.
type Row struct {
	Index    int
	Done     bool            // first row is rendered as completed
	Checkbox image.Rectangle // inclusive of the far edge
	Line     image.Rectangle // inclusive of the far edge
}

func NewLayout(size int) Layout {
	return Layout{
		Size:         size,
		Margin:       size / 10,
		CornerRadius: size / 8,
		ItemHeight:   size / 8,
		ItemMargin:   size / 5,
		Checkbox:     size / 12,
	}
}

// Card returns the rectangle of the white card.
func (l Layout) Card() image.Rectangle {
	return image.Rect(l.Margin, l.Margin, l.Size-l.Margin+1, l.Size-l.Margin+1)
}

// Row returns the geometry of the i-th row.
func (l Layout) Row(i int) Row {
	y := l.ItemMargin + i*l.ItemHeight
	cbX := l.ItemMargin
	cbY := y + (l.ItemHeight-l.Checkbox)/2

	lineX := cbX + l.Checkbox + l.Checkbox/2
	lineY := y + l.ItemHeight/2
	lineW := l.Size - l.ItemMargin - lineX
	lineH := max(1, l.Size/60)

	return Row{
		Index:    i,
		Done:     i == 0,
		Checkbox: image.Rect(cbX, cbY, cbX+l.Checkbox+1, cbY+l.Checkbox+1),
		Line:     image.Rect(lineX, lineY, lineX+lineW+1, lineY+lineH+1),
	}
}

// CheckboxRadius is the corner radius of the checkboxes.
func (l Layout) CheckboxRadius() int {
	return l.Checkbox / 4
}

// CheckmarkWidth is the stroke width of the checkmark.
func (l Layout) CheckmarkWidth() int {
	return max(1, l.Checkbox/8)
}

// OutlineWidth is the stroke width of an empty checkbox.
func (l Layout) OutlineWidth() int {
	return max(1, l.Checkbox/10)
}

// Checkmark returns the three points of the checkmark inside the checkbox
// at origin.
func (l Layout) Checkmark(origin image.Point) [3]image.Point {
	cb := l.Checkbox
	return [3]image.Point{
		origin.Add(image.Pt(cb/4, cb/2)),
		origin.Add(image.Pt(cb/2, cb*3/4)),
		origin.Add(image.Pt(cb*3/4, cb/4)),
	}
}

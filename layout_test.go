package checkicon

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLayout(t *testing.T) {
	tests := []struct {
		name string
		size int
		want Layout
	}{
		{"mdpi", 48, Layout{Size: 48, Margin: 4, CornerRadius: 6, ItemHeight: 6, ItemMargin: 9, Checkbox: 4}},
		{"xxxhdpi", 192, Layout{Size: 192, Margin: 19, CornerRadius: 24, ItemHeight: 24, ItemMargin: 38, Checkbox: 16}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewLayout(tt.size))
		})
	}
}

func TestLayout_Row(t *testing.T) {
	l := NewLayout(192)
	tests := []struct {
		name string
		i    int
		want Row
	}{
		{
			name: "completed row",
			i:    0,
			want: Row{
				Index:    0,
				Done:     true,
				Checkbox: image.Rect(38, 42, 55, 59),
				Line:     image.Rect(62, 50, 155, 54),
			},
		},
		{
			name: "last row",
			i:    2,
			want: Row{
				Index:    2,
				Done:     false,
				Checkbox: image.Rect(38, 90, 55, 107),
				Line:     image.Rect(62, 98, 155, 102),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, l.Row(tt.i))
		})
	}
}

func TestLayout_strokes(t *testing.T) {
	small, large := NewLayout(48), NewLayout(192)
	assert.Equal(t, 1, small.CheckmarkWidth(), "minimum width")
	assert.Equal(t, 2, large.CheckmarkWidth())
	assert.Equal(t, 1, small.OutlineWidth())
	assert.Equal(t, 1, large.OutlineWidth())
	assert.Equal(t, 1, small.CheckboxRadius())
	assert.Equal(t, 4, large.CheckboxRadius())
	assert.Equal(t, [3]image.Point{{42, 50}, {46, 54}, {50, 46}}, large.Checkmark(image.Pt(38, 42)))
}

func TestLayout_Card(t *testing.T) {
	assert.Equal(t, image.Rect(4, 4, 45, 45), NewLayout(48).Card())
}

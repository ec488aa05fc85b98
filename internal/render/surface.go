package render

import (
	"image"
	"image/color"
)

// Align is the horizontal text alignment relative to the x coordinate
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// TextStyle configures caption drawing on a Surface
type TextStyle struct {
	Fill      color.Color
	Stroke    color.Color
	LineWidth float64
	FontSize  int
	Bold      bool
	Align     Align
}

// Surface is a 2D drawing target: the on-screen preview or an export buffer.
// Text coordinates address the baseline.
type Surface interface {
	// Resize reallocates the surface at the given pixel size, clearing it
	Resize(width, height int)
	// Size returns the current pixel size
	Size() (width, height int)
	// DrawImage draws img unscaled at the origin
	DrawImage(img image.Image)
	// SetTextStyle sets the style used by StrokeText and FillText
	SetTextStyle(style TextStyle)
	// StrokeText outlines text at (x, y)
	StrokeText(text string, x, y float64)
	// FillText fills text at (x, y)
	FillText(text string, x, y float64)
	// Image returns the current pixels
	Image() image.Image
}

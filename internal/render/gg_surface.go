package render

import (
	"image"
	"image/color"
	"math"

	"github.com/gogpu/gg"
	"k8s.io/klog/v2"
)

// GGSurface is a Surface backed by a gg software context
type GGSurface struct {
	dc    *gg.Context
	style TextStyle
	fonts *FontCache
}

// NewGGSurface creates an empty surface using the default fonts
func NewGGSurface() *GGSurface {
	return &GGSurface{
		fonts: DefaultFonts(),
		style: TextStyle{Fill: color.White, Stroke: color.Black, LineWidth: 1, FontSize: 10},
	}
}

// Resize reallocates the surface; non-positive sizes leave it unchanged
func (s *GGSurface) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.dc = gg.NewContext(width, height)
}

// Size returns the surface size
func (s *GGSurface) Size() (int, int) {
	if s.dc == nil {
		return 0, 0
	}
	return s.dc.Width(), s.dc.Height()
}

// DrawImage draws img at the origin. The surface is sized to the image by the
// engine, so this is a pixel copy.
func (s *GGSurface) DrawImage(img image.Image) {
	s.dc = gg.NewContextForImage(img)
}

// SetTextStyle sets the caption style
func (s *GGSurface) SetTextStyle(style TextStyle) {
	s.style = style
}

// StrokeText outlines text by stamping it in the stroke color over a disc of
// radius LineWidth/2 around the target position.
func (s *GGSurface) StrokeText(text string, x, y float64) {
	x, ok := s.prepareText(text, x)
	if !ok {
		return
	}

	radius := s.style.LineWidth / 2
	steps := int(math.Ceil(radius))
	s.dc.SetColor(s.style.Stroke)
	for dy := -steps; dy <= steps; dy++ {
		for dx := -steps; dx <= steps; dx++ {
			if float64(dx*dx+dy*dy) > radius*radius {
				continue
			}
			s.dc.DrawString(text, x+float64(dx), y+float64(dy))
		}
	}
}

// FillText draws text in the fill color
func (s *GGSurface) FillText(text string, x, y float64) {
	x, ok := s.prepareText(text, x)
	if !ok {
		return
	}

	s.dc.SetColor(s.style.Fill)
	s.dc.DrawString(text, x, y)
}

// Image returns a copy of the current pixels
func (s *GGSurface) Image() image.Image {
	if s.dc == nil {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}
	return s.dc.Image()
}

// prepareText selects the face for the style and returns the left x of the text
func (s *GGSurface) prepareText(text string, x float64) (float64, bool) {
	if s.dc == nil || text == "" {
		return x, false
	}

	face, err := s.fonts.Face(s.style.FontSize, s.style.Bold)
	if err != nil {
		klog.Errorf("no font for caption: %v", err)
		return x, false
	}
	s.dc.SetFont(face)

	w, _ := s.dc.MeasureString(text)
	switch s.style.Align {
	case AlignCenter:
		x -= w / 2
	case AlignRight:
		x -= w
	}
	return x, true
}

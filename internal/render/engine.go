package render

import (
	"context"
	"image"
	"image/color"
	"strings"

	"k8s.io/klog/v2"

	"github.com/ytget/meme-maker/internal/model"
)

const (
	// TopMargin is added to the font size to get the top caption baseline
	TopMargin = 10
	// BottomMargin is the distance of the bottom caption baseline from the bottom edge
	BottomMargin = 20
)

// Engine renders memes onto surfaces
type Engine struct {
	loader Loader
}

// NewEngine creates an engine loading images through loader
func NewEngine(loader Loader) *Engine {
	return &Engine{loader: loader}
}

// Render loads the meme image and draws it with its captions. If the image
// cannot be loaded the surface is left untouched and a *LoadError is returned.
func (e *Engine) Render(ctx context.Context, s Surface, m model.Meme) error {
	img, err := e.loader.Load(ctx, m.ImageURL)
	if err != nil {
		klog.Errorf("Failed to load image %s: %v", m.ImageURL, err)
		return &LoadError{Ref: m.ImageURL, Err: err}
	}

	Draw(s, img, m)
	return nil
}

// RenderAsync runs Render in the background. The channel receives the result
// once and is then closed.
func (e *Engine) RenderAsync(ctx context.Context, s Surface, m model.Meme) <-chan error {
	done := make(chan error, 1)
	go func() {
		defer close(done)
		done <- e.Render(ctx, s, m)
	}()
	return done
}

// Style returns the caption style for m
func Style(m model.Meme) TextStyle {
	return TextStyle{
		Fill:      color.White,
		Stroke:    color.Black,
		LineWidth: m.OutlineWidth(),
		FontSize:  m.FontSize,
		Bold:      true,
		Align:     AlignCenter,
	}
}

// Draw lays out m on s over an already loaded image
func Draw(s Surface, img image.Image, m model.Meme) {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()

	s.Resize(width, height)
	s.DrawImage(img)
	if !m.HasCaption() {
		return
	}
	s.SetTextStyle(Style(m))

	x := float64(width) / 2
	if m.TopText != "" {
		drawCaption(s, strings.ToUpper(m.TopText), x, float64(m.FontSize+TopMargin))
	}
	if m.BottomText != "" {
		drawCaption(s, strings.ToUpper(m.BottomText), x, float64(height-BottomMargin))
	}
}

func drawCaption(s Surface, text string, x, y float64) {
	s.StrokeText(text, x, y)
	s.FillText(text, x, y)
}

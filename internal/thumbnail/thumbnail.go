package thumbnail

import (
	"context"
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/transform"
	lru "github.com/hashicorp/golang-lru/v2"
	"k8s.io/klog/v2"

	"github.com/ytget/meme-maker/internal/render"
)

const (
	// DefaultWidth is the thumbnail width used by the grids
	DefaultWidth = 160

	// CacheSize bounds the remembered results, enough for the largest album
	CacheSize = 1024
)

type result struct {
	img image.Image
	err error
}

// Service loads images and scales them down to a fixed width, keeping the
// aspect ratio. The most recent results, failures included, are remembered per
// reference so a broken image is not fetched again.
type Service struct {
	loader  render.Loader
	width   int
	results *lru.Cache[string, result]
}

// NewService creates a thumbnail service; width <= 0 selects DefaultWidth
func NewService(loader render.Loader, width int) *Service {
	if width <= 0 {
		width = DefaultWidth
	}
	// New only fails for a non-positive size
	results, _ := lru.New[string, result](CacheSize)
	return &Service{
		loader:  loader,
		width:   width,
		results: results,
	}
}

// Thumbnail returns the scaled image behind ref
func (s *Service) Thumbnail(ctx context.Context, ref string) (image.Image, error) {
	if r, ok := s.results.Get(ref); ok {
		return r.img, r.err
	}

	img, err := s.load(ctx, ref)
	if err != nil {
		klog.Warningf("thumbnail %s unavailable: %v", ref, err)
		if ctx.Err() != nil {
			// cancellation is not the image's fault
			return nil, err
		}
	}

	s.results.Add(ref, result{img: img, err: err})
	return img, err
}

func (s *Service) load(ctx context.Context, ref string) (image.Image, error) {
	img, err := s.loader.Load(ctx, ref)
	if err != nil {
		return nil, err
	}
	return Scale(img, s.width)
}

// Scale resizes img to width pixels wide; smaller images are returned as is
func Scale(img image.Image, width int) (image.Image, error) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("empty image %v", b)
	}
	if b.Dx() <= width {
		return img, nil
	}

	scale := float64(b.Dx()) / float64(width)
	height := int(float64(b.Dy()) / scale)
	if height < 1 {
		height = 1
	}
	return transform.Resize(img, width, height, transform.Lanczos), nil
}

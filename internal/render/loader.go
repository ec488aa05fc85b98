package render

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/anthonynsimon/bild/imgio"
	lru "github.com/hashicorp/golang-lru/v2"
)

// Loader fetches and decodes the image behind an image reference
type Loader interface {
	Load(ctx context.Context, ref string) (image.Image, error)
}

// LoaderFunc adapts a function to the Loader interface
type LoaderFunc func(ctx context.Context, ref string) (image.Image, error)

// Load calls f
func (f LoaderFunc) Load(ctx context.Context, ref string) (image.Image, error) {
	return f(ctx, ref)
}

// LoadError reports an image that could not be fetched or decoded
type LoadError struct {
	Ref string
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load image %s: %v", e.Ref, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// ErrOutsideRoot is returned by DirLoader for references escaping its root
var ErrOutsideRoot = errors.New("image reference outside asset root")

// DefaultHTTPTimeout bounds a single image download
const DefaultHTTPTimeout = 30 * time.Second

// HTTPLoader loads images over HTTP. Relative references are resolved against BaseURL.
type HTTPLoader struct {
	BaseURL string
	Client  *http.Client
}

// NewHTTPLoader creates an HTTP loader for the asset server at baseURL
func NewHTTPLoader(baseURL string) *HTTPLoader {
	return &HTTPLoader{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: DefaultHTTPTimeout},
	}
}

// Load downloads and decodes the image
func (l *HTTPLoader) Load(ctx context.Context, ref string) (image.Image, error) {
	target, err := l.resolve(ref)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}

	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return img, nil
}

func (l *HTTPLoader) resolve(ref string) (string, error) {
	u, err := url.Parse(ref)
	if err != nil {
		return "", err
	}
	if u.IsAbs() {
		return ref, nil
	}
	if l.BaseURL == "" {
		return "", fmt.Errorf("relative reference %q without base URL", ref)
	}
	return l.BaseURL + "/" + strings.TrimLeft(ref, "/"), nil
}

// DirLoader loads images from a local directory laid out like the asset server
type DirLoader struct {
	Root string
}

// Load opens the file under Root named by ref
func (l *DirLoader) Load(ctx context.Context, ref string) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := l.path(ref)
	if err != nil {
		return nil, err
	}
	return imgio.Open(path)
}

func (l *DirLoader) path(ref string) (string, error) {
	rel := filepath.Clean(filepath.FromSlash(strings.TrimLeft(ref, "/")))
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrOutsideRoot, ref)
	}
	return filepath.Join(l.Root, rel), nil
}

// NewLoader picks a loader for the asset source: an http(s) URL or a directory
func NewLoader(source string) Loader {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return NewHTTPLoader(source)
	}
	return &DirLoader{Root: source}
}

// CachingLoader keeps the most recently loaded images in memory.
// Failed loads are not cached.
type CachingLoader struct {
	next  Loader
	cache *lru.Cache[string, image.Image]
}

// NewCachingLoader wraps next with an LRU cache of size entries
func NewCachingLoader(next Loader, size int) *CachingLoader {
	if size < 1 {
		size = 1
	}
	// New only fails for a non-positive size
	cache, _ := lru.New[string, image.Image](size)
	return &CachingLoader{next: next, cache: cache}
}

// Load returns the cached image or loads it through the wrapped loader
func (c *CachingLoader) Load(ctx context.Context, ref string) (image.Image, error) {
	if img, ok := c.cache.Get(ref); ok {
		return img, nil
	}

	img, err := c.next.Load(ctx, ref)
	if err != nil {
		return nil, err
	}
	c.cache.Add(ref, img)
	return img, nil
}

// Len returns the number of cached images
func (c *CachingLoader) Len() int {
	return c.cache.Len()
}

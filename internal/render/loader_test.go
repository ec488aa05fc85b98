package render

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
)

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestHTTPLoader(t *testing.T) {
	var requested string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = r.URL.Path
		if r.URL.Path == "/images/missing/1.png" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		_ = png.Encode(w, solid(8, 6, color.White))
	}))
	defer server.Close()

	loader := NewHTTPLoader(server.URL + "/")

	img, err := loader.Load(context.Background(), "/images/menherakun/3.png")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if requested != "/images/menherakun/3.png" {
		t.Errorf("Requested %s", requested)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 6 {
		t.Errorf("Expected 8x6 image, got %v", b)
	}

	if _, err := loader.Load(context.Background(), "/images/missing/1.png"); err == nil {
		t.Error("Expected error for 404")
	}

	// Absolute references bypass the base URL
	if _, err := loader.Load(context.Background(), server.URL+"/images/x/1.png"); err != nil {
		t.Errorf("Absolute reference failed: %v", err)
	}
}

func TestHTTPLoader_NotAnImage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html></html>"))
	}))
	defer server.Close()

	if _, err := NewHTTPLoader(server.URL).Load(context.Background(), "/a.png"); err == nil {
		t.Error("Expected decode error")
	}
}

func TestHTTPLoader_RelativeWithoutBase(t *testing.T) {
	loader := &HTTPLoader{}
	if _, err := loader.Load(context.Background(), "/images/a/1.png"); err == nil {
		t.Error("Expected error for relative reference without base URL")
	}
}

func TestDirLoader(t *testing.T) {
	root := t.TempDir()
	writePNG(t, filepath.Join(root, "images", "a", "1.png"), solid(5, 7, color.Black))

	loader := &DirLoader{Root: root}

	img, err := loader.Load(context.Background(), "/images/a/1.png")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 5 || b.Dy() != 7 {
		t.Errorf("Expected 5x7 image, got %v", b)
	}

	if _, err := loader.Load(context.Background(), "/images/a/2.png"); err == nil {
		t.Error("Expected error for missing file")
	}
	if _, err := loader.Load(context.Background(), "../../etc/passwd"); !errors.Is(err, ErrOutsideRoot) {
		t.Errorf("Expected ErrOutsideRoot, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := loader.Load(ctx, "/images/a/1.png"); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestNewLoader(t *testing.T) {
	tests := []struct {
		source string
		isHTTP bool
	}{
		{"http://localhost:3000", true},
		{"https://memes.example.com", true},
		{"/srv/assets", false},
		{"./public", false},
	}

	for _, test := range tests {
		_, isHTTP := NewLoader(test.source).(*HTTPLoader)
		if isHTTP != test.isHTTP {
			t.Errorf("NewLoader(%q): HTTP = %v, expected %v", test.source, isHTTP, test.isHTTP)
		}
	}
}

func TestCachingLoader(t *testing.T) {
	var loads int32
	next := LoaderFunc(func(ctx context.Context, ref string) (image.Image, error) {
		atomic.AddInt32(&loads, 1)
		if ref == "bad" {
			return nil, errors.New("bad image")
		}
		return solid(1, 1, color.White), nil
	})
	cache := NewCachingLoader(next, 2)
	ctx := context.Background()

	_, _ = cache.Load(ctx, "a")
	_, _ = cache.Load(ctx, "a")
	if loads != 1 {
		t.Errorf("Expected 1 load for a repeated reference, got %d", loads)
	}

	_, _ = cache.Load(ctx, "b")
	_, _ = cache.Load(ctx, "c") // evicts a
	if cache.Len() != 2 {
		t.Errorf("Expected 2 cached images, got %d", cache.Len())
	}
	_, _ = cache.Load(ctx, "a")
	if loads != 4 {
		t.Errorf("Expected a to be reloaded after eviction, loads = %d", loads)
	}

	if _, err := cache.Load(ctx, "bad"); err == nil {
		t.Error("Expected error to pass through")
	}
	_, _ = cache.Load(ctx, "bad")
	if loads != 6 {
		t.Errorf("Expected failures not to be cached, loads = %d", loads)
	}
}

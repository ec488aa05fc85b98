package session

import (
	"errors"
	"fmt"
	"sync"

	"k8s.io/klog/v2"

	"github.com/ytget/meme-maker/internal/catalog"
	"github.com/ytget/meme-maker/internal/project"
)

// View is the screen currently shown
type View int

const (
	ViewCatalog View = iota
	ViewImages
	ViewEditor
)

// String returns the name of the view
func (v View) String() string {
	switch v {
	case ViewCatalog:
		return "Catalog"
	case ViewImages:
		return "ImageBrowse"
	case ViewEditor:
		return "Editor"
	default:
		return "Unknown"
	}
}

var (
	// ErrUnknownAlbum is returned when selecting an album missing from the catalog
	ErrUnknownAlbum = errors.New("unknown album")

	// ErrInvalidTransition is returned when an action is not available in the current view
	ErrInvalidTransition = errors.New("invalid navigation transition")
)

// Session is the state shared across views: the active view, the album being
// browsed, and the caption project. It is created explicitly and handed to the
// UI, so tests can drive navigation without a window.
type Session struct {
	mu      sync.RWMutex
	view    View
	album   *catalog.Album
	images  []catalog.Image
	project *project.Project

	onViewChange []func(View)
}

// New creates a session showing the catalog
func New(p *project.Project) *Session {
	if p == nil {
		p = project.New()
	}
	return &Session{
		view:    ViewCatalog,
		project: p,
	}
}

// Project returns the caption project
func (s *Session) Project() *project.Project {
	return s.project
}

// View returns the active view
func (s *Session) View() View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view
}

// Album returns the album being browsed, if any
func (s *Session) Album() (catalog.Album, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.album == nil {
		return catalog.Album{}, false
	}
	return *s.album, true
}

// Images returns the expanded images of the album being browsed
func (s *Session) Images() []catalog.Image {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.images
}

// EditorEmpty reports whether the editor is shown without any meme to edit
func (s *Session) EditorEmpty() bool {
	return s.View() == ViewEditor && s.project.IsEmpty()
}

// OnViewChange registers a listener called after every transition
func (s *Session) OnViewChange(fn func(View)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onViewChange = append(s.onViewChange, fn)
}

// SelectAlbum expands the album and switches to the image browser
func (s *Session) SelectAlbum(id string) error {
	s.mu.Lock()
	if s.view != ViewCatalog {
		view := s.view
		s.mu.Unlock()
		return fmt.Errorf("select album from %s: %w", view, ErrInvalidTransition)
	}

	album, ok := catalog.Lookup(id)
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrUnknownAlbum, id)
	}

	s.album = &album
	s.images = album.Images()
	s.view = ViewImages
	s.mu.Unlock()

	klog.V(1).Infof("browsing album %s (%d images)", album.ID, album.ImageCount)
	s.notify(ViewImages)
	return nil
}

// SelectImage starts a new meme for the image and opens the editor on it
func (s *Session) SelectImage(url string) (string, error) {
	s.mu.Lock()
	if s.view != ViewImages {
		view := s.view
		s.mu.Unlock()
		return "", fmt.Errorf("select image from %s: %w", view, ErrInvalidTransition)
	}
	s.view = ViewEditor
	s.mu.Unlock()

	id := s.project.Append(url)
	s.notify(ViewEditor)
	return id, nil
}

// BackToCatalog returns to the album list. The project is kept; the album is
// dropped, so browsing again requires a new selection.
func (s *Session) BackToCatalog() {
	s.mu.Lock()
	s.view = ViewCatalog
	s.album = nil
	s.images = nil
	s.mu.Unlock()

	s.notify(ViewCatalog)
}

// notify calls the view listeners
func (s *Session) notify(v View) {
	s.mu.RLock()
	listeners := make([]func(View), len(s.onViewChange))
	copy(listeners, s.onViewChange)
	s.mu.RUnlock()

	for _, fn := range listeners {
		fn(v)
	}
}

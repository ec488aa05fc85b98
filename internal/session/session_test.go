package session

import (
	"errors"
	"testing"

	"github.com/ytget/meme-maker/internal/project"
)

func TestNew(t *testing.T) {
	s := New(nil)

	if s.View() != ViewCatalog {
		t.Errorf("Expected initial view Catalog, got %s", s.View())
	}
	if s.Project() == nil {
		t.Fatal("Expected a project to be created")
	}
	if _, ok := s.Album(); ok {
		t.Error("Expected no album selected")
	}
}

func TestView_String(t *testing.T) {
	tests := []struct {
		view     View
		expected string
	}{
		{ViewCatalog, "Catalog"},
		{ViewImages, "ImageBrowse"},
		{ViewEditor, "Editor"},
		{View(42), "Unknown"},
	}

	for _, test := range tests {
		if test.view.String() != test.expected {
			t.Errorf("View(%d).String() = %s, expected %s", test.view, test.view.String(), test.expected)
		}
	}
}

func TestSelectAlbum(t *testing.T) {
	s := New(project.New())

	if err := s.SelectAlbum("yurundarakun"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if s.View() != ViewImages {
		t.Errorf("Expected ImageBrowse view, got %s", s.View())
	}

	album, ok := s.Album()
	if !ok || album.ID != "yurundarakun" {
		t.Errorf("Expected yurundarakun to be selected, got %+v", album)
	}
	if len(s.Images()) != 304 {
		t.Errorf("Expected 304 images, got %d", len(s.Images()))
	}
}

func TestSelectAlbum_Unknown(t *testing.T) {
	s := New(project.New())

	err := s.SelectAlbum("missing")
	if !errors.Is(err, ErrUnknownAlbum) {
		t.Errorf("Expected ErrUnknownAlbum, got %v", err)
	}
	if s.View() != ViewCatalog {
		t.Errorf("Expected to stay in Catalog, got %s", s.View())
	}
}

func TestSelectImage(t *testing.T) {
	p := project.New()
	s := New(p)

	if err := s.SelectAlbum("menherakun"); err != nil {
		t.Fatalf("SelectAlbum failed: %v", err)
	}

	url := s.Images()[4].HighResURL
	id, err := s.SelectImage(url)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if s.View() != ViewEditor {
		t.Errorf("Expected Editor view, got %s", s.View())
	}

	m, ok := p.Current()
	if !ok || m.ID != id || m.ImageURL != url {
		t.Errorf("Expected current meme %s for %s, got %+v", id, url, m)
	}
}

func TestInvalidTransitions(t *testing.T) {
	s := New(project.New())

	if _, err := s.SelectImage("/images/a/1.png"); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("SelectImage from Catalog: expected ErrInvalidTransition, got %v", err)
	}
	if !s.Project().IsEmpty() {
		t.Error("Rejected SelectImage must not append a meme")
	}

	if err := s.SelectAlbum("menherachan"); err != nil {
		t.Fatalf("SelectAlbum failed: %v", err)
	}
	if err := s.SelectAlbum("menherakun"); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("SelectAlbum from ImageBrowse: expected ErrInvalidTransition, got %v", err)
	}

	if _, err := s.SelectImage("/images/menherachanX2/1.png"); err != nil {
		t.Fatalf("SelectImage failed: %v", err)
	}
	if _, err := s.SelectImage("/images/menherachanX2/2.png"); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("SelectImage from Editor: expected ErrInvalidTransition, got %v", err)
	}
}

func TestBackToCatalog_KeepsProject(t *testing.T) {
	s := New(project.New())

	if err := s.SelectAlbum("menherachan"); err != nil {
		t.Fatalf("SelectAlbum failed: %v", err)
	}
	if _, err := s.SelectImage("/images/menherachanX2/3.png"); err != nil {
		t.Fatalf("SelectImage failed: %v", err)
	}

	s.BackToCatalog()

	if s.View() != ViewCatalog {
		t.Errorf("Expected Catalog view, got %s", s.View())
	}
	if _, ok := s.Album(); ok {
		t.Error("Expected album to be dropped on return to catalog")
	}
	if s.Images() != nil {
		t.Error("Expected images to be dropped on return to catalog")
	}
	if s.Project().Len() != 1 {
		t.Errorf("Expected project to keep 1 meme, got %d", s.Project().Len())
	}

	// Adding another image goes through the album selection again
	if err := s.SelectAlbum("oniichanisdonefor"); err != nil {
		t.Fatalf("SelectAlbum failed: %v", err)
	}
	if _, err := s.SelectImage("/images/oniichanisdonefor/9.png"); err != nil {
		t.Fatalf("SelectImage failed: %v", err)
	}
	if s.Project().Len() != 2 || s.Project().Cursor() != 1 {
		t.Errorf("Expected 2 memes with cursor 1, got %d/%d", s.Project().Len(), s.Project().Cursor())
	}
}

func TestEditorEmpty(t *testing.T) {
	s := New(project.New())

	if s.EditorEmpty() {
		t.Error("Catalog view is not the empty editor")
	}

	_ = s.SelectAlbum("menherachan")
	_, _ = s.SelectImage("/images/menherachanX2/1.png")
	if s.EditorEmpty() {
		t.Error("Editor with a meme is not empty")
	}

	s.Project().Remove(0)
	if !s.EditorEmpty() {
		t.Error("Expected empty editor after removing the only meme")
	}
}

func TestOnViewChange(t *testing.T) {
	s := New(project.New())

	var seen []View
	s.OnViewChange(func(v View) { seen = append(seen, v) })

	_ = s.SelectAlbum("menherachan")
	_, _ = s.SelectImage("/images/menherachanX2/1.png")
	s.BackToCatalog()
	_ = s.SelectAlbum("nope")

	expected := []View{ViewImages, ViewEditor, ViewCatalog}
	if len(seen) != len(expected) {
		t.Fatalf("Expected %d transitions, got %d (%v)", len(expected), len(seen), seen)
	}
	for i := range expected {
		if seen[i] != expected[i] {
			t.Errorf("transition %d: got %s, expected %s", i, seen[i], expected[i])
		}
	}
}

package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ytget/meme-maker/internal/catalog"
	"github.com/ytget/meme-maker/internal/model"
	"github.com/ytget/meme-maker/internal/project"
	"github.com/ytget/meme-maker/internal/session"
)

// ErrEmptyManifest is returned for a manifest without memes
var ErrEmptyManifest = errors.New("manifest lists no memes")

// Entry is one meme of a batch manifest
type Entry struct {
	Album  string `yaml:"album"`
	Index  int    `yaml:"index"` // one-based image number within the album
	Top    string `yaml:"top"`
	Bottom string `yaml:"bottom"`
	Size   int    `yaml:"size"` // 0 keeps the default font size
}

// Manifest describes a batch of memes exported in order
type Manifest struct {
	Output  string  `yaml:"output"`
	DelayMs *int    `yaml:"delay_ms"`
	Memes   []Entry `yaml:"memes"`
}

// LoadManifest reads and validates a manifest file
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	m, err := ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// ParseManifest decodes a YAML manifest. Unknown fields are rejected.
func ParseManifest(data []byte) (*Manifest, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks every entry against the catalog
func (m *Manifest) Validate() error {
	if len(m.Memes) == 0 {
		return ErrEmptyManifest
	}
	if m.DelayMs != nil && *m.DelayMs < 0 {
		return fmt.Errorf("negative delay_ms %d", *m.DelayMs)
	}
	for i, e := range m.Memes {
		if _, err := e.ImageURL(); err != nil {
			return fmt.Errorf("meme %d: %w", i+1, err)
		}
	}
	return nil
}

// Delay returns the pause between exports, or def when the manifest sets none
func (m *Manifest) Delay(def time.Duration) time.Duration {
	if m.DelayMs == nil {
		return def
	}
	return time.Duration(*m.DelayMs) * time.Millisecond
}

// ImageURL returns the high resolution image the entry is captioned on
func (e Entry) ImageURL() (string, error) {
	album, ok := catalog.Lookup(e.Album)
	if !ok {
		return "", fmt.Errorf("%w: %s", session.ErrUnknownAlbum, e.Album)
	}
	if e.Index < catalog.FirstImageIndex || e.Index > album.ImageCount {
		return "", fmt.Errorf("album %s has no image %d (1-%d)", album.ID, e.Index, album.ImageCount)
	}
	return catalog.ImageURL(album.HighResID, e.Index), nil
}

// Project builds the caption project the entries describe
func (m *Manifest) Project() (*project.Project, error) {
	p := project.New()
	for i, e := range m.Memes {
		url, err := e.ImageURL()
		if err != nil {
			return nil, fmt.Errorf("meme %d: %w", i+1, err)
		}
		p.Append(url)
		p.Update(i, model.FieldTopText, e.Top)
		p.Update(i, model.FieldBottomText, e.Bottom)
		if e.Size != 0 {
			p.Update(i, model.FieldFontSize, e.Size)
		}
	}
	return p, nil
}

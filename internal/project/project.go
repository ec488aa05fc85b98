package project

import (
	"sync"

	"k8s.io/klog/v2"

	"github.com/ytget/meme-maker/internal/model"
)

// Project is the caption project list. The cursor always addresses a meme
// when the list is non-empty and is 0 when it is empty.
type Project struct {
	mu       sync.RWMutex
	memes    []model.Meme
	cursor   int
	onChange []func()
}

// New creates an empty project
func New() *Project {
	return &Project{memes: make([]model.Meme, 0)}
}

// OnChange registers a listener called after every mutation, outside the lock
func (p *Project) OnChange(fn func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onChange = append(p.onChange, fn)
}

// Append adds a meme for the image and moves the cursor to it
func (p *Project) Append(imageURL string) string {
	meme := model.NewMeme(imageURL)

	p.mu.Lock()
	p.memes = append(p.memes, meme)
	p.cursor = len(p.memes) - 1
	p.mu.Unlock()

	klog.V(1).Infof("appended meme %s (%s) at %d", meme.ID, imageURL, p.Cursor())
	p.notify()
	return meme.ID
}

// Update replaces the meme at index with a copy carrying the new field value.
// An out-of-range index or a value of the wrong type is a no-op; the font size
// is clamped to the slider bounds. It reports whether the meme changed.
func (p *Project) Update(index int, field model.Field, value any) bool {
	p.mu.Lock()
	if index < 0 || index >= len(p.memes) {
		p.mu.Unlock()
		return false
	}

	updated, err := p.memes[index].With(field, value)
	if err != nil {
		p.mu.Unlock()
		klog.Warningf("ignoring update of meme %d: %v", index, err)
		return false
	}
	if updated == p.memes[index] {
		p.mu.Unlock()
		return false
	}
	p.memes[index] = updated
	p.mu.Unlock()

	p.notify()
	return true
}

// Remove deletes the meme at index and pulls the cursor back inside the list
func (p *Project) Remove(index int) {
	p.mu.Lock()
	if index < 0 || index >= len(p.memes) {
		p.mu.Unlock()
		return
	}

	p.memes = append(p.memes[:index:index], p.memes[index+1:]...)
	if p.cursor >= len(p.memes) {
		p.cursor = max(len(p.memes)-1, 0)
	}
	p.mu.Unlock()

	p.notify()
}

// Len returns the number of memes
func (p *Project) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.memes)
}

// IsEmpty reports whether the project has no memes
func (p *Project) IsEmpty() bool {
	return p.Len() == 0
}

// At returns the meme at index
func (p *Project) At(index int) (model.Meme, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if index < 0 || index >= len(p.memes) {
		return model.Meme{}, false
	}
	return p.memes[index], true
}

// Memes returns a snapshot of the list
func (p *Project) Memes() []model.Meme {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]model.Meme, len(p.memes))
	copy(out, p.memes)
	return out
}

// Cursor returns the index of the meme shown in the editor
func (p *Project) Cursor() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.cursor
}

// Current returns the meme under the cursor
func (p *Project) Current() (model.Meme, bool) {
	return p.At(p.Cursor())
}

// SetCursor moves the cursor, clamped to the list
func (p *Project) SetCursor(index int) {
	p.mu.Lock()
	switch {
	case len(p.memes) == 0:
		index = 0
	case index < 0:
		index = 0
	case index >= len(p.memes):
		index = len(p.memes) - 1
	}
	changed := index != p.cursor
	p.cursor = index
	p.mu.Unlock()

	if changed {
		p.notify()
	}
}

// HasPrev reports whether the cursor can move back
func (p *Project) HasPrev() bool {
	return p.Cursor() > 0
}

// HasNext reports whether the cursor can move forward
func (p *Project) HasNext() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.cursor < len(p.memes)-1
}

// Prev moves the cursor one meme back, stopping at the first
func (p *Project) Prev() {
	p.SetCursor(p.Cursor() - 1)
}

// Next moves the cursor one meme forward, stopping at the last
func (p *Project) Next() {
	p.SetCursor(p.Cursor() + 1)
}

// notify calls the change listeners
func (p *Project) notify() {
	p.mu.RLock()
	listeners := make([]func(), len(p.onChange))
	copy(listeners, p.onChange)
	p.mu.RUnlock()

	for _, fn := range listeners {
		fn()
	}
}

package model

import (
	"fmt"
	"math"

	"github.com/google/uuid"
)

// Font size bounds of the editor slider
const (
	MinFontSize     = 10
	MaxFontSize     = 80
	DefaultFontSize = 40
)

// Outline width is fontSize/OutlineDivisor, never below MinOutlineWidth
const (
	MinOutlineWidth = 2.0
	OutlineDivisor  = 20.0
)

// Field names an editable caption field
type Field string

const (
	FieldTopText    Field = "topText"
	FieldBottomText Field = "bottomText"
	FieldFontSize   Field = "fontSize"
)

// String returns the string representation of Field
func (f Field) String() string {
	return string(f)
}

// Meme is one captioned image in progress. Two memes may share a base image
// and are still independent.
type Meme struct {
	ID         string `json:"id" yaml:"id"`
	ImageURL   string `json:"image_url" yaml:"image_url"`
	TopText    string `json:"top_text" yaml:"top_text"`
	BottomText string `json:"bottom_text" yaml:"bottom_text"`
	FontSize   int    `json:"font_size" yaml:"font_size"`
}

// NewMeme creates a meme with empty captions and the default font size
func NewMeme(imageURL string) Meme {
	return Meme{
		ID:       uuid.NewString(),
		ImageURL: imageURL,
		FontSize: DefaultFontSize,
	}
}

// ClampFontSize forces a font size into [MinFontSize, MaxFontSize]
func ClampFontSize(size int) int {
	if size < MinFontSize {
		return MinFontSize
	}
	if size > MaxFontSize {
		return MaxFontSize
	}
	return size
}

// OutlineWidth returns the caption stroke width for the meme's font size
func (m Meme) OutlineWidth() float64 {
	return math.Max(MinOutlineWidth, float64(m.FontSize)/OutlineDivisor)
}

// HasCaption reports whether any caption text is set
func (m Meme) HasCaption() bool {
	return m.TopText != "" || m.BottomText != ""
}

// With returns a copy of the meme carrying the new field value.
// Text fields take a string; the font size takes an int and is clamped.
func (m Meme) With(field Field, value any) (Meme, error) {
	switch field {
	case FieldTopText, FieldBottomText:
		text, ok := value.(string)
		if !ok {
			return m, fmt.Errorf("field %s expects a string, got %T", field, value)
		}
		if field == FieldTopText {
			m.TopText = text
		} else {
			m.BottomText = text
		}
	case FieldFontSize:
		size, ok := value.(int)
		if !ok {
			return m, fmt.Errorf("field %s expects an int, got %T", field, value)
		}
		m.FontSize = ClampFontSize(size)
	default:
		return m, fmt.Errorf("unknown caption field: %s", field)
	}
	return m, nil
}

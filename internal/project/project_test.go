package project

import (
	"testing"

	"github.com/ytget/meme-maker/internal/model"
)

func TestNew(t *testing.T) {
	p := New()

	if !p.IsEmpty() {
		t.Errorf("Expected empty project, got %d memes", p.Len())
	}
	if p.Cursor() != 0 {
		t.Errorf("Expected cursor 0, got %d", p.Cursor())
	}
	if _, ok := p.Current(); ok {
		t.Error("Expected no current meme in an empty project")
	}
}

func TestAppend(t *testing.T) {
	p := New()

	id1 := p.Append("/images/a/1.png")
	if p.Len() != 1 || p.Cursor() != 0 {
		t.Fatalf("After first append: len=%d cursor=%d, expected 1/0", p.Len(), p.Cursor())
	}

	id2 := p.Append("/images/a/1.png")
	if id1 == id2 {
		t.Error("Expected distinct IDs for the same image selected twice")
	}
	if p.Cursor() != 1 {
		t.Errorf("Expected cursor to move to the new meme, got %d", p.Cursor())
	}

	m, ok := p.Current()
	if !ok {
		t.Fatal("Expected a current meme")
	}
	if m.ID != id2 || m.FontSize != model.DefaultFontSize || m.TopText != "" || m.BottomText != "" {
		t.Errorf("Unexpected current meme: %+v", m)
	}
}

func TestUpdate(t *testing.T) {
	p := New()
	p.Append("/images/a/1.png")
	p.Append("/images/a/2.png")

	if !p.Update(0, model.FieldTopText, "top") {
		t.Error("Expected top text update to report a change")
	}
	if !p.Update(0, model.FieldBottomText, "bottom") {
		t.Error("Expected bottom text update to report a change")
	}
	if !p.Update(0, model.FieldFontSize, 60) {
		t.Error("Expected font size update to report a change")
	}

	m, _ := p.At(0)
	if m.TopText != "top" || m.BottomText != "bottom" || m.FontSize != 60 {
		t.Errorf("Unexpected meme after updates: %+v", m)
	}

	other, _ := p.At(1)
	if other.TopText != "" || other.FontSize != model.DefaultFontSize {
		t.Errorf("Update of index 0 leaked into index 1: %+v", other)
	}

	// Same value is not a change
	if p.Update(0, model.FieldTopText, "top") {
		t.Error("Expected identical value to report no change")
	}
}

func TestUpdate_FontSizeStaysInRange(t *testing.T) {
	p := New()
	p.Append("/images/a/1.png")

	tests := []struct {
		value    int
		expected int
	}{
		{5, model.MinFontSize},
		{90, model.MaxFontSize},
		{10, 10},
		{80, 80},
		{33, 33},
	}

	for _, test := range tests {
		p.Update(0, model.FieldFontSize, test.value)
		m, _ := p.At(0)
		if m.FontSize != test.expected {
			t.Errorf("Update(fontSize=%d) stored %d, expected %d", test.value, m.FontSize, test.expected)
		}
	}
}

func TestUpdate_InvalidIsNoop(t *testing.T) {
	p := New()
	p.Append("/images/a/1.png")
	before := p.Memes()

	calls := 0
	p.OnChange(func() { calls++ })

	p.Update(-1, model.FieldTopText, "x")
	p.Update(1, model.FieldTopText, "x")
	p.Update(0, model.FieldFontSize, "40")
	p.Update(0, model.Field("imageUrl"), "/other.png")

	after := p.Memes()
	if after[0] != before[0] {
		t.Errorf("Expected no change, got %+v -> %+v", before[0], after[0])
	}
	if calls != 0 {
		t.Errorf("Expected no change notifications, got %d", calls)
	}
}

func TestRemove_CursorClamp(t *testing.T) {
	tests := []struct {
		name           string
		count          int
		cursor         int
		remove         int
		expectedLen    int
		expectedCursor int
	}{
		{"remove last while on it", 3, 2, 2, 2, 1},
		{"remove first while on last", 3, 2, 0, 2, 1},
		{"remove middle while on first", 3, 0, 1, 2, 0},
		{"remove only", 1, 0, 0, 0, 0},
		{"remove after cursor", 3, 0, 2, 2, 0},
		{"out of range", 2, 1, 5, 2, 1},
	}

	for _, test := range tests {
		p := New()
		for i := 0; i < test.count; i++ {
			p.Append("/images/a/1.png")
		}
		p.SetCursor(test.cursor)
		p.Remove(test.remove)

		if p.Len() != test.expectedLen {
			t.Errorf("%s: len = %d, expected %d", test.name, p.Len(), test.expectedLen)
		}
		if p.Cursor() != test.expectedCursor {
			t.Errorf("%s: cursor = %d, expected %d", test.name, p.Cursor(), test.expectedCursor)
		}
	}
}

func TestAppendThenRemoveRestores(t *testing.T) {
	p := New()
	p.Append("/images/a/1.png")
	p.Append("/images/a/2.png")
	p.Update(1, model.FieldTopText, "keep")
	p.SetCursor(1)

	before := p.Memes()
	beforeCursor := p.Cursor()

	p.Append("/images/a/3.png")
	p.Remove(p.Len() - 1)

	after := p.Memes()
	if len(after) != len(before) {
		t.Fatalf("Expected %d memes, got %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("meme %d differs: %+v vs %+v", i, before[i], after[i])
		}
	}
	if p.Cursor() != beforeCursor {
		t.Errorf("Expected cursor %d, got %d", beforeCursor, p.Cursor())
	}
}

func TestCursorInvariant(t *testing.T) {
	p := New()
	ops := []struct {
		append bool
		index  int
	}{
		{true, 0}, {true, 0}, {true, 0}, {false, 1}, {false, 0},
		{true, 0}, {false, 1}, {false, 0}, {false, 0}, {true, 0},
		{false, 3}, {true, 0}, {true, 0}, {false, 2},
	}

	for i, op := range ops {
		if op.append {
			p.Append("/images/a/1.png")
		} else {
			p.Remove(op.index)
		}

		n, c := p.Len(), p.Cursor()
		if n > 0 && (c < 0 || c >= n) {
			t.Fatalf("step %d: cursor %d outside [0,%d)", i, c, n)
		}
		if n == 0 && c != 0 {
			t.Fatalf("step %d: cursor %d on empty list", i, c)
		}
	}
}

func TestPrevNext(t *testing.T) {
	p := New()
	p.Append("/images/a/1.png")
	p.Append("/images/a/2.png")
	p.Append("/images/a/3.png")

	if p.HasNext() {
		t.Error("Expected no next at the last meme")
	}
	p.Next()
	if p.Cursor() != 2 {
		t.Errorf("Next at the boundary moved the cursor to %d", p.Cursor())
	}

	p.Prev()
	p.Prev()
	if p.Cursor() != 0 {
		t.Errorf("Expected cursor 0, got %d", p.Cursor())
	}
	if p.HasPrev() {
		t.Error("Expected no prev at the first meme")
	}
	p.Prev()
	if p.Cursor() != 0 {
		t.Errorf("Prev at the boundary moved the cursor to %d", p.Cursor())
	}
	if !p.HasNext() {
		t.Error("Expected next from the first meme")
	}
}

func TestOnChange(t *testing.T) {
	p := New()
	calls := 0
	p.OnChange(func() { calls++ })

	p.Append("/images/a/1.png")
	p.Update(0, model.FieldTopText, "hi")
	p.Append("/images/a/2.png")
	p.Prev()
	p.Remove(0)

	if calls != 5 {
		t.Errorf("Expected 5 change notifications, got %d", calls)
	}
}

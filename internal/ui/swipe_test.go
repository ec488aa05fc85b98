package ui

import (
	"testing"

	"fyne.io/fyne/v2"
)

func TestSwipeDirection(t *testing.T) {
	tests := []struct {
		name     string
		dx, dy   float32
		expected GestureType
	}{
		{"too short", 20, -10, GestureNone},
		{"left", -80, 10, GestureSwipeLeft},
		{"right", 80, -30, GestureSwipeRight},
		{"up", 5, -60, GestureNone},
		{"down", -20, 90, GestureNone},
		{"diagonal", 70, 80, GestureNone},
		{"at threshold", DefaultSwipeThreshold, 0, GestureSwipeRight},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := swipeDirection(test.dx, test.dy, DefaultSwipeThreshold); got != test.expected {
				t.Errorf("swipeDirection(%v, %v) = %v, expected %v", test.dx, test.dy, got, test.expected)
			}
		})
	}
}

func TestSwipeArea_DragEnd(t *testing.T) {
	var gestures []GestureType
	s := newSwipeArea(func(g GestureType) {
		gestures = append(gestures, g)
	})

	// A long drag in small steps is one swipe
	for i := 0; i < 4; i++ {
		s.Dragged(&fyne.DragEvent{Dragged: fyne.Delta{DX: -20}})
	}
	s.DragEnd()

	// The distance is reset after each drag
	s.Dragged(&fyne.DragEvent{Dragged: fyne.Delta{DX: 10}})
	s.DragEnd()

	if len(gestures) != 1 || gestures[0] != GestureSwipeLeft {
		t.Errorf("gestures = %v, expected one left swipe", gestures)
	}
}

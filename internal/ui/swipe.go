package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// GestureType represents a recognised swipe
type GestureType int

const (
	GestureNone GestureType = iota
	GestureSwipeLeft
	GestureSwipeRight
)

// DefaultSwipeThreshold is the minimum drag distance of a swipe
const DefaultSwipeThreshold float32 = 50.0

// swipeDirection classifies a mostly horizontal drag; vertical drags are ignored
func swipeDirection(dx, dy, threshold float32) GestureType {
	absDx, absDy := dx, dy
	if absDx < 0 {
		absDx = -absDx
	}
	if absDy < 0 {
		absDy = -absDy
	}

	if absDx < threshold || absDx <= absDy {
		return GestureNone
	}
	if dx > 0 {
		return GestureSwipeRight
	}
	return GestureSwipeLeft
}

// swipeArea is a transparent overlay reporting swipes made by touch or mouse drag
type swipeArea struct {
	widget.BaseWidget

	onGesture func(GestureType)
	threshold float32
	dx, dy    float32
}

func newSwipeArea(onGesture func(GestureType)) *swipeArea {
	s := &swipeArea{onGesture: onGesture, threshold: DefaultSwipeThreshold}
	s.ExtendBaseWidget(s)
	return s
}

func (s *swipeArea) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(canvas.NewRectangle(color.Transparent))
}

// Dragged accumulates the drag distance
func (s *swipeArea) Dragged(ev *fyne.DragEvent) {
	s.dx += ev.Dragged.DX
	s.dy += ev.Dragged.DY
}

// DragEnd reports the swipe, if the drag was long enough
func (s *swipeArea) DragEnd() {
	gesture := swipeDirection(s.dx, s.dy, s.threshold)
	s.dx, s.dy = 0, 0
	if gesture != GestureNone && s.onGesture != nil {
		s.onGesture(gesture)
	}
}

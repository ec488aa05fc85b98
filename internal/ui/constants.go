package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconClose    = "×"
)

// Text fragments
const (
	FontSizeFormat = "%dpx"
)

// Grid sizing
const (
	AlbumCardWidth  float32 = 180
	AlbumCardHeight float32 = 220
	ImageTileSize   float32 = 120
)

// Editor sizing
const (
	PreviewMinWidth  float32 = 480
	PreviewMinHeight float32 = 480
	SliderStep               = 1
)

// Window sizing
const (
	WindowWidth  float32 = 960
	WindowHeight float32 = 720
)

// Thumbnail loading
const (
	ThumbnailWorkers = 4
)

// Toast notification behavior
const (
	ToastAutoHide = 5 * time.Second
)

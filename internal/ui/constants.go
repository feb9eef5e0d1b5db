package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Static texts that are not localized
const (
	FooterText = "© 2024 tsubasa_phtela"
)

// Layout sizing
const (
	WindowWidth  float32 = 420
	WindowHeight float32 = 640

	RowMinHeight float32 = 40
	RowIconSize  float32 = 20
	SectionGap   float32 = 8
)

// Swipe detection
const (
	// SwipeDeleteDistance is how far a row has to be dragged left to delete it
	SwipeDeleteDistance float32 = 80
)

// Status line behavior
const (
	StatusAutoHide = 3 * time.Second
)

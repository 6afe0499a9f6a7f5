package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconRandom   = "🎲"
	IconClear    = "×"
	IconSave     = "💾"
	IconDog      = "🐶"
	IconError    = "❌"
	IconLanguage = "🌐"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
)

// Layout sizing
const (
	BreedListWidth    float32 = 220
	BreedRowHeight    float32 = 32
	GalleryCellWidth  float32 = 240
	GalleryCellHeight float32 = 220
	ImageCardPadding  float32 = 8
)

// Toast notification sizing and behavior
const (
	ToastAutoHide = 5 * time.Second
)

// Debounce durations
const (
	SearchDebounce = 250 * time.Millisecond
)

// Image resource cache behavior
const (
	ImageCacheTTL     = 10 * time.Minute
	ImageCacheCleanup = 5 * time.Minute
)

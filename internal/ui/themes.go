package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/woofget/breed-gallery/internal/config"
)

// GalleryTheme renders the UI in one of three palettes: light, dark, or the
// warm brown "dog" palette. Light and dark pin the variant; dog overrides the
// key colors on top of the light variant.
type GalleryTheme struct {
	choice config.ThemeChoice
}

// NewTheme creates a theme for the given choice
func NewTheme(choice config.ThemeChoice) fyne.Theme {
	return &GalleryTheme{choice: choice}
}

// Color returns theme colors
func (t *GalleryTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch t.choice {
	case config.ThemeLight:
		variant = theme.VariantLight
	case config.ThemeDark:
		variant = theme.VariantDark
	case config.ThemeDog:
		switch name {
		case theme.ColorNameBackground:
			return color.RGBA{R: 247, G: 239, B: 226, A: 255} // Warm cream
		case theme.ColorNameForeground:
			return color.RGBA{R: 62, G: 39, B: 35, A: 255} // Dark brown text
		case theme.ColorNamePrimary:
			return color.RGBA{R: 141, G: 85, B: 36, A: 255} // Saddle brown
		case theme.ColorNameButton:
			return color.RGBA{R: 222, G: 203, B: 175, A: 255} // Tan
		case theme.ColorNameInputBackground:
			return color.RGBA{R: 255, G: 250, B: 240, A: 255} // Floral white
		case theme.ColorNameSuccess:
			return color.RGBA{R: 85, G: 107, B: 47, A: 255} // Olive green
		case theme.ColorNameError:
			return color.RGBA{R: 165, G: 42, B: 42, A: 255} // Brick red
		}
		variant = theme.VariantLight
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *GalleryTheme) Font(style fyne.TextStyle) fyne.Resource {
	// Use default theme fonts
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *GalleryTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	// Use default theme icons
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *GalleryTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3 // Reduced from default 4
	case theme.SizeNameInnerPadding:
		return 6 // Reduced from default 8
	case theme.SizeNameLineSpacing:
		return 2 // Reduced from default 4
	case theme.SizeNameScrollBar:
		return 12 // Reduced from default 16
	case theme.SizeNameText:
		return 13 // Reduced from default 14
	case theme.SizeNameHeadingText:
		return 16 // Reduced from default 18
	case theme.SizeNameCaptionText:
		return 10 // Reduced from default 11
	case theme.SizeNameInputRadius:
		return 3 // Reduced from default 5
	case theme.SizeNameSelectionRadius:
		return 2 // Reduced from default 3
	}

	// Use default theme for everything else
	return theme.DefaultTheme().Size(name)
}

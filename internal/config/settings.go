package config

import (
	"fyne.io/fyne/v2"

	"github.com/woofget/breed-gallery/internal/platform"
)

// ThemeChoice selects the application color theme
type ThemeChoice string

const (
	ThemeLight ThemeChoice = "light"
	ThemeDark  ThemeChoice = "dark"
	ThemeDog   ThemeChoice = "dog"
)

// Settings keys for Fyne preferences
const (
	KeyTheme           = "app_theme"
	KeyImagesPerBreed  = "images_per_breed"
	KeySaveDir         = "save_directory"
	KeyLanguage        = "app_language"
	KeyAutoRevealSaved = "auto_reveal_on_save"
)

// Default values
const (
	DefaultTheme           = ThemeLight
	DefaultImagesPerBreed  = 3
	DefaultLanguage        = "system"
	DefaultAutoRevealSaved = false
)

// Clamp bounds for images per breed
const (
	MinImagesPerBreed = 1
	MaxImagesPerBreed = 10
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetTheme returns the configured theme choice
func (s *Settings) GetTheme() ThemeChoice {
	theme := s.app.Preferences().String(KeyTheme)
	switch ThemeChoice(theme) {
	case ThemeLight, ThemeDark, ThemeDog:
		return ThemeChoice(theme)
	}
	s.SetTheme(DefaultTheme)
	return DefaultTheme
}

// SetTheme sets the theme choice
func (s *Settings) SetTheme(theme ThemeChoice) {
	s.app.Preferences().SetString(KeyTheme, string(theme))
}

// GetThemeOptions returns available theme choices
func (s *Settings) GetThemeOptions() []ThemeChoice {
	return []ThemeChoice{ThemeLight, ThemeDark, ThemeDog}
}

// GetImagesPerBreed returns how many images are fetched per selected breed
func (s *Settings) GetImagesPerBreed() int {
	value := s.app.Preferences().Int(KeyImagesPerBreed)
	if value <= 0 {
		s.SetImagesPerBreed(DefaultImagesPerBreed)
		return DefaultImagesPerBreed
	}
	return value
}

// SetImagesPerBreed sets how many images are fetched per selected breed
func (s *Settings) SetImagesPerBreed(count int) {
	if count < MinImagesPerBreed {
		count = MinImagesPerBreed
	}
	if count > MaxImagesPerBreed {
		count = MaxImagesPerBreed
	}
	s.app.Preferences().SetInt(KeyImagesPerBreed, count)
}

// GetSaveDirectory returns the directory saved images are written to
func (s *Settings) GetSaveDirectory() string {
	dir := s.app.Preferences().String(KeySaveDir)
	if dir == "" {
		defaultDir, err := platform.GetHomePicturesDir()
		if err != nil {
			defaultDir = "/tmp/breed-gallery"
		}
		s.SetSaveDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetSaveDirectory sets the directory saved images are written to
func (s *Settings) SetSaveDirectory(dir string) {
	s.app.Preferences().SetString(KeySaveDir, dir)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// GetAutoRevealSaved returns whether to reveal saved images in the file manager
func (s *Settings) GetAutoRevealSaved() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRevealSaved, DefaultAutoRevealSaved)
}

// SetAutoRevealSaved sets whether to reveal saved images in the file manager
func (s *Settings) SetAutoRevealSaved(autoReveal bool) {
	s.app.Preferences().SetBool(KeyAutoRevealSaved, autoReveal)
}

package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestTheme(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	theme := settings.GetTheme()
	if theme != DefaultTheme {
		t.Errorf("Expected default theme %s, got %s", DefaultTheme, theme)
	}

	// Test setting custom value
	settings.SetTheme(ThemeDog)
	if settings.GetTheme() != ThemeDog {
		t.Errorf("Expected theme %s, got %s", ThemeDog, settings.GetTheme())
	}

	// Unknown stored value falls back to default
	app.Preferences().SetString(KeyTheme, "neon")
	if settings.GetTheme() != DefaultTheme {
		t.Errorf("Expected unknown theme to fall back to %s, got %s", DefaultTheme, settings.GetTheme())
	}
}

func TestImagesPerBreed(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	count := settings.GetImagesPerBreed()
	if count != DefaultImagesPerBreed {
		t.Errorf("Expected default images per breed %d, got %d", DefaultImagesPerBreed, count)
	}

	// Test setting custom value
	settings.SetImagesPerBreed(5)
	if settings.GetImagesPerBreed() != 5 {
		t.Errorf("Expected images per breed 5, got %d", settings.GetImagesPerBreed())
	}

	// Test boundary values
	settings.SetImagesPerBreed(0) // Should be clamped to 1
	if settings.GetImagesPerBreed() != MinImagesPerBreed {
		t.Error("Images per breed should be clamped to minimum 1")
	}

	settings.SetImagesPerBreed(15) // Should be clamped to 10
	if settings.GetImagesPerBreed() != MaxImagesPerBreed {
		t.Error("Images per breed should be clamped to maximum 10")
	}
}

func TestSaveDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	dir := settings.GetSaveDirectory()
	if dir == "" {
		t.Error("Save directory should not be empty")
	}

	// Test setting custom value
	customDir := "/custom/pictures"
	settings.SetSaveDirectory(customDir)
	if settings.GetSaveDirectory() != customDir {
		t.Errorf("Expected save directory %s, got %s", customDir, settings.GetSaveDirectory())
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("en")
	if settings.GetLanguage() != "en" {
		t.Errorf("Expected language en, got %s", settings.GetLanguage())
	}
}

func TestAutoRevealSaved(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetAutoRevealSaved() != DefaultAutoRevealSaved {
		t.Errorf("Expected default auto-reveal %v", DefaultAutoRevealSaved)
	}

	settings.SetAutoRevealSaved(true)
	if !settings.GetAutoRevealSaved() {
		t.Error("Expected auto-reveal to be enabled")
	}
}

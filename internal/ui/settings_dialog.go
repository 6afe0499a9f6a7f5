package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/woofget/breed-gallery/internal/config"
)

// Dialog size constants
const (
	SettingsDialogWidth  = 460
	SettingsDialogHeight = 400
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	saveDirEntry    *widget.Entry
	imagesPerEntry  *widget.Entry
	themeSelect     *widget.Select
	languageSelect  *widget.Select
	autoRevealCheck *widget.Check
}

// ShowSettingsDialog creates and shows the settings dialog. onSaved is
// invoked after a confirmed save.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Save directory selection
	sd.saveDirEntry = widget.NewEntry()
	sd.saveDirEntry.SetPlaceHolder("Save directory path")

	browseDirBtn := widget.NewButton(sd.localization.GetText(KeyBrowse), sd.onBrowseDirectory)
	saveDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.saveDirEntry)

	// Images per breed
	sd.imagesPerEntry = widget.NewEntry()
	sd.imagesPerEntry.SetPlaceHolder("1-10")

	// Theme selection
	themeOptions := []string{}
	for _, choice := range sd.settings.GetThemeOptions() {
		themeOptions = append(themeOptions, string(choice))
	}
	sd.themeSelect = widget.NewSelect(themeOptions, nil)

	// Language selection
	languageOptions := []string{}
	languageLabels := sd.settings.GetLanguageOptions()
	for code := range languageLabels {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)
	sd.languageSelect.PlaceHolder = "Select language"

	// Auto-reveal saved images
	sd.autoRevealCheck = widget.NewCheck(sd.localization.GetText(KeyAutoRevealSaved), nil)

	// Create form
	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeySaveDirectory)+":"),
		saveDirRow,

		widget.NewLabel(sd.localization.GetText(KeyImagesPerBreed)+":"),
		sd.imagesPerEntry,

		sd.autoRevealCheck,

		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyTheme)+":"),
		sd.themeSelect,

		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	// Create dialog with buttons
	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.saveDirEntry.SetText(sd.settings.GetSaveDirectory())
	sd.imagesPerEntry.SetText(strconv.Itoa(sd.settings.GetImagesPerBreed()))
	sd.themeSelect.SetSelected(string(sd.settings.GetTheme()))
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
	sd.autoRevealCheck.SetChecked(sd.settings.GetAutoRevealSaved())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.saveDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	// Validate and save the save directory
	saveDir := sd.saveDirEntry.Text
	if saveDir != "" {
		sd.settings.SetSaveDirectory(saveDir)
	}

	// Validate and save images per breed
	imagesPerStr := sd.imagesPerEntry.Text
	if imagesPerStr != "" {
		if imagesPer, err := strconv.Atoi(imagesPerStr); err == nil {
			sd.settings.SetImagesPerBreed(imagesPer)
		}
	}

	// Save theme
	if sd.themeSelect.Selected != "" {
		sd.settings.SetTheme(config.ThemeChoice(sd.themeSelect.Selected))
	}

	// Save language
	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	sd.settings.SetAutoRevealSaved(sd.autoRevealCheck.Checked)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}

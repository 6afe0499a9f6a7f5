package ui

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/woofget/breed-gallery/internal/catalog"
	"github.com/woofget/breed-gallery/internal/config"
	"github.com/woofget/breed-gallery/internal/gallery"
	"github.com/woofget/breed-gallery/internal/model"
	"github.com/woofget/breed-gallery/internal/platform"
	"github.com/woofget/breed-gallery/internal/saver"
)

// RootUI represents the main UI structure
type RootUI struct {
	window fyne.Window
	app    fyne.App

	// Services
	catalogSvc *catalog.Service
	gallerySvc gallery.Controller
	saverSvc   saver.Saver
	settings   *config.Settings

	localization *Localization
	loader       *imageLoader

	// Left panel: breed picker
	searchEntry *widget.Entry
	breedList   *widget.List
	randomBtn   *widget.Button
	clearBtn    *widget.Button

	// Visible breeds are the catalog filtered by the search term; owned by
	// the UI thread
	visibleBreeds []string

	// Center: gallery grid
	galleryGrid   *fyne.Container
	galleryScroll *container.Scroll
	statusLabel   *widget.Label

	// Search debouncing
	searchMutex sync.Mutex
	searchTimer *time.Timer

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSpinner   *widget.ProgressBarInfinite
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, catalogSvc *catalog.Service, gallerySvc gallery.Controller, saverSvc saver.Saver, fetcher ImageFetcher) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		catalogSvc:   catalogSvc,
		gallerySvc:   gallerySvc,
		saverSvc:     saverSvc,
		settings:     settings,
		localization: localization,
		loader:       newImageLoader(fetcher),
	}

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	// Propagate persisted settings to services
	ui.gallerySvc.SetImagesPerBreed(settings.GetImagesPerBreed())
	ui.saverSvc.SetSaveDirectory(settings.GetSaveDirectory())

	// Set up callbacks for service updates
	ui.gallerySvc.SetUpdateCallback(ui.onGalleryUpdate)
	ui.saverSvc.SetUpdateCallback(ui.onSaveUpdate)

	ui.setupUI()
	ui.loadCatalog()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Create menu
	ui.createMenu()

	// Create search entry
	ui.searchEntry = widget.NewEntry()
	ui.searchEntry.SetPlaceHolder(ui.localization.GetText(KeySearchBreeds))
	ui.searchEntry.OnChanged = ui.onSearchChanged

	// Create action buttons
	ui.randomBtn = widget.NewButton(IconRandom+" "+ui.localization.GetText(KeyRandom), ui.onRandomClick)
	ui.clearBtn = widget.NewButton(ui.localization.GetText(KeyClear), ui.onClearClick)
	ui.clearBtn.Importance = widget.LowImportance

	// Create settings button
	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	// Create breed checklist
	ui.breedList = widget.NewList(
		func() int {
			return len(ui.visibleBreeds)
		},
		func() fyne.CanvasObject { return widget.NewCheck("breed", nil) },
		func(id widget.ListItemID, obj fyne.CanvasObject) { ui.updateBreedItem(id, obj) },
	)

	// Create logo
	logo, err := LoadLogoResource()
	var logoImage *canvas.Image
	if err == nil {
		logoImage = canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(32, 32))
		logoImage.FillMode = canvas.ImageFillContain
	}

	// Create top panel with search and actions
	actions := container.NewHBox(ui.randomBtn, ui.clearBtn, settingsBtn)
	var topPanel *fyne.Container
	if logoImage != nil {
		topPanel = container.NewBorder(nil, nil, logoImage, actions, ui.searchEntry)
	} else {
		topPanel = container.NewBorder(nil, nil, nil, actions, ui.searchEntry)
	}

	// Create notification panel under the search row (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Alignment = fyne.TextAlignLeading
	ui.notificationSpinner = widget.NewProgressBarInfinite()
	ui.notificationSpinner.Hide()
	ui.notificationContainer = container.NewHBox(ui.notificationSpinner, container.NewPadded(ui.notificationLabel))
	ui.notificationContainer.Hide()

	topCombined := container.NewVBox(topPanel, ui.notificationContainer)

	// Create gallery grid
	ui.galleryGrid = container.NewGridWrap(fyne.NewSize(GalleryCellWidth, GalleryCellHeight))
	ui.galleryScroll = container.NewScroll(ui.galleryGrid)
	ui.statusLabel = widget.NewLabel(ui.localization.GetText(KeyNoBreedsSelected))
	ui.statusLabel.Alignment = fyne.TextAlignCenter

	galleryPanel := container.NewBorder(ui.statusLabel, nil, nil, nil, ui.galleryScroll)

	// Left panel: breeds header + checklist
	breedsHeader := widget.NewLabelWithStyle(
		IconDog+" "+ui.localization.GetText(KeyBreeds),
		fyne.TextAlignLeading,
		fyne.TextStyle{Bold: true},
	)
	leftPanel := container.NewBorder(breedsHeader, nil, nil, nil, ui.breedList)

	split := container.NewHSplit(leftPanel, galleryPanel)
	split.SetOffset(0.25)

	content := container.NewBorder(
		topCombined, // top
		nil,         // bottom
		nil,         // left
		nil,         // right
		split,       // center
	)

	ui.window.SetContent(content)

	log.Printf("UI setup completed successfully")
}

// loadCatalog fetches the breed catalog once in the background and populates
// the picker. A failed load leaves the picker empty but keeps the UI
// interactive.
func (ui *RootUI) loadCatalog() {
	ui.showNotification(ui.localization.GetText(KeyLoadingBreeds), true)

	go func() {
		if err := ui.catalogSvc.Load(context.Background()); err != nil {
			ui.showNotification(ui.localization.GetText(KeyCatalogLoadFailed)+": "+err.Error(), false)
			return
		}

		ui.hideNotification()
		fyne.Do(func() {
			ui.refreshBreedList()
		})
	}()
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	// Settings menu item
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Theme submenu
	themeMenu := fyne.NewMenu(ui.localization.GetText(KeyTheme))
	themeLabels := map[config.ThemeChoice]string{
		config.ThemeLight: ui.localization.GetText(KeyThemeLight),
		config.ThemeDark:  ui.localization.GetText(KeyThemeDark),
		config.ThemeDog:   ui.localization.GetText(KeyThemeDog),
	}
	for _, choice := range ui.settings.GetThemeOptions() {
		themeChoice := choice // Capture for closure
		themeItem := fyne.NewMenuItem(themeLabels[choice], func() {
			ui.onThemeChange(themeChoice)
		})

		// Mark current theme
		if ui.settings.GetTheme() == choice {
			themeItem.Checked = true
		}

		themeMenu.Items = append(themeMenu.Items, themeItem)
	}

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for code, name := range availableLanguages {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	// Create main menu
	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		themeMenu,
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onThemeChange applies and persists a theme choice
func (ui *RootUI) onThemeChange(choice config.ThemeChoice) {
	ui.settings.SetTheme(choice)
	ui.app.Settings().SetTheme(NewTheme(choice))

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	// Update localization
	ui.localization.SetLanguage(langCode)

	// Save to settings
	ui.settings.SetLanguage(langCode)

	// Update UI texts
	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.searchEntry.SetPlaceHolder(ui.localization.GetText(KeySearchBreeds))
	ui.randomBtn.SetText(IconRandom + " " + ui.localization.GetText(KeyRandom))
	ui.clearBtn.SetText(ui.localization.GetText(KeyClear))

	ui.updateStatusLabel(ui.gallerySvc.Snapshot())
}

// onSearchChanged debounces search input before applying the filter
func (ui *RootUI) onSearchChanged(term string) {
	ui.searchMutex.Lock()
	defer ui.searchMutex.Unlock()

	if ui.searchTimer != nil {
		ui.searchTimer.Stop()
	}
	ui.searchTimer = time.AfterFunc(SearchDebounce, func() {
		ui.gallerySvc.SetSearchFilter(term)
		fyne.Do(func() {
			ui.refreshBreedList()
		})
	})
}

// refreshBreedList recomputes the visible breeds from the catalog and the
// current search filter. Must run on the UI thread.
func (ui *RootUI) refreshBreedList() {
	ui.visibleBreeds = ui.gallerySvc.VisibleBreeds(ui.catalogSvc.Breeds())
	ui.breedList.Refresh()
}

// updateBreedItem binds a breed checkbox row to the visible breed at id
func (ui *RootUI) updateBreedItem(id widget.ListItemID, obj fyne.CanvasObject) {
	if id >= len(ui.visibleBreeds) {
		return
	}

	name := ui.visibleBreeds[id]
	check, ok := obj.(*widget.Check)
	if !ok {
		return
	}

	// Detach the handler while syncing state so the programmatic update does
	// not fire a toggle
	check.OnChanged = nil
	check.Text = name
	check.SetChecked(ui.gallerySvc.IsSelected(name))
	check.OnChanged = func(bool) {
		ui.onToggleBreed(name)
	}
	check.Refresh()
}

// onToggleBreed handles a breed checkbox toggle
func (ui *RootUI) onToggleBreed(name string) {
	log.Printf("Toggle breed: %s", name)
	ui.gallerySvc.ToggleBreed(name)
}

// onRandomClick replaces the selection with a random pick from the catalog
func (ui *RootUI) onRandomClick() {
	breeds := ui.catalogSvc.Breeds()
	if len(breeds) == 0 {
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyCatalogLoadFailed)), ui.window.Canvas())
		return
	}

	ui.gallerySvc.LoadRandomSelection(breeds)
	ui.refreshBreedList()
}

// onClearClick empties the selection and the gallery
func (ui *RootUI) onClearClick() {
	ui.gallerySvc.ClearSelection()
	ui.refreshBreedList()
}

// onGalleryUpdate reacts to committed gallery state changes. Invoked from
// service goroutines; all widget work is marshaled onto the UI thread.
func (ui *RootUI) onGalleryUpdate(snapshot gallery.Snapshot) {
	fyne.Do(func() {
		ui.updateStatusLabel(snapshot)

		switch snapshot.Status {
		case model.GalleryLoading:
			ui.showNotificationLocked(ui.localization.GetText(KeyLoadingImages), true)
			// Keep the current grid while loading to avoid a blank flash
			return
		case model.GalleryError:
			message := ui.localization.GetText(KeyGalleryLoadFailed)
			if snapshot.Err != nil {
				message += ": " + snapshot.Err.Error()
			}
			ui.showNotificationLocked(message, false)
		default:
			ui.hideNotificationLocked()
		}

		ui.rebuildGallery(snapshot)
		ui.refreshBreedList()
	})
}

// rebuildGallery replaces the grid content with cards for the snapshot
// entries. Must run on the UI thread.
func (ui *RootUI) rebuildGallery(snapshot gallery.Snapshot) {
	// On error the previous grid stays on screen
	if snapshot.Status == model.GalleryError {
		return
	}

	cards := make([]fyne.CanvasObject, 0, len(snapshot.Entries))
	for _, entry := range snapshot.Entries {
		card := NewImageCard(entry, ui.loader)
		card.SetCallbacks(ui.onSaveImage, ui.onOpenImage)
		cards = append(cards, card)
	}

	ui.galleryGrid.Objects = cards
	ui.galleryGrid.Refresh()
	ui.galleryScroll.ScrollToTop()
}

// updateStatusLabel reflects the snapshot in the gallery header
func (ui *RootUI) updateStatusLabel(snapshot gallery.Snapshot) {
	switch snapshot.Status {
	case model.GalleryIdle:
		ui.statusLabel.SetText(ui.localization.GetText(KeyNoBreedsSelected))
	case model.GalleryLoading:
		ui.statusLabel.SetText(ui.localization.GetText(KeyLoadingImages))
	default:
		ui.statusLabel.SetText(fmt.Sprintf("%d %s%s%d", len(snapshot.Breeds),
			ui.localization.GetText(KeySelectedCount), MiddleDotSeparator, len(snapshot.Entries)))
	}
}

// onSaveImage starts a background save of the tapped image
func (ui *RootUI) onSaveImage(imageURL, breed string) {
	saveDir := ui.settings.GetSaveDirectory()
	if err := platform.CreateDirectoryIfNotExists(saveDir); err != nil {
		log.Printf("Failed to ensure save dir %s: %v", saveDir, err)
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeySaveFailed)+": "+err.Error()), ui.window.Canvas())
		return
	}

	if _, err := ui.saverSvc.SaveImage(imageURL, breed); err != nil {
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeySaveFailed)+": "+err.Error()), ui.window.Canvas())
	}
}

// onOpenImage opens the full-size image in the default browser
func (ui *RootUI) onOpenImage(imageURL string) {
	parsed, err := url.Parse(imageURL)
	if err != nil {
		log.Printf("Cannot open malformed image URL %s: %v", imageURL, err)
		return
	}
	if err := ui.app.OpenURL(parsed); err != nil {
		log.Printf("Failed to open image URL %s: %v", imageURL, err)
	}
}

// onSaveUpdate reacts to save task transitions
func (ui *RootUI) onSaveUpdate(task *model.SaveTask) {
	switch task.Status {
	case model.TaskStatusCompleted:
		fyne.Do(func() {
			widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyImageSaved)+": "+task.OutputPath), ui.window.Canvas())
		})

		if ui.settings.GetAutoRevealSaved() {
			if err := platform.OpenFileInManager(task.OutputPath); err != nil {
				log.Printf("Failed to reveal saved image %s: %v", task.OutputPath, err)
			}
		}
	case model.TaskStatusError:
		fyne.Do(func() {
			widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeySaveFailed)+": "+task.LastError), ui.window.Canvas())
		})
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		// Propagate changed settings to services
		ui.gallerySvc.SetImagesPerBreed(ui.settings.GetImagesPerBreed())
		ui.saverSvc.SetSaveDirectory(ui.settings.GetSaveDirectory())
		ui.app.Settings().SetTheme(NewTheme(ui.settings.GetTheme()))

		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeySettingsSaved)), ui.window.Canvas())
	})
}

// showNotification displays a message in the notification panel under the
// search row. When spinning is true, a spinner indicates background activity.
// Safe to call from any goroutine.
func (ui *RootUI) showNotification(message string, spinning bool) {
	fyne.Do(func() {
		ui.showNotificationLocked(message, spinning)
	})
}

// showNotificationLocked is the UI-thread body of showNotification
func (ui *RootUI) showNotificationLocked(message string, spinning bool) {
	if ui.notificationLabel == nil || ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	ui.notificationLabel.SetText(message)
	if spinning {
		ui.notificationSpinner.Show()
	} else {
		ui.notificationSpinner.Hide()
	}
	ui.notificationContainer.Show()
	ui.notificationContainer.Refresh()
}

// hideNotification hides the notification panel. Safe to call from any
// goroutine.
func (ui *RootUI) hideNotification() {
	fyne.Do(func() {
		ui.hideNotificationLocked()
	})
}

// hideNotificationLocked is the UI-thread body of hideNotification
func (ui *RootUI) hideNotificationLocked() {
	if ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	ui.notificationSpinner.Hide()
	ui.notificationContainer.Hide()
}

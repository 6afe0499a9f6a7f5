package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyBreeds            = "breeds"
	KeySearchBreeds      = "search_breeds"
	KeyRandom            = "random"
	KeyClear             = "clear"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyTheme             = "theme"
	KeyThemeLight        = "theme_light"
	KeyThemeDark         = "theme_dark"
	KeyThemeDog          = "theme_dog"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyBrowse            = "browse"
	KeySaveImage         = "save_image"
	KeyImageSaved        = "image_saved"
	KeySaveFailed        = "save_failed"
	KeySaveDirectory     = "save_directory"
	KeyImagesPerBreed    = "images_per_breed"
	KeyAutoRevealSaved   = "auto_reveal_saved"
	KeyLoadingImages     = "loading_images"
	KeyLoadingBreeds     = "loading_breeds"
	KeyCatalogLoadFailed = "catalog_load_failed"
	KeyGalleryLoadFailed = "gallery_load_failed"
	KeyNoBreedsSelected  = "no_breeds_selected"
	KeySettingsSaved     = "settings_saved"
	KeySelectedCount     = "selected_count"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Breed Gallery",
		KeyBreeds:            "Breeds",
		KeySearchBreeds:      "Search breeds...",
		KeyRandom:            "Random",
		KeyClear:             "Clear",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyTheme:             "Theme",
		KeyThemeLight:        "Light",
		KeyThemeDark:         "Dark",
		KeyThemeDog:          "Dog",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyBrowse:            "Browse",
		KeySaveImage:         "Save image",
		KeyImageSaved:        "Image saved",
		KeySaveFailed:        "Failed to save image",
		KeySaveDirectory:     "Save Directory",
		KeyImagesPerBreed:    "Images per Breed",
		KeyAutoRevealSaved:   "Reveal saved images in file manager",
		KeyLoadingImages:     "Loading images...",
		KeyLoadingBreeds:     "Loading breed catalog...",
		KeyCatalogLoadFailed: "Failed to load breed catalog",
		KeyGalleryLoadFailed: "Failed to load images",
		KeyNoBreedsSelected:  "Pick a breed to see photos",
		KeySettingsSaved:     "Settings saved successfully!",
		KeySelectedCount:     "selected",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Галерея пород",
		KeyBreeds:            "Породы",
		KeySearchBreeds:      "Поиск пород...",
		KeyRandom:            "Случайно",
		KeyClear:             "Очистить",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyTheme:             "Тема",
		KeyThemeLight:        "Светлая",
		KeyThemeDark:         "Тёмная",
		KeyThemeDog:          "Собачья",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyBrowse:            "Обзор",
		KeySaveImage:         "Сохранить фото",
		KeyImageSaved:        "Фото сохранено",
		KeySaveFailed:        "Не удалось сохранить фото",
		KeySaveDirectory:     "Папка сохранения",
		KeyImagesPerBreed:    "Фото на породу",
		KeyAutoRevealSaved:   "Показывать сохранённые фото в файловом менеджере",
		KeyLoadingImages:     "Загрузка фото...",
		KeyLoadingBreeds:     "Загрузка каталога пород...",
		KeyCatalogLoadFailed: "Не удалось загрузить каталог пород",
		KeyGalleryLoadFailed: "Не удалось загрузить фото",
		KeyNoBreedsSelected:  "Выберите породу, чтобы увидеть фото",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeySelectedCount:     "выбрано",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Galeria de Raças",
		KeyBreeds:            "Raças",
		KeySearchBreeds:      "Buscar raças...",
		KeyRandom:            "Aleatório",
		KeyClear:             "Limpar",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeyTheme:             "Tema",
		KeyThemeLight:        "Claro",
		KeyThemeDark:         "Escuro",
		KeyThemeDog:          "Cachorro",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeyBrowse:            "Navegar",
		KeySaveImage:         "Salvar imagem",
		KeyImageSaved:        "Imagem salva",
		KeySaveFailed:        "Falha ao salvar imagem",
		KeySaveDirectory:     "Diretório de Salvamento",
		KeyImagesPerBreed:    "Imagens por Raça",
		KeyAutoRevealSaved:   "Revelar imagens salvas no gerenciador de arquivos",
		KeyLoadingImages:     "Carregando imagens...",
		KeyLoadingBreeds:     "Carregando catálogo de raças...",
		KeyCatalogLoadFailed: "Falha ao carregar catálogo de raças",
		KeyGalleryLoadFailed: "Falha ao carregar imagens",
		KeyNoBreedsSelected:  "Escolha uma raça para ver fotos",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeySelectedCount:     "selecionadas",
	}
}

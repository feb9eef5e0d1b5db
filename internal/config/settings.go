package config

import (
	"time"

	"fyne.io/fyne/v2"
)

// ThemeVariant selects light or dark colors
type ThemeVariant string

const (
	ThemeSystem ThemeVariant = "system"
	ThemeLight  ThemeVariant = "light"
	ThemeDark   ThemeVariant = "dark"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage        = "app_language"
	KeyThemeVariant    = "theme_variant"
	KeyCompletionDelay = "completion_delay_ms"
)

// Default values
const (
	DefaultLanguage          = "system"
	DefaultThemeVariant      = ThemeSystem
	DefaultCompletionDelayMs = 2000
	MaxCompletionDelayMs     = 10000
)

// Settings manages application configuration. Only UI preferences are
// stored; tasks live in memory.
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
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

// GetThemeVariant returns the configured theme variant
func (s *Settings) GetThemeVariant() ThemeVariant {
	variant := ThemeVariant(s.app.Preferences().String(KeyThemeVariant))
	switch variant {
	case ThemeSystem, ThemeLight, ThemeDark:
		return variant
	default:
		s.SetThemeVariant(DefaultThemeVariant)
		return DefaultThemeVariant
	}
}

// SetThemeVariant sets the theme variant, falling back to system for unknown values
func (s *Settings) SetThemeVariant(variant ThemeVariant) {
	switch variant {
	case ThemeSystem, ThemeLight, ThemeDark:
	default:
		variant = DefaultThemeVariant
	}
	s.app.Preferences().SetString(KeyThemeVariant, string(variant))
}

// GetCompletionDelay returns how long a checked task waits before moving
// to the completed list
func (s *Settings) GetCompletionDelay() time.Duration {
	ms := s.app.Preferences().IntWithFallback(KeyCompletionDelay, DefaultCompletionDelayMs)
	return time.Duration(clampDelayMs(ms)) * time.Millisecond
}

// SetCompletionDelay sets the completion delay, clamped to 0..10s
func (s *Settings) SetCompletionDelay(d time.Duration) {
	s.app.Preferences().SetInt(KeyCompletionDelay, clampDelayMs(int(d/time.Millisecond)))
}

// GetThemeVariantOptions returns available theme variants
func (s *Settings) GetThemeVariantOptions() []ThemeVariant {
	return []ThemeVariant{ThemeSystem, ThemeLight, ThemeDark}
}

// LanguageOption pairs a stored language code with its display name
type LanguageOption struct {
	Code string
	Name string
}

// languageOptions is the single list behind the settings dialog and the
// language menu, in display order
var languageOptions = []LanguageOption{
	{Code: DefaultLanguage, Name: "System Default"},
	{Code: "en", Name: "English"},
	{Code: "ja", Name: "日本語"},
	{Code: "ru", Name: "Русский"},
}

// GetLanguageOptions returns available language options in display order
func (s *Settings) GetLanguageOptions() []LanguageOption {
	out := make([]LanguageOption, len(languageOptions))
	copy(out, languageOptions)
	return out
}

func clampDelayMs(ms int) int {
	if ms < 0 {
		return 0
	}
	if ms > MaxCompletionDelayMs {
		return MaxCompletionDelayMs
	}
	return ms
}

package ui

import (
	fynelang "fyne.io/fyne/v2/lang"
	"golang.org/x/text/language"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
	systemLocale    func() string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeyAddSection       = "add_section"
	KeyTasksSection     = "tasks_section"
	KeyCompletedSection = "completed_section"
	KeyAddPlaceholder   = "add_placeholder"
	KeyAdd              = "add"
	KeyDelete           = "delete"
	KeySettings         = "settings"
	KeyFile             = "file"
	KeyLanguage         = "language"
	KeyTheme            = "theme"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeySettingsSaved    = "settings_saved"
	KeyDeleteFailed     = "delete_failed"
	KeyNoTasks          = "no_tasks"
	KeyTaskCompleted    = "task_completed"
)

var supportedLanguages = []language.Tag{
	language.English, // fallback, must stay first
	language.Japanese,
	language.Russian,
}

var languageMatcher = language.NewMatcher(supportedLanguages)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
		systemLocale: func() string {
			return string(fynelang.SystemLocale())
		},
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. "system" picks the closest
// supported language for the OS locale.
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		lang = MatchLanguage(l.systemLocale())
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// MatchLanguage maps a BCP 47 locale such as "ja-JP" to a supported
// language code, defaulting to English
func MatchLanguage(locale string) string {
	tag, _, _ := languageMatcher.Match(language.Make(locale))
	base, _ := tag.Base()
	return base.String()
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

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "ToDo",
		KeyAddSection:       "Add a new task",
		KeyTasksSection:     "Tasks",
		KeyCompletedSection: "Completed",
		KeyAddPlaceholder:   "Add a task",
		KeyAdd:              "Add",
		KeyDelete:           "Delete",
		KeySettings:         "Settings",
		KeyFile:             "File",
		KeyLanguage:         "Language",
		KeyTheme:            "Theme",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeySettingsSaved:    "Settings saved",
		KeyDeleteFailed:     "Could not delete task",
		KeyNoTasks:          "Nothing here",
		KeyTaskCompleted:    "Task completed",
	}

	// Japanese texts
	l.texts["ja"] = map[string]string{
		KeyAppTitle:         "ToDo",
		KeyAddSection:       "新たなタスクを追加",
		KeyTasksSection:     "タスク",
		KeyCompletedSection: "完了タスク",
		KeyAddPlaceholder:   "タスクを追加",
		KeyAdd:              "追加",
		KeyDelete:           "削除",
		KeySettings:         "設定",
		KeyFile:             "ファイル",
		KeyLanguage:         "言語",
		KeyTheme:            "テーマ",
		KeySave:             "保存",
		KeyCancel:           "キャンセル",
		KeySettingsSaved:    "設定を保存しました",
		KeyDeleteFailed:     "タスクを削除できませんでした",
		KeyNoTasks:          "タスクはありません",
		KeyTaskCompleted:    "タスクを完了しました",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:         "ToDo",
		KeyAddSection:       "Новая задача",
		KeyTasksSection:     "Задачи",
		KeyCompletedSection: "Выполнено",
		KeyAddPlaceholder:   "Добавить задачу",
		KeyAdd:              "Добавить",
		KeyDelete:           "Удалить",
		KeySettings:         "Настройки",
		KeyFile:             "Файл",
		KeyLanguage:         "Язык",
		KeyTheme:            "Тема",
		KeySave:             "Сохранить",
		KeyCancel:           "Отмена",
		KeySettingsSaved:    "Настройки сохранены",
		KeyDeleteFailed:     "Не удалось удалить задачу",
		KeyNoTasks:          "Пусто",
		KeyTaskCompleted:    "Задача выполнена",
	}
}

// internal/i18n/i18n.go
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

//go:embed locales/*.json
var locales embed.FS

const DefaultLanguage = "en"

type I18n struct {
	mu           sync.RWMutex
	translations map[string]map[string]string
	defaultLang  string
	langs        []string
	matcher      language.Matcher
}

var instance *I18n
var once sync.Once

func Initialize() error {
	var err error
	once.Do(func() {
		instance, err = New(locales, "locales")
	})
	return err
}

// New loads every <lang>.json catalog under dir.
func New(fsys fs.FS, dir string) (*I18n, error) {
	i := &I18n{
		translations: make(map[string]map[string]string),
		defaultLang:  DefaultLanguage,
	}
	if err := i.LoadTranslations(fsys, dir); err != nil {
		return nil, err
	}
	return i, nil
}

func (i *I18n) LoadTranslations(fsys fs.FS, dir string) error {
	files, err := fs.Glob(fsys, path.Join(dir, "*.json"))
	if err != nil {
		return fmt.Errorf("failed to list locale files in %s: %w", dir, err)
	}

	for _, file := range files {
		lang := strings.TrimSuffix(path.Base(file), ".json")

		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return fmt.Errorf("failed to read locale file %s: %w", file, err)
		}

		var translations map[string]string
		if err := json.Unmarshal(data, &translations); err != nil {
			return fmt.Errorf("failed to unmarshal locale file %s: %w", file, err)
		}

		i.mu.Lock()
		i.translations[lang] = translations
		i.mu.Unlock()
	}

	if _, ok := i.translations[i.defaultLang]; !ok {
		return fmt.Errorf("missing default locale %s.json in %s", i.defaultLang, dir)
	}

	i.mu.Lock()
	i.buildMatcher()
	i.mu.Unlock()
	return nil
}

// buildMatcher puts the default language first so it wins when nothing
// in Accept-Language is supported.
func (i *I18n) buildMatcher() {
	langs := []string{i.defaultLang}
	for lang := range i.translations {
		if lang != i.defaultLang {
			langs = append(langs, lang)
		}
	}
	sort.Strings(langs[1:])

	tags := make([]language.Tag, 0, len(langs))
	for _, lang := range langs {
		tags = append(tags, language.Make(strings.ReplaceAll(lang, "_", "-")))
	}

	i.langs = langs
	i.matcher = language.NewMatcher(tags)
}

// Match picks the best supported language for an Accept-Language header
// value such as "es-MX,es;q=0.9,en;q=0.8".
func (i *I18n) Match(acceptLanguage string) string {
	if acceptLanguage == "" {
		return i.defaultLang
	}

	desired, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(desired) == 0 {
		return i.defaultLang
	}

	i.mu.RLock()
	defer i.mu.RUnlock()

	_, index, confidence := i.matcher.Match(desired...)
	if confidence == language.No || index >= len(i.langs) {
		return i.defaultLang
	}
	return i.langs[index]
}

func (i *I18n) T(lang, key string, args ...interface{}) string {
	i.mu.RLock()
	defer i.mu.RUnlock()

	if text, ok := i.lookup(lang, key); ok {
		return format(text, args...)
	}
	if lang != i.defaultLang {
		if text, ok := i.lookup(i.defaultLang, key); ok {
			return format(text, args...)
		}
	}

	// Return key if no translation found
	return key
}

func (i *I18n) lookup(lang, key string) (string, bool) {
	translations, ok := i.translations[lang]
	if !ok {
		return "", false
	}
	text, ok := translations[key]
	return text, ok
}

func format(text string, args ...interface{}) string {
	if len(args) > 0 {
		return fmt.Sprintf(text, args...)
	}
	return text
}

// Global functions
func T(lang, key string, args ...interface{}) string {
	if instance != nil {
		return instance.T(lang, key, args...)
	}
	return key
}

func Match(acceptLanguage string) string {
	if instance != nil {
		return instance.Match(acceptLanguage)
	}
	return DefaultLanguage
}

func GetSupportedLanguages() []string {
	if instance == nil {
		return []string{DefaultLanguage}
	}

	instance.mu.RLock()
	defer instance.mu.RUnlock()

	langs := make([]string, len(instance.langs))
	copy(langs, instance.langs)
	return langs
}

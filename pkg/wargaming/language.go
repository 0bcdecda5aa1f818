package wargaming

import (
	"strings"

	"golang.org/x/exp/slices"
)

// Language is the lowercase language code sent as the `language` query parameter. It
// mostly affects localised names and error texts in the returned data.
type Language string

const (
	English    Language = "en"
	Polish     Language = "pl"
	Russian    Language = "ru"
	Deutsch    Language = "de"
	French     Language = "fr"
	Spanish    Language = "es"
	Chinese    Language = "zh-cn"
	Turkish    Language = "tr"
	Czech      Language = "cs"
	Thai       Language = "th"
	Vietnamese Language = "vi"

	DefaultLanguage = English
)

var languageNames = map[Language]string{ //nolint:gochecknoglobals
	English:    "English",
	Polish:     "Polish",
	Russian:    "Russian",
	Deutsch:    "Deutsch",
	French:     "French",
	Spanish:    "Spanish",
	Chinese:    "Chinese",
	Turkish:    "Turkish",
	Czech:      "Czech",
	Thai:       "Thai",
	Vietnamese: "Vietnamese",
}

// NewLanguage normalises code. No validation is performed against the known set since
// the API adds languages over time.
func NewLanguage(code string) Language {
	return Language(strings.ToLower(strings.TrimSpace(code)))
}

func (l Language) String() string {
	return string(l)
}

// Name returns the english name of a known language, or the code itself.
func (l Language) Name() string {
	if name, found := languageNames[l]; found {
		return name
	}

	return string(l)
}

// Known reports whether l is one of the predefined languages.
func (l Language) Known() bool {
	_, found := languageNames[l]

	return found
}

// Languages returns all predefined languages ordered by code.
func Languages() []Language {
	languages := make([]Language, 0, len(languageNames))
	for lang := range languageNames {
		languages = append(languages, lang)
	}

	slices.SortStableFunc(languages, func(a, b Language) int {
		return strings.Compare(string(a), string(b))
	})

	return languages
}

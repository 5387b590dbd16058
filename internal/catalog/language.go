package catalog

import (
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// DefaultLanguages is the language list offered when none is configured.
var DefaultLanguages = []Language{
	"Spanish", "French", "German", "Italian", "Japanese", "Mandarin", "Korean",
}

var languageTags = map[Language]language.Tag{
	"Spanish":  language.Spanish,
	"French":   language.French,
	"German":   language.German,
	"Italian":  language.Italian,
	"Japanese": language.Japanese,
	"Mandarin": language.SimplifiedChinese,
	"Chinese":  language.SimplifiedChinese,
	"Korean":   language.Korean,
	"Dutch":    language.Dutch,
	"English":  language.English,
}

// Tag returns the BCP 47 tag for the language, or language.Und if unknown.
func (l Language) Tag() language.Tag {
	if t, ok := languageTags[l]; ok {
		return t
	}
	return language.Und
}

// NativeName returns the language's name in itself, e.g. "español".
// Falls back to the English name when the language has no known tag.
func (l Language) NativeName() string {
	t := l.Tag()
	if t == language.Und {
		return string(l)
	}
	if name := display.Self.Name(t); name != "" {
		return name
	}
	return string(l)
}

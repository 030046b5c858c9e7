// Package wordbank holds the static vocabulary word sets and builds quiz
// and matching exercises from them. Word data is read-only; nothing in the
// app mutates a bank.
package wordbank

import "fmt"

// Tier is a vocabulary difficulty grouping.
type Tier string

const (
	TierBeginner     Tier = "beginner"
	TierIntermediate Tier = "intermediate"
	TierAdvanced     Tier = "advanced"
)

// Word is a single vocabulary entry. Immutable.
type Word struct {
	ID                 string
	Word               string
	Translation        string
	Example            string
	ExampleTranslation string
	Tier               Tier
}

// Level groups words of one tier inside a language.
type Level struct {
	ID          string
	Name        string
	Emoji       string
	Description string
	Tier        Tier
	Words       []Word
}

// Language is a word bank for one target language.
type Language struct {
	Code       string
	Name       string
	NativeName string
	Flag       string
	Levels     []Level
}

// Bank is the read-only word lookup the exercise flows depend on.
type Bank interface {
	// Words returns the word set for a level within a language.
	Words(languageCode, levelID string) ([]Word, error)

	// Languages lists the available languages in display order.
	Languages() []Language
}

// StaticBank serves the compiled-in word sets.
type StaticBank struct {
	languages []Language
}

// NewStaticBank returns a Bank backed by the built-in word data.
func NewStaticBank() *StaticBank {
	return &StaticBank{languages: builtinLanguages}
}

func (b *StaticBank) Languages() []Language {
	return b.languages
}

func (b *StaticBank) Words(languageCode, levelID string) ([]Word, error) {
	for _, lang := range b.languages {
		if lang.Code != languageCode {
			continue
		}
		for _, level := range lang.Levels {
			if level.ID == levelID {
				return level.Words, nil
			}
		}
		return nil, fmt.Errorf("wordbank: language %q has no level %q", languageCode, levelID)
	}
	return nil, fmt.Errorf("wordbank: unknown language %q", languageCode)
}

// Language returns the language entry for code, or false if absent.
func (b *StaticBank) Language(code string) (Language, bool) {
	for _, lang := range b.languages {
		if lang.Code == code {
			return lang, true
		}
	}
	return Language{}, false
}

// Package profile holds the learner's identity: a single local profile,
// created on first launch.
package profile

import "time"

// Profile is the local learner profile. A fresh install has none; the
// onboarding flow creates exactly one.
type Profile struct {
	ID        string
	Name      string
	Language  string // interface language code from AvailableLanguages
	Grade     int
	CreatedAt time.Time
}

// LanguageOption is a selectable interface language.
type LanguageOption struct {
	Code       string
	Name       string
	NativeName string
	Flag       string
}

// AvailableLanguages lists the interface languages offered at onboarding.
var AvailableLanguages = []LanguageOption{
	{Code: "en", Name: "English", NativeName: "English", Flag: "🇺🇸"},
	{Code: "ru", Name: "Russian", NativeName: "русский", Flag: "🇷🇺"},
	{Code: "ky", Name: "Kyrgyz", NativeName: "кыргыз", Flag: "🇰🇬"},
	{Code: "uz", Name: "Uzbek", NativeName: "oʻzbek", Flag: "🇺🇿"},
	{Code: "kk", Name: "Kazakh", NativeName: "қазақ", Flag: "🇰🇿"},
}

// AvailableGrades lists the school grades offered at onboarding.
var AvailableGrades = []int{1, 2, 3, 4, 5, 6}

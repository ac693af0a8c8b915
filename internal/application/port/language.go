package port

import "context"

// LanguageInfo describes one available locale.
type LanguageInfo struct {
	Tag  string `json:"tag"`
	Name string `json:"name"`
}

// LanguageProvider exposes the active locale and the available catalog.
type LanguageProvider interface {
	Language(ctx context.Context) string
	Languages(ctx context.Context) []LanguageInfo
}

// LanguageSwitcher changes the active locale and persists the choice.
type LanguageSwitcher interface {
	SetLanguage(ctx context.Context, tag string) error
}

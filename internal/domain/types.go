package domain

import "strings"

// Locale identifies a supported display language.
type Locale string

const (
	// LocaleArabic is the primary portal locale.
	LocaleArabic Locale = "ar"
	// LocaleEnglish is the fallback locale.
	LocaleEnglish Locale = "en"
)

// DefaultLocale is used when no locale is requested or the requested one is unknown.
const DefaultLocale = LocaleArabic

// ParseLocale normalizes a locale code. Region suffixes are ignored ("en-US" -> en).
// Unknown codes resolve to fallback.
func ParseLocale(code string, fallback Locale) Locale {
	normalized := strings.ToLower(strings.TrimSpace(code))
	if idx := strings.IndexAny(normalized, "-_"); idx > 0 {
		normalized = normalized[:idx]
	}
	switch Locale(normalized) {
	case LocaleArabic:
		return LocaleArabic
	case LocaleEnglish:
		return LocaleEnglish
	}
	if fallback == "" {
		return DefaultLocale
	}
	return fallback
}

// Valid reports whether the locale is one the portal renders.
func (l Locale) Valid() bool {
	return l == LocaleArabic || l == LocaleEnglish
}

func (l Locale) String() string {
	return string(l)
}

// Text is a bilingual value.
type Text struct {
	Ar string `json:"ar"`
	En string `json:"en"`
}

// NewText trims both variants.
func NewText(ar, en string) Text {
	return Text{Ar: strings.TrimSpace(ar), En: strings.TrimSpace(en)}
}

// Localize returns the variant for locale, falling back to the other variant and
// finally to the empty string.
func (t Text) Localize(locale Locale) string {
	primary, secondary := t.Ar, t.En
	if locale == LocaleEnglish {
		primary, secondary = t.En, t.Ar
	}
	if strings.TrimSpace(primary) != "" {
		return primary
	}
	if strings.TrimSpace(secondary) != "" {
		return secondary
	}
	return ""
}

// IsZero reports whether both variants are blank.
func (t Text) IsZero() bool {
	return strings.TrimSpace(t.Ar) == "" && strings.TrimSpace(t.En) == ""
}

// Contains performs a case-insensitive substring match against both variants.
// The needle is expected to be lower-cased already.
func (t Text) Contains(needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.Ar), needle) ||
		strings.Contains(strings.ToLower(t.En), needle)
}

// Localize is the single accessor used to render bilingual values.
func Localize(text Text, locale Locale) string {
	return text.Localize(locale)
}

// Entity carries the fields every content item shares.
type Entity struct {
	ID          string `json:"id"`
	Slug        string `json:"slug,omitempty"`
	Name        Text   `json:"name"`
	Description Text   `json:"description"`
}

// Base exposes the shared entity fields to generic callers.
func (e Entity) Base() Entity {
	return e
}

// Display is a locale-resolved projection of an entity.
type Display struct {
	ID          string `json:"id"`
	Slug        string `json:"slug,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Localized projects the entity into locale.
func (e Entity) Localized(locale Locale) Display {
	return Display{
		ID:          e.ID,
		Slug:        e.Slug,
		Name:        Localize(e.Name, locale),
		Description: Localize(e.Description, locale),
	}
}

// Localizable is implemented by every type embedding Entity.
type Localizable interface {
	Localized(locale Locale) Display
}

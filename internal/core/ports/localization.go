package ports

// LocalizationService translates stable message keys for a locale. The
// core only ever passes keys around; rendered text exists at the edges.
type LocalizationService interface {
	// Localize returns the translation of key for the language, or the
	// key itself when no translation exists.
	Localize(key, language string) string
}

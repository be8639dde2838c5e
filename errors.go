package i18n

import (
	"errors"
	"fmt"
)

// Sentinel errors usable with errors.Is. The typed errors below carry the
// diagnostic payload and match their sentinel.
var (
	// ErrInvalidLocales indicates that Translate received no locales.
	ErrInvalidLocales = errors.New("i18n: locales list is empty")
	// ErrMissingTranslation indicates that no translation was found for any
	// locale or default alternative.
	ErrMissingTranslation = errors.New("i18n: missing translation")
	// ErrInvalidPluralization indicates a plural form map without the form
	// selected for the given count.
	ErrInvalidPluralization = errors.New("i18n: invalid pluralization data")
	// ErrReservedKey indicates a template placeholder named after a reserved
	// option field.
	ErrReservedKey = errors.New("i18n: reserved interpolation key")
	// ErrMissingArgument indicates a template placeholder with no matching
	// interpolation value.
	ErrMissingArgument = errors.New("i18n: missing interpolation argument")
)

// MissingTranslationError reports the locale the resolution settled on, the
// fully scoped key, and the options of the failed call.
type MissingTranslationError struct {
	Locale  string
	Key     string
	Options Options
}

func (e *MissingTranslationError) Error() string {
	return fmt.Sprintf("i18n: missing translation for key %q in locale %q", e.Key, e.Locale)
}

func (e *MissingTranslationError) Is(target error) bool {
	return target == ErrMissingTranslation
}

// PluralizationError reports a plural form map that lacks the form required
// for the count.
type PluralizationError struct {
	Form  PluralCategory
	Count int
}

func (e *PluralizationError) Error() string {
	return fmt.Sprintf("i18n: no plural form %q for count %d", e.Form, e.Count)
}

func (e *PluralizationError) Is(target error) bool {
	return target == ErrInvalidPluralization
}

// ReservedKeyError reports a template referencing a reserved option field as
// a placeholder.
type ReservedKeyError struct {
	Name string
}

func (e *ReservedKeyError) Error() string {
	return fmt.Sprintf("i18n: placeholder %q is a reserved option field", e.Name)
}

func (e *ReservedKeyError) Is(target error) bool {
	return target == ErrReservedKey
}

// MissingArgumentError reports a template placeholder with no value supplied.
type MissingArgumentError struct {
	Name     string
	Template string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("i18n: no value for placeholder %q in %q", e.Name, e.Template)
}

func (e *MissingArgumentError) Is(target error) bool {
	return target == ErrMissingArgument
}

package i18n

// PluralCategory names a plural form as defined by Unicode CLDR.
type PluralCategory string

const (
	PluralZero  PluralCategory = "zero"
	PluralOne   PluralCategory = "one"
	PluralTwo   PluralCategory = "two"
	PluralFew   PluralCategory = "few"
	PluralMany  PluralCategory = "many"
	PluralOther PluralCategory = "other"
)

// Vars holds interpolation values keyed by placeholder name. Values are
// stringified with the fmt %v verb during substitution.
type Vars map[string]any

// Translations is the nested payload shape produced by loaders and consumed
// by Store.Add: locale -> segment -> (value | nested map | plural form map).
type Translations map[string]map[string]any

// Options carries the per-call controls recognized by Translate. Everything
// the caller wants substituted into the resolved template goes in Vars;
// Count, Scope and Default steer resolution itself and are never available
// as placeholders.
type Options struct {
	// Count selects a plural form when the resolved entry is a form map.
	// Leave nil to return form maps untouched.
	Count *int

	// Scope is a path prefix prepended to the key before lookup.
	Scope []string

	// Default is evaluated when direct lookup misses. See the Default
	// variants for the evaluation order.
	Default Default

	// Vars are the interpolation values for the resolved template.
	Vars Vars
}

// Count is a convenience for populating Options.Count.
func Count(n int) *int {
	return &n
}

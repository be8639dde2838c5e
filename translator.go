package i18n

import (
	"fmt"
	"strings"
)

// Translator resolves message keys against a Store, driving locale fallback,
// default evaluation, pluralization and interpolation. A Translator is
// immutable after construction and safe for concurrent use as long as its
// Store allows concurrent reads.
type Translator struct {
	store         Store
	defaultLocale string
	resolver      FallbackResolver
	rules         map[string]PluralRule
	defaultRule   PluralRule
	hooks         []Hook
}

// Option mutates a Translator during construction.
type Option func(*Translator) error

// New builds a Translator reading from store. A nil store yields an empty
// MemoryStore.
func New(store Store, opts ...Option) (*Translator, error) {
	if store == nil {
		store = NewMemoryStore()
	}

	t := &Translator{
		store:       store,
		rules:       make(map[string]PluralRule),
		defaultRule: PluralRuleEnglish,
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(t); err != nil {
			return nil, err
		}
	}

	if t.resolver == nil {
		t.resolver = NewStaticFallbackResolver()
	}
	return t, nil
}

// WithDefaultLocale sets the locale appended to every chain built by
// TranslateLocale.
func WithDefaultLocale(locale string) Option {
	return func(t *Translator) error {
		t.defaultLocale = normalizeLocale(locale)
		return nil
	}
}

// WithFallbackResolver replaces the resolver used by TranslateLocale.
func WithFallbackResolver(resolver FallbackResolver) Option {
	return func(t *Translator) error {
		t.resolver = resolver
		return nil
	}
}

// WithFallbacks registers an explicit fallback chain for a locale on the
// static resolver. It is ignored when a custom resolver is installed.
func WithFallbacks(locale string, fallbacks ...string) Option {
	return func(t *Translator) error {
		if locale == "" {
			return nil
		}
		resolver, ok := t.resolver.(*StaticFallbackResolver)
		if !ok {
			if t.resolver != nil {
				return nil
			}
			resolver = NewStaticFallbackResolver()
			t.resolver = resolver
		}
		resolver.Set(locale, fallbacks...)
		return nil
	}
}

// WithPluralRule registers a plural rule for a locale. The rule also covers
// child locales unless they register their own.
func WithPluralRule(locale string, rule PluralRule) Option {
	return func(t *Translator) error {
		code := normalizeLocale(locale)
		if code == "" {
			return fmt.Errorf("i18n: plural rule needs a locale")
		}
		if rule == nil {
			return fmt.Errorf("i18n: plural rule for %q is nil", code)
		}
		t.rules[code] = rule
		return nil
	}
}

// WithDefaultPluralRule replaces the rule used when a locale has none
// registered. The initial default is PluralRuleEnglish.
func WithDefaultPluralRule(rule PluralRule) Option {
	return func(t *Translator) error {
		if rule == nil {
			return fmt.Errorf("i18n: default plural rule is nil")
		}
		t.defaultRule = rule
		return nil
	}
}

// WithHooks appends hooks observing every Translate call.
func WithHooks(hooks ...Hook) Option {
	return func(t *Translator) error {
		for _, hook := range hooks {
			if hook == nil {
				continue
			}
			t.hooks = append(t.hooks, hook)
		}
		return nil
	}
}

// Translate resolves key against the ordered locale chain.
//
// Per locale, a direct scoped lookup is tried first, then the non-literal
// default alternatives for that same locale. The first locale producing a
// value wins and becomes the resolved locale. A Literal default applies only
// after the whole chain is exhausted. The winning entry is pluralized with
// Options.Count and interpolated with Options.Vars.
func (t *Translator) Translate(locales []string, key string, opts Options) (string, error) {
	if len(t.hooks) == 0 {
		result, _, err := t.translate(locales, key, opts)
		return result, err
	}

	ctx := &HookContext{Locales: locales, Key: key, Options: opts}
	for _, hook := range t.hooks {
		hook.BeforeTranslate(ctx)
	}

	result, resolved, err := t.translate(ctx.Locales, ctx.Key, ctx.Options)
	ctx.Result = result
	ctx.ResolvedLocale = resolved
	ctx.Err = err

	for _, hook := range t.hooks {
		hook.AfterTranslate(ctx)
	}
	return ctx.Result, ctx.Err
}

// TranslateAll resolves each key independently with the same locales and
// options. There is no fallback interaction between elements; the first
// error aborts.
func (t *Translator) TranslateAll(locales []string, keys []string, opts Options) ([]string, error) {
	results := make([]string, len(keys))
	for i, key := range keys {
		result, err := t.Translate(locales, key, opts)
		if err != nil {
			return nil, err
		}
		results[i] = result
	}
	return results, nil
}

// Resolve is the non-raising variant of Translate: any failure, including a
// missing translation, reports ok=false.
func (t *Translator) Resolve(locales []string, key string, opts Options) (string, bool) {
	result, err := t.Translate(locales, key, opts)
	if err != nil {
		return "", false
	}
	return result, true
}

// TranslateLocale expands a single locale into its full candidate chain
// before translating: the locale itself, its parent tags, registered
// fallbacks with their parents, then the default locale.
func (t *Translator) TranslateLocale(locale, key string, opts Options) (string, error) {
	return t.Translate(t.localeChain(locale), key, opts)
}

func (t *Translator) translate(locales []string, key string, opts Options) (result, resolved string, err error) {
	normalized := normalizeLocaleList(locales)
	if len(normalized) == 0 {
		return "", "", ErrInvalidLocales
	}

	st := &resolveState{opts: opts, inFlight: make(map[string]struct{})}
	entry, resolved, ok, err := t.resolveEntry(st, normalized, key, opts.Default)
	if err != nil {
		return "", resolved, err
	}
	if !ok {
		return "", resolved, &MissingTranslationError{
			Locale:  resolved,
			Key:     joinPath(opts.Scope, key),
			Options: opts,
		}
	}

	value, err := pluralize(entry, opts.Count, t.pluralRule(resolved))
	if err != nil {
		return "", resolved, err
	}

	template, isString := value.(string)
	if !isString {
		// Structured entries (nested trees, arrays) are not templates and
		// skip interpolation.
		return fmt.Sprintf("%v", value), resolved, nil
	}

	result, err = interpolate(template, opts.Vars)
	return result, resolved, err
}

// resolveState threads per-call data through default evaluation. inFlight
// tracks the locale/key pairs currently being resolved through Reference
// defaults so cyclic chains terminate as a miss.
type resolveState struct {
	opts     Options
	inFlight map[string]struct{}
}

// resolveEntry runs locale fallback and default evaluation, returning the
// raw winning entry and the locale it resolved under. Pluralization and
// interpolation happen exactly once, in translate, regardless of how deep
// the default recursion went.
func (t *Translator) resolveEntry(st *resolveState, locales []string, key string, def Default) (any, string, bool, error) {
	alts, literal := splitDefault(def)
	path := splitPath(st.opts.Scope, key)

	for _, locale := range locales {
		if value, ok := t.store.Lookup(locale, path...); ok {
			ref, isRef := value.(Reference)
			if !isRef {
				return value, locale, true, nil
			}
			// Stored reference entries resolve like Reference defaults;
			// a dangling one falls through to the alternatives.
			value, ok, err := ref.resolve(t, st, locale)
			if err != nil {
				return nil, "", false, err
			}
			if ok {
				return value, locale, true, nil
			}
		}
		for _, alt := range alts {
			value, ok, err := alt.resolve(t, st, locale)
			if err != nil {
				return nil, "", false, err
			}
			if ok {
				return value, locale, true, nil
			}
		}
	}

	// Nothing matched anywhere; the first requested locale owns the
	// literal fallback and the error report.
	resolved := locales[0]
	if literal != nil {
		return string(*literal), resolved, true, nil
	}
	return nil, resolved, false, nil
}

func (t *Translator) pluralRule(locale string) PluralRule {
	if rule, ok := t.rules[locale]; ok {
		return rule
	}
	for _, parent := range localeParentChain(locale) {
		if rule, ok := t.rules[parent]; ok {
			return rule
		}
	}
	return t.defaultRule
}

func (t *Translator) localeChain(locale string) []string {
	seen := make(map[string]struct{}, 8)
	chain := make([]string, 0, 8)
	push := func(candidate string) {
		code := normalizeLocale(candidate)
		if code == "" {
			return
		}
		if _, exists := seen[code]; exists {
			return
		}
		seen[code] = struct{}{}
		chain = append(chain, code)
	}

	push(locale)
	for _, parent := range localeParentChain(normalizeLocale(locale)) {
		push(parent)
	}
	if t.resolver != nil {
		for _, fallback := range t.resolver.Resolve(locale) {
			push(fallback)
			for _, parent := range localeParentChain(fallback) {
				push(parent)
			}
		}
	}
	push(t.defaultLocale)
	return chain
}

func normalizeLocaleList(locales []string) []string {
	if len(locales) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(locales))
	out := make([]string, 0, len(locales))
	for _, locale := range locales {
		code := normalizeLocale(locale)
		if code == "" {
			continue
		}
		if _, exists := seen[code]; exists {
			continue
		}
		seen[code] = struct{}{}
		out = append(out, code)
	}
	return out
}

// splitPath prepends scope to the dotted key and returns the segment path
// used for store lookups.
func splitPath(scope []string, key string) []string {
	path := make([]string, 0, len(scope)+4)
	path = append(path, scope...)
	for _, segment := range strings.Split(key, ".") {
		if segment != "" {
			path = append(path, segment)
		}
	}
	return path
}

func joinPath(scope []string, key string) string {
	return strings.Join(splitPath(scope, key), ".")
}

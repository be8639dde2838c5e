package i18n

// FallbackResolver resolves the fallback locale chain for a locale.
type FallbackResolver interface {
	Resolve(locale string) []string
}

// StaticFallbackResolver maps locales to explicitly registered chains.
type StaticFallbackResolver struct {
	chains map[string][]string
}

var _ FallbackResolver = (*StaticFallbackResolver)(nil)

// NewStaticFallbackResolver returns an empty resolver.
func NewStaticFallbackResolver() *StaticFallbackResolver {
	return &StaticFallbackResolver{chains: make(map[string][]string)}
}

// Set registers the fallback chain for a locale, replacing any previous one.
// The locale itself and duplicates are dropped from the chain.
func (r *StaticFallbackResolver) Set(locale string, fallbacks ...string) {
	code := normalizeLocale(locale)
	if code == "" {
		return
	}
	if r.chains == nil {
		r.chains = make(map[string][]string)
	}

	seen := map[string]struct{}{code: {}}
	chain := make([]string, 0, len(fallbacks))
	for _, fallback := range fallbacks {
		normalized := normalizeLocale(fallback)
		if normalized == "" {
			continue
		}
		if _, exists := seen[normalized]; exists {
			continue
		}
		seen[normalized] = struct{}{}
		chain = append(chain, normalized)
	}

	if len(chain) == 0 {
		delete(r.chains, code)
		return
	}
	r.chains[code] = chain
}

// Resolve returns a copy of the chain registered for locale, nil if none.
func (r *StaticFallbackResolver) Resolve(locale string) []string {
	if r == nil || len(r.chains) == 0 {
		return nil
	}
	chain, ok := r.chains[normalizeLocale(locale)]
	if !ok {
		return nil
	}
	out := make([]string, len(chain))
	copy(out, chain)
	return out
}

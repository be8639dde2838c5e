package i18n

// Default describes a fallback consulted when direct lookup misses. The set
// of variants is closed: Literal, Reference, Chain and PerLocale, each with
// its own resolution rule.
type Default interface {
	// resolve evaluates the variant against a single locale. A not-found
	// outcome is ok=false with a nil error; errors abort the whole call.
	resolve(t *Translator, st *resolveState, locale string) (any, bool, error)
}

// Literal is an untranslated string used verbatim. At the top level of a
// call it is only consulted after every locale has been exhausted; inside a
// PerLocale value it applies immediately.
type Literal string

// Reference names another key to resolve at the active locale, with the
// same scope, count and vars as the original call. A miss on the referenced
// key is absorbed and evaluation moves to the next alternative. A Reference
// may also be stored as an entry value, in which case lookup chases it the
// same way; cyclic chains terminate as a miss.
type Reference string

// Chain holds ordered alternatives; the first one that resolves wins.
type Chain []Default

// PerLocale maps locale codes to locale-specific defaults. Only the exact
// active locale is matched; no fallback happens inside the map itself.
type PerLocale map[string]Default

func (d Literal) resolve(_ *Translator, _ *resolveState, _ string) (any, bool, error) {
	return string(d), true, nil
}

func (d Reference) resolve(t *Translator, st *resolveState, locale string) (any, bool, error) {
	token := locale + "\x00" + joinPath(st.opts.Scope, string(d))
	if _, active := st.inFlight[token]; active {
		// Cyclic reference chain; treat the repeated key as unresolvable.
		return nil, false, nil
	}
	st.inFlight[token] = struct{}{}
	defer delete(st.inFlight, token)

	entry, _, ok, err := t.resolveEntry(st, []string{locale}, string(d), nil)
	return entry, ok, err
}

func (d Chain) resolve(t *Translator, st *resolveState, locale string) (any, bool, error) {
	for _, alt := range d {
		if alt == nil {
			continue
		}
		value, ok, err := alt.resolve(t, st, locale)
		if err != nil {
			return nil, false, err
		}
		if ok {
			return value, true, nil
		}
	}
	return nil, false, nil
}

func (d PerLocale) resolve(t *Translator, st *resolveState, locale string) (any, bool, error) {
	alt, ok := d[normalizeLocale(locale)]
	if !ok || alt == nil {
		return nil, false, nil
	}
	return alt.resolve(t, st, locale)
}

// splitDefault separates the literal-string fallback from the alternatives
// evaluated per locale. The literal is deferred until the whole locale chain
// is exhausted: a translated fallback found for a less-preferred locale
// outranks an untranslated literal.
func splitDefault(spec Default) ([]Default, *Literal) {
	switch d := spec.(type) {
	case nil:
		return nil, nil
	case Literal:
		return nil, &d
	case Chain:
		var (
			alts    []Default
			literal *Literal
		)
		for _, alt := range d {
			if alt == nil {
				continue
			}
			if lit, ok := alt.(Literal); ok {
				if literal == nil {
					literal = &lit
				}
				continue
			}
			alts = append(alts, alt)
		}
		return alts, literal
	default:
		return []Default{spec}, nil
	}
}

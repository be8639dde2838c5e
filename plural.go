package i18n

// PluralRule returns the ordered plural form candidates for a count. The
// first form present in the entry wins; the last candidate is mandatory and
// its absence is a PluralizationError.
type PluralRule func(count int) []PluralCategory

// PluralRuleEnglish selects "zero" for 0 when the entry defines it, "one"
// for exactly 1, "other" for everything else. This is the default rule.
func PluralRuleEnglish(count int) []PluralCategory {
	switch count {
	case 0:
		return []PluralCategory{PluralZero, PluralOther}
	case 1:
		return []PluralCategory{PluralOne}
	default:
		return []PluralCategory{PluralOther}
	}
}

// PluralRuleGermanic covers German, Dutch and the Scandinavian languages:
// "one" for 1, "other" otherwise.
func PluralRuleGermanic(count int) []PluralCategory {
	if count == 1 || count == -1 {
		return []PluralCategory{PluralOne, PluralOther}
	}
	return []PluralCategory{PluralOther}
}

// PluralRuleRomance covers French, Italian and Portuguese, where 0 and 1 are
// both singular.
func PluralRuleRomance(count int) []PluralCategory {
	if count == 0 || count == 1 || count == -1 {
		return []PluralCategory{PluralOne, PluralOther}
	}
	return []PluralCategory{PluralOther}
}

// PluralRuleSlavic covers Polish, Czech, Ukrainian and related languages
// with paucal forms.
func PluralRuleSlavic(count int) []PluralCategory {
	abs := count
	if abs < 0 {
		abs = -abs
	}
	if abs == 1 {
		return []PluralCategory{PluralOne, PluralOther}
	}
	mod10, mod100 := abs%10, abs%100
	if mod10 >= 2 && mod10 <= 4 && (mod100 < 12 || mod100 > 14) {
		return []PluralCategory{PluralFew, PluralMany, PluralOther}
	}
	return []PluralCategory{PluralMany, PluralOther}
}

// PluralRuleCJK covers Japanese, Chinese, Korean and other languages without
// plural distinction.
func PluralRuleCJK(int) []PluralCategory {
	return []PluralCategory{PluralOther}
}

// pluralize selects a variant from a plural form map. Entries that are not
// form maps, and calls without a count, pass through unchanged.
func pluralize(entry any, count *int, rule PluralRule) (any, error) {
	if count == nil {
		return entry, nil
	}
	forms, ok := entry.(map[string]any)
	if !ok {
		return entry, nil
	}
	if rule == nil {
		rule = PluralRuleEnglish
	}

	candidates := rule(*count)
	for _, form := range candidates {
		if value, ok := forms[string(form)]; ok {
			return value, nil
		}
	}

	required := PluralOther
	if len(candidates) > 0 {
		required = candidates[len(candidates)-1]
	}
	return nil, &PluralizationError{Form: required, Count: *count}
}

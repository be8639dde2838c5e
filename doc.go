// Package i18n resolves message keys to localized strings.
//
// Resolution walks an ordered locale chain against a Store of nested
// translation trees. A miss on one locale consults the default alternatives
// for that same locale before moving on; an untranslated Literal default is
// held back until the whole chain is exhausted, so a translated fallback
// from a less-preferred locale always wins. The winning entry then has a
// plural form selected by Options.Count and {{name}} placeholders filled
// from Options.Vars.
//
//	store := i18n.NewMemoryStore()
//	store.Add("en", map[string]any{"inbox": map[string]any{
//		"zero":  "No messages",
//		"one":   "One message",
//		"other": "{{count}} messages",
//	}})
//
//	t, _ := i18n.New(store, i18n.WithDefaultLocale("en"))
//	msg, _ := t.Translate([]string{"es-MX", "es", "en"}, "inbox", i18n.Options{
//		Count: i18n.Count(3),
//		Vars:  i18n.Vars{"count": 3},
//	})
//	// msg == "3 messages"
//
// Trees reach the store through Store.Add payloads or through a FileLoader
// reading YAML, JSON or TOML files of the shape locale -> key -> value.
package i18n

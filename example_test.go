package i18n_test

import (
	"fmt"

	i18n "github.com/goliatone/go-translate"
)

func ExampleTranslator_Translate() {
	store := i18n.NewMemoryStore()
	store.Add("en", map[string]any{
		"inbox": map[string]any{
			"zero":  "No messages",
			"one":   "One message",
			"other": "{{count}} messages",
		},
	})

	t, _ := i18n.New(store)

	for _, n := range []int{0, 1, 3} {
		msg, _ := t.Translate([]string{"es", "en"}, "inbox", i18n.Options{
			Count: i18n.Count(n),
			Vars:  i18n.Vars{"count": n},
		})
		fmt.Println(msg)
	}
	// Output:
	// No messages
	// One message
	// 3 messages
}

func ExampleTranslator_Translate_defaults() {
	store := i18n.NewMemoryStore()
	store.Add("en", map[string]any{"fallback": "Fallback [en]"})

	t, _ := i18n.New(store)

	// A key-reference default found for a later locale beats the literal.
	msg, _ := t.Translate([]string{"es", "en"}, "missing", i18n.Options{
		Default: i18n.Chain{i18n.Reference("fallback"), i18n.Literal("Untranslated")},
	})
	fmt.Println(msg)

	// The literal applies once every locale is exhausted.
	msg, _ = t.Translate([]string{"es"}, "missing", i18n.Options{
		Default: i18n.Chain{i18n.Reference("fallback"), i18n.Literal("Untranslated")},
	})
	fmt.Println(msg)
	// Output:
	// Fallback [en]
	// Untranslated
}

func ExampleTranslator_TranslateLocale() {
	store := i18n.NewMemoryStore()
	store.Add("en", map[string]any{"greeting": "Hello {{name}}"})

	t, _ := i18n.New(store, i18n.WithDefaultLocale("en"))

	// en-AU walks up to its parent tag before reaching the default locale.
	msg, _ := t.TranslateLocale("en-AU", "greeting", i18n.Options{
		Vars: i18n.Vars{"name": "Sam"},
	})
	fmt.Println(msg)
	// Output:
	// Hello Sam
}

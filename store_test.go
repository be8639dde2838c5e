package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreLookup(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Add("en", map[string]any{
		"home": map[string]any{
			"title": "Welcome",
			"nav":   map[string]any{"back": "Back"},
		},
		"plain": "value",
	}))

	tests := []struct {
		name   string
		locale string
		path   []string
		want   any
		wantOK bool
	}{
		{name: "leaf", locale: "en", path: []string{"plain"}, want: "value", wantOK: true},
		{name: "nested leaf", locale: "en", path: []string{"home", "nav", "back"}, want: "Back", wantOK: true},
		{name: "subtree", locale: "en", path: []string{"home", "nav"}, want: map[string]any{"back": "Back"}, wantOK: true},
		{name: "locale case folded", locale: "EN", path: []string{"plain"}, want: "value", wantOK: true},
		{name: "unknown locale", locale: "fr", path: []string{"plain"}},
		{name: "unknown segment", locale: "en", path: []string{"home", "missing"}},
		{name: "walk through a leaf", locale: "en", path: []string{"plain", "deeper"}},
		{name: "empty path", locale: "en", path: nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := store.Lookup(tc.locale, tc.path...)
			assert.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestMemoryStoreDeepMerge(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Add("en", map[string]any{
		"home": map[string]any{"title": "Welcome", "footer": "Bye"},
	}))
	require.NoError(t, store.Add("en", map[string]any{
		"home": map[string]any{"title": "Hello", "extra": "More"},
	}))

	// Leaf overwritten.
	got, ok := store.Lookup("en", "home", "title")
	require.True(t, ok)
	assert.Equal(t, "Hello", got)

	// Siblings from the earlier merge survive.
	got, ok = store.Lookup("en", "home", "footer")
	require.True(t, ok)
	assert.Equal(t, "Bye", got)

	got, ok = store.Lookup("en", "home", "extra")
	require.True(t, ok)
	assert.Equal(t, "More", got)

	// A leaf replacing a subtree wins.
	require.NoError(t, store.Add("en", map[string]any{"home": "flattened"}))
	got, ok = store.Lookup("en", "home")
	require.True(t, ok)
	assert.Equal(t, "flattened", got)
}

func TestMemoryStoreMergeCopiesPayload(t *testing.T) {
	store := NewMemoryStore()
	payload := map[string]any{
		"home": map[string]any{"title": "Welcome"},
	}
	require.NoError(t, store.Add("en", payload))

	payload["home"].(map[string]any)["title"] = "Mutated"

	got, ok := store.Lookup("en", "home", "title")
	require.True(t, ok)
	assert.Equal(t, "Welcome", got)
}

func TestMemoryStoreLocales(t *testing.T) {
	store := NewMemoryStore()
	assert.Nil(t, store.Locales())

	require.NoError(t, store.Add("es_MX", map[string]any{"k": "v"}))
	require.NoError(t, store.Add("EN", map[string]any{"k": "v"}))
	require.NoError(t, store.Add("de", map[string]any{"k": "v"}))

	assert.Equal(t, []string{"de", "en", "es-mx"}, store.Locales())
}

func TestMemoryStoreAddEmptyLocale(t *testing.T) {
	store := NewMemoryStore()
	assert.Error(t, store.Add("  ", map[string]any{"k": "v"}))
	assert.NoError(t, store.Add("en", nil))
}

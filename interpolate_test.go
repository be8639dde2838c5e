package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpolate(t *testing.T) {
	tests := []struct {
		name     string
		template string
		vars     Vars
		want     string
	}{
		{
			name:     "single placeholder",
			template: "Hello {{name}}",
			vars:     Vars{"name": "Alice"},
			want:     "Hello Alice",
		},
		{
			name:     "repeated and multiple placeholders",
			template: "{{a}} and {{b}} and {{a}}",
			vars:     Vars{"a": "x", "b": "y"},
			want:     "x and y and x",
		},
		{
			name:     "escaped token stays literal",
			template: `file {{file}} opened by \{{user}}`,
			vars:     Vars{"file": "t.txt"},
			want:     "file t.txt opened by {{user}}",
		},
		{
			name:     "non-string values are stringified",
			template: "{{count}} of {{total}}",
			vars:     Vars{"count": 3, "total": 9.5},
			want:     "3 of 9.5",
		},
		{
			name:     "count is not a reserved name",
			template: "{{count}} items",
			vars:     Vars{"count": 2},
			want:     "2 items",
		},
		{
			name:     "multibyte text survives untouched",
			template: "café «{{qui}}» — привет",
			vars:     Vars{"qui": "toi"},
			want:     "café «toi» — привет",
		},
		{
			name:     "no placeholders",
			template: "plain text",
			want:     "plain text",
		},
		{
			name:     "unknown brace content ignored",
			template: "{{not a token}} {{ok}}",
			vars:     Vars{"ok": "fine"},
			want:     "{{not a token}} fine",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := interpolate(tc.template, tc.vars)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestInterpolateMissingArgument(t *testing.T) {
	_, err := interpolate("{{x}}", Vars{})
	require.ErrorIs(t, err, ErrMissingArgument)

	var missing *MissingArgumentError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "x", missing.Name)
	assert.Equal(t, "{{x}}", missing.Template)

	_, err = interpolate("{{x}}", nil)
	assert.ErrorIs(t, err, ErrMissingArgument)
}

func TestInterpolateReservedKeys(t *testing.T) {
	for _, name := range []string{"scope", "default"} {
		_, err := interpolate("value: {{"+name+"}}", Vars{name: "supplied anyway"})
		require.ErrorIs(t, err, ErrReservedKey)

		var reserved *ReservedKeyError
		require.ErrorAs(t, err, &reserved)
		assert.Equal(t, name, reserved.Name)
	}

	// Escaped reserved tokens are fine.
	got, err := interpolate(`\{{scope}}`, nil)
	require.NoError(t, err)
	assert.Equal(t, "{{scope}}", got)
}

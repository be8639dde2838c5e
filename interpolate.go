package i18n

import (
	"fmt"
	"regexp"
	"strings"
)

// Placeholder tokens look like {{name}}. A leading backslash escapes the
// token: \{{name}} is emitted as the literal {{name}}.
var placeholderPattern = regexp.MustCompile(`\\?\{\{([a-zA-Z0-9_]+)\}\}`)

// reservedVarNames are option fields that steer resolution and are never
// legal as placeholders. Note that count is not reserved: templates may
// render the pluralization count.
var reservedVarNames = map[string]struct{}{
	"scope":   {},
	"default": {},
}

// interpolate substitutes placeholder tokens in template with values from
// vars. Text outside substituted spans is preserved byte for byte.
func interpolate(template string, vars Vars) (string, error) {
	if !strings.Contains(template, "{{") {
		return template, nil
	}

	var firstErr error
	out := placeholderPattern.ReplaceAllStringFunc(template, func(match string) string {
		if match[0] == '\\' {
			// Drop the escape marker, keep the token literal.
			return match[1:]
		}

		name := match[2 : len(match)-2]
		if _, reserved := reservedVarNames[name]; reserved {
			if firstErr == nil {
				firstErr = &ReservedKeyError{Name: name}
			}
			return match
		}

		value, ok := vars[name]
		if !ok {
			if firstErr == nil {
				firstErr = &MissingArgumentError{Name: name, Template: template}
			}
			return match
		}
		return fmt.Sprintf("%v", value)
	})

	if firstErr != nil {
		return "", firstErr
	}
	return out, nil
}

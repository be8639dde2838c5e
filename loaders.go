package i18n

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Loader retrieves translation payloads used to seed a Store.
type Loader interface {
	Load() (Translations, error)
}

// LoaderFunc adapters allow bare functions to implement the Loader interface.
type LoaderFunc func() (Translations, error)

// Load implements Loader for LoaderFunc.
func (fn LoaderFunc) Load() (Translations, error) {
	return fn()
}

// FileLoader reads translation files from explicit paths; there is no
// directory scanning. YAML, JSON and TOML are supported, selected by file
// extension. Every file holds the locale -> nested tree shape; trees from
// multiple files deep-merge in path order.
type FileLoader struct {
	paths []string
}

var _ Loader = (*FileLoader)(nil)

// NewFileLoader builds a loader over the given file paths.
func NewFileLoader(paths ...string) *FileLoader {
	return &FileLoader{paths: append([]string(nil), paths...)}
}

// Load reads and merges every configured file.
func (l *FileLoader) Load() (Translations, error) {
	if l == nil || len(l.paths) == 0 {
		return nil, errors.New("i18n: no loader paths configured")
	}

	out := make(Translations)
	for _, path := range l.paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("i18n: read %s: %w", path, err)
		}

		decoded, err := decodeTranslationFile(path, data)
		if err != nil {
			return nil, fmt.Errorf("i18n: decode %s: %w", path, err)
		}

		for locale, tree := range decoded {
			code := normalizeLocale(locale)
			if code == "" || len(tree) == 0 {
				continue
			}
			existing, ok := out[code]
			if !ok {
				existing = make(map[string]any, len(tree))
				out[code] = existing
			}
			mergeTree(existing, tree)
		}
	}
	return out, nil
}

func decodeTranslationFile(path string, data []byte) (map[string]map[string]any, error) {
	raw := make(map[string]map[string]any)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	case ".toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported translation file extension %q", ext)
	}
	return raw, nil
}

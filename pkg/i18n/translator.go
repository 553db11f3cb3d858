package i18n

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"maps"
	"regexp"
	"slices"
	"strings"
	"sync"

	"github.com/dmitrymomot/formhandler/pkg/logger"
)

// DefaultLanguage is used when nothing better is negotiated.
const DefaultLanguage = "en"

// Translator looks up dot separated keys in per-language translation trees.
// Safe for concurrent use.
type Translator struct {
	mu           sync.RWMutex
	translations map[string]map[string]any
	defaultLang  string
	logger       *slog.Logger
}

// Option configures a Translator.
type Option func(*Translator)

// WithDefaultLanguage sets the language negotiated when the client asks for
// nothing supported.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.defaultLang = strings.ToLower(lang)
		}
	}
}

// WithLogger logs missing translations at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(t *Translator) {
		if l != nil {
			t.logger = l
		}
	}
}

// New creates a translator from parsed trees keyed by language.
func New(translations map[string]map[string]any, opts ...Option) *Translator {
	t := &Translator{
		translations: make(map[string]map[string]any, len(translations)),
		defaultLang:  DefaultLanguage,
		logger:       logger.Discard(),
	}
	for _, opt := range opts {
		opt(t)
	}
	for lang, tree := range translations {
		t.translations[strings.ToLower(lang)] = tree
	}
	return t
}

// Load reads every YAML and JSON file at the root of fsys and merges them by
// language. Later files override earlier ones key by key.
func Load(fsys fs.FS, opts ...Option) (*Translator, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}

	merged := make(map[string]map[string]any)
	for _, entry := range entries {
		parser := ParserFor(entry.Name())
		if entry.IsDir() || parser == nil {
			continue
		}
		content, err := fs.ReadFile(fsys, entry.Name())
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, err)
		}
		parsed, err := parser.Parse(content)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", entry.Name(), err)
		}
		for lang, tree := range parsed {
			if merged[lang] == nil {
				merged[lang] = make(map[string]any)
			}
			mergeTree(merged[lang], tree)
		}
	}
	if len(merged) == 0 {
		return nil, ErrNoTranslations
	}
	return New(merged, opts...), nil
}

// DefaultLanguage returns the fallback language.
func (t *Translator) DefaultLanguage() string { return t.defaultLang }

// Languages returns the languages with translations, sorted.
func (t *Translator) Languages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Sorted(maps.Keys(t.translations))
}

// Lookup returns the translation of key in lang with %{name} placeholders
// replaced from params. ok is false when lang has no string under key.
func (t *Translator) Lookup(lang, key string, params map[string]string) (string, bool) {
	t.mu.RLock()
	tree, ok := t.translations[strings.ToLower(lang)]
	t.mu.RUnlock()
	if !ok {
		return "", false
	}

	s, ok := lookup(tree, key).(string)
	if !ok {
		t.logger.Debug("translation missing", slog.String("lang", lang), slog.String("key", key))
		return "", false
	}
	return substitute(s, params), true
}

// T translates key in lang, taking params as name, value pairs. It returns
// the key itself when no translation exists.
func (t *Translator) T(lang, key string, args ...string) string {
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	if s, ok := t.Lookup(lang, key, params); ok {
		return s
	}
	return key
}

func lookup(tree map[string]any, key string) any {
	var cur any = tree
	for part := range strings.SplitSeq(key, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		if cur, ok = m[part]; !ok {
			return nil
		}
	}
	return cur
}

func mergeTree(dst, src map[string]any) {
	for k, v := range src {
		sub, ok := v.(map[string]any)
		if !ok {
			dst[k] = v
			continue
		}
		existing, ok := dst[k].(map[string]any)
		if !ok {
			existing = make(map[string]any, len(sub))
			dst[k] = existing
		}
		mergeTree(existing, sub)
	}
}

var placeholder = regexp.MustCompile(`%\{([^}]+)\}`)

// substitute replaces %{name} placeholders. Unknown names are kept.
func substitute(s string, params map[string]string) string {
	if len(params) == 0 || !strings.Contains(s, "%{") {
		return s
	}
	return placeholder.ReplaceAllStringFunc(s, func(m string) string {
		if v, ok := params[m[2:len(m)-1]]; ok {
			return v
		}
		return m
	})
}

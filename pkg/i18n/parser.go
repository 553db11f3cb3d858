package i18n

import (
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parser decodes a translation file into per-language trees.
// The top level keys of a file are language codes.
type Parser interface {
	Parse(content []byte) (map[string]map[string]any, error)
}

// ParserFunc adapts a function to Parser.
type ParserFunc func(content []byte) (map[string]map[string]any, error)

func (f ParserFunc) Parse(content []byte) (map[string]map[string]any, error) { return f(content) }

// YAML parses YAML translation files.
var YAML Parser = ParserFunc(func(content []byte) (map[string]map[string]any, error) {
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	return byLanguage(data)
})

// JSON parses JSON translation files.
var JSON Parser = ParserFunc(func(content []byte) (map[string]map[string]any, error) {
	var data map[string]any
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseJSON, err)
	}
	return byLanguage(data)
})

// ParserFor picks a parser by file extension, nil when unsupported.
func ParserFor(name string) Parser {
	switch strings.ToLower(strings.TrimPrefix(path.Ext(name), ".")) {
	case "yaml", "yml":
		return YAML
	case "json":
		return JSON
	}
	return nil
}

func byLanguage(data map[string]any) (map[string]map[string]any, error) {
	out := make(map[string]map[string]any, len(data))
	for lang, v := range data {
		tree, ok := v.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: language %q holds %T, expected a map", ErrInvalidStructure, lang, v)
		}
		out[strings.ToLower(lang)] = tree
	}
	return out, nil
}

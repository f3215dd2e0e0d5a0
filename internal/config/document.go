// Package config loads the steward tools' YAML configuration documents and
// resolves field values across sources with a fixed precedence chain:
// command line > config document > hard default.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is a read-only nested key-value configuration document.
// Section and key names are lower-cased on load; there is no schema
// enforcement beyond presence checks by callers.
type Document struct {
	root map[string]any
}

// Load parses the YAML document at path. A missing or malformed file is an
// error naming the path; callers treat it as fatal.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return doc, nil
}

// Parse builds a Document from raw YAML bytes.
func Parse(data []byte) (*Document, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	return &Document{root: lowerKeys(raw)}, nil
}

// lowerKeys lower-cases every map key, recursively.
func lowerKeys(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		if sub, ok := v.(map[string]any); ok {
			v = lowerKeys(sub)
		}
		out[strings.ToLower(k)] = v
	}
	return out
}

// lookup walks the key path and returns the raw value. Path elements are
// lower-cased before matching. Nil documents report nothing present, so a
// never-loaded defaults file resolves like an empty one.
func (d *Document) lookup(path ...string) (any, bool) {
	if d == nil || len(path) == 0 {
		return nil, false
	}
	var cur any = d.root
	for _, key := range path {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[strings.ToLower(key)]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// Section returns the nested document at the given key path.
func (d *Document) Section(path ...string) (*Document, bool) {
	v, ok := d.lookup(path...)
	if !ok {
		return nil, false
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	return &Document{root: m}, true
}

// Get returns the scalar at the key path rendered as a string. Missing keys
// and non-scalar values report false.
func (d *Document) Get(path ...string) (string, bool) {
	v, ok := d.lookup(path...)
	if !ok {
		return "", false
	}
	switch v.(type) {
	case map[string]any, []any, nil:
		return "", false
	}
	return fmt.Sprintf("%v", v), true
}

// Bool returns the value at the key path as a boolean resolution source.
// Unrecognized tokens count as absent.
func (d *Document) Bool(path ...string) BoolSource {
	s, ok := d.Get(path...)
	if !ok {
		return BoolSource{}
	}
	v, ok := ParseBool(s)
	if !ok {
		return BoolSource{}
	}
	return BoolSource{Value: v, Set: true}
}

// Int returns the value at the key path as an integer resolution source.
func (d *Document) Int(path ...string) IntSource {
	s, ok := d.Get(path...)
	if !ok {
		return IntSource{}
	}
	var v int
	if _, err := fmt.Sscanf(s, "%d", &v); err != nil {
		return IntSource{}
	}
	return IntSource{Value: v, Set: true}
}

package config

import "strings"

// BoolSource is one layer's contribution to a boolean field. Set marks
// whether the layer supplied the value at all, which keeps an explicit
// "false" from the command line from being shadowed by a config file.
type BoolSource struct {
	Value bool
	Set   bool
}

// IntSource is one layer's contribution to an integer field.
type IntSource struct {
	Value int
	Set   bool
}

// FirstString returns the first non-empty value. Callers list sources in
// precedence order: command line, config document, hard default.
func FirstString(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// ResolveBool returns the first set source's value, falling back to def.
func ResolveBool(def bool, sources ...BoolSource) bool {
	for _, s := range sources {
		if s.Set {
			return s.Value
		}
	}
	return def
}

// ResolveInt returns the first set source's value, falling back to def.
func ResolveInt(def int, sources ...IntSource) int {
	for _, s := range sources {
		if s.Set {
			return s.Value
		}
	}
	return def
}

// ParseBool interprets boolean-like tokens. The second return reports
// whether the token was recognized at all.
func ParseBool(s string) (value, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "on":
		return true, true
	case "false", "0", "no", "off":
		return false, true
	default:
		return false, false
	}
}

package core

import (
	"strconv"
	"strings"

	pcore "procrand/pkg/core"
)

// IntFromMap reads key from cfg and returns it when it parses and lies in
// [lo, hi]. Otherwise it returns def.
func IntFromMap(cfg map[string]string, key string, def, lo, hi int) int {
	v, ok := cfg[key]
	if !ok {
		return def
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || parsed < lo || parsed > hi {
		return def
	}
	return parsed
}

// GeneratorFromMap reads a registered generator name from cfg, falling back
// to def for missing or unknown names.
func GeneratorFromMap(cfg map[string]string, key, def string) string {
	v, ok := cfg[key]
	if !ok {
		return def
	}
	v = strings.TrimSpace(v)
	if _, ok := pcore.Sources()[v]; !ok {
		return def
	}
	return v
}

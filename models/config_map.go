// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"sort"
)

// ConfigMap is a materialized configuration mapping. Values are scalars
// (string, numbers, bool) or nested ConfigMap / map[string]any values.
//
// The same logical key may be present several times in different shapes
// (original, clean, nested, legacy) pointing at one value; lookups rely on
// that redundancy.
type ConfigMap map[string]any

// Keys returns the keys of the mapping in lexical order.
func (m ConfigMap) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns a deep copy of the mapping. Nested maps are copied
// recursively, so mutating the copy never affects the receiver.
func (m ConfigMap) Clone() ConfigMap {
	if m == nil {
		return ConfigMap{}
	}
	out := make(ConfigMap, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch value := v.(type) {
	case ConfigMap:
		return map[string]any(value.Clone())
	case map[string]any:
		return map[string]any(ConfigMap(value).Clone())
	case []any:
		out := make([]any, len(value))
		for i := range value {
			out[i] = cloneValue(value[i])
		}
		return out
	default:
		return v
	}
}

// Lookup walks a dotted path ("a.b.c") through nested maps and returns the
// value found at its end. A key containing dots that exists verbatim at the
// top level is not considered here; callers check direct keys first.
func (m ConfigMap) Lookup(path string) (any, bool) {
	var current any = map[string]any(m)
	start := 0
	for i := 0; i <= len(path); i++ {
		if i < len(path) && path[i] != '.' {
			continue
		}
		segment := path[start:i]
		start = i + 1
		if segment == "" {
			return nil, false
		}

		var next map[string]any
		switch node := current.(type) {
		case map[string]any:
			next = node
		case ConfigMap:
			next = node
		default:
			return nil, false
		}

		value, ok := next[segment]
		if !ok {
			return nil, false
		}
		current = value
	}

	if current == nil {
		return nil, false
	}
	return current, true
}

package keytransform

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// KeyMapping overrides the generic transformation rule for one key of one
// app. EnvKey may be given with or without the PREFIX_{APP}_ prefix.
type KeyMapping struct {
	EnvKey       string   `json:"envKey"`
	ServiceKey   string   `json:"serviceKey"`
	FallbackKeys []string `json:"fallbackKeys,omitempty"`
}

// LoadMappings reads custom key mappings from a JSON file shaped as
//
//	{"admin": [{"envKey": "LEGACY_URL", "serviceKey": "api.url"}]}
func LoadMappings(path string) (map[string][]KeyMapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading key mappings: %w", err)
	}

	var mappings map[string][]KeyMapping
	if err := json.Unmarshal(data, &mappings); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMappings, err)
	}

	for appID, list := range mappings {
		for i, m := range list {
			if m.EnvKey == "" && m.ServiceKey == "" {
				return nil, fmt.Errorf("%w: %s[%d] has neither envKey nor serviceKey", ErrInvalidMappings, appID, i)
			}
		}
	}
	return mappings, nil
}

// appMappings returns the mappings of appID followed by the global ones.
func (t *Transformer) appMappings(appID string) []KeyMapping {
	if appID == "" {
		return t.mappings[""]
	}
	app := t.mappings[strings.ToLower(appID)]
	global := t.mappings[""]
	if len(global) == 0 {
		return app
	}
	return append(append(make([]KeyMapping, 0, len(app)+len(global)), app...), global...)
}

// mappingForEnvKey finds the mapping whose EnvKey equals either the full or
// the prefix-stripped variable name.
func (t *Transformer) mappingForEnvKey(appID, envKey, stripped string) (KeyMapping, bool) {
	for _, m := range t.appMappings(appID) {
		if m.EnvKey == "" {
			continue
		}
		if strings.EqualFold(m.EnvKey, stripped) || strings.EqualFold(m.EnvKey, envKey) {
			return m, true
		}
	}
	return KeyMapping{}, false
}

func (t *Transformer) mappingForServiceKey(appID, clean string) (KeyMapping, bool) {
	for _, m := range t.appMappings(appID) {
		if m.ServiceKey != "" && NormalizeKey(m.ServiceKey) == clean {
			return m, true
		}
	}
	return KeyMapping{}, false
}

// relatedMappings returns every mapping that matches key by env key or by
// clean service key.
func (t *Transformer) relatedMappings(appID, key, clean string) []KeyMapping {
	stripped := t.StripPrefix(key, appID)

	var out []KeyMapping
	for _, m := range t.appMappings(appID) {
		switch {
		case m.ServiceKey != "" && NormalizeKey(m.ServiceKey) == clean:
			out = append(out, m)
		case m.EnvKey != "" && (strings.EqualFold(m.EnvKey, key) || strings.EqualFold(m.EnvKey, stripped)):
			out = append(out, m)
		}
	}
	return out
}

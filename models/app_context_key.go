// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AppContextKey holds the five parallel representations of one logical
// configuration key. It is always produced as a whole by the key
// transformer, never slot by slot.
//
// For app "admin" and generic prefix "CONFIG" the key api.url reads:
//
//	Original: whatever the caller passed in
//	Clean:    api.url
//	Service:  admin:api.url
//	Legacy:   CONFIG_ADMIN_API_URL
//	Nested:   admin.api.url
type AppContextKey struct {
	Original string `json:"original"`
	Clean    string `json:"clean"`
	Service  string `json:"service"`
	Legacy   string `json:"legacy"`
	Nested   string `json:"nested"`
}

// Forms returns the distinct non-empty forms in a stable order:
// original, clean, service, legacy, nested.
func (k AppContextKey) Forms() []string {
	forms := make([]string, 0, 5)
	seen := make(map[string]struct{}, 5)
	for _, f := range []string{k.Original, k.Clean, k.Service, k.Legacy, k.Nested} {
		if f == "" {
			continue
		}
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		forms = append(forms, f)
	}
	return forms
}

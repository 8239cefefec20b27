// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"maps"
	"os"
	"strings"
	"sync"
)

// Environment is a read view of process environment variables.
//
// The cache, the loaders and the fallback system read variables through it so
// tests can substitute a MapEnvironment for the real process environment.
type Environment interface {
	// Lookup returns the value of key and whether it is set.
	Lookup(key string) (string, bool)
	// Environ returns a copy of every variable.
	Environ() map[string]string
}

// OSEnvironment reads the live process environment.
type OSEnvironment struct{}

// NewOSEnvironment returns an Environment backed by os.Environ.
func NewOSEnvironment() OSEnvironment {
	return OSEnvironment{}
}

func (OSEnvironment) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

func (OSEnvironment) Environ() map[string]string {
	raw := os.Environ()
	vars := make(map[string]string, len(raw))
	for _, kv := range raw {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			continue
		}
		vars[key] = value
	}
	return vars
}

// MapEnvironment is an in-memory Environment. It is safe for concurrent use.
type MapEnvironment struct {
	mu   sync.RWMutex
	vars map[string]string
}

// NewMapEnvironment returns a MapEnvironment seeded with a copy of vars.
func NewMapEnvironment(vars map[string]string) *MapEnvironment {
	m := make(map[string]string, len(vars))
	maps.Copy(m, vars)
	return &MapEnvironment{vars: m}
}

func (e *MapEnvironment) Lookup(key string) (string, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	v, ok := e.vars[key]
	return v, ok
}

func (e *MapEnvironment) Environ() map[string]string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return maps.Clone(e.vars)
}

// Set adds or replaces a variable.
func (e *MapEnvironment) Set(key, value string) {
	e.mu.Lock()
	e.vars[key] = value
	e.mu.Unlock()
}

// Unset removes a variable.
func (e *MapEnvironment) Unset(key string) {
	e.mu.Lock()
	delete(e.vars, key)
	e.mu.Unlock()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashVariables_Deterministic(t *testing.T) {
	vars := map[string]string{
		"CONFIG_API_URL":    "https://svc",
		"DATABASE_URL":      "postgres://db",
		"NEXTAUTH_SECRET":   "s3cr3t",
		"CONFIG_ADMIN_MODE": "on",
	}

	h1 := HashVariables(vars)
	h2 := HashVariables(vars)

	assert.Equal(t, h1, h2)
	assert.NotZero(t, h1)
}

func TestHashVariables_DetectsChange(t *testing.T) {
	before := map[string]string{"CONFIG_API_URL": "https://a"}
	after := map[string]string{"CONFIG_API_URL": "https://b"}

	assert.NotEqual(t, HashVariables(before), HashVariables(after))
}

func TestHashVariables_AddedVariable(t *testing.T) {
	before := map[string]string{"A": "1"}
	after := map[string]string{"A": "1", "B": ""}

	assert.NotEqual(t, HashVariables(before), HashVariables(after))
}

func TestContentHash_MapOrderIndependent(t *testing.T) {
	m1 := map[string]any{"b": 2, "a": map[string]any{"y": true, "x": "1"}}
	m2 := map[string]any{"a": map[string]any{"x": "1", "y": true}, "b": 2}

	h1, err := ContentHash(m1)
	require.NoError(t, err)
	h2, err := ContentHash(m2)
	require.NoError(t, err)

	assert.Equal(t, h1, h2)
	assert.Len(t, h1, 16)
}

func TestContentHash_Unmarshalable(t *testing.T) {
	_, err := ContentHash(make(chan int))
	assert.Error(t, err)
}

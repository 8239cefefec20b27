package utils

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// HashVariables computes a stable xxhash64 digest over a set of environment
// variables. Keys are sorted and each pair is written as "key=value\n", so
// the digest does not depend on map iteration order.
//
// Example usage:
//
//	h := utils.HashVariables(map[string]string{"CONFIG_API_URL": "https://x"})
func HashVariables(vars map[string]string) uint64 {
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	d := xxhash.New()
	var b strings.Builder
	for _, k := range keys {
		b.Reset()
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(vars[k])
		b.WriteByte('\n')
		_, _ = d.WriteString(b.String())
	}
	return d.Sum64()
}

// ContentHash computes the xxhash64 digest of the JSON encoding of v.
//
// encoding/json sorts map keys, so two deeply equal configuration maps
// always produce the same digest.
//
// Returns:
//
//	string - 16 hex characters
//	error  - non-nil if v cannot be marshaled
func ContentHash(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("error hashing content: %w", err)
	}
	return fmt.Sprintf("%016x", xxhash.Sum64(data)), nil
}

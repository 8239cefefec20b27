// Package utils provides general-purpose helper utilities
// used across different parts of the resolver.
// Includes tools for working with context, type-safe keys, hashing,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and access to the process environment.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// ClientIDCtxKey is the key used to store the authenticated API caller in the
// context. The value is the "sub" claim of the bearer token.
//
//	ctx := context.WithValue(ctx, utils.ClientIDCtxKey, "deploy-bot")
var ClientIDCtxKey = contextKey("clientID")

// GetClientIDFromContext retrieves the caller identifier from the context.
//
// Returns ok == false when the value is missing or is not a string.
func GetClientIDFromContext(ctx context.Context) (string, bool) {
	clientID, ok := ctx.Value(ClientIDCtxKey).(string)
	return clientID, ok
}

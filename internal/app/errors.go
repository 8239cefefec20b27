// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"errors"
	"strings"
)

// Error kinds. Every *Error unwraps to exactly one of them, so callers match
// the category with errors.Is regardless of the underlying cause.
var (
	// ErrConfiguration means source aggregation failed: every source was
	// exhausted without producing data.
	ErrConfiguration = errors.New("configuration error")

	// ErrRemoteClient means authentication or connectivity to the remote
	// configuration service failed.
	ErrRemoteClient = errors.New("remote client error")

	// ErrValidation means a malformed application id or option.
	ErrValidation = errors.New("validation error")

	// ErrCache means the storage layer failed.
	ErrCache = errors.New("cache error")

	// ErrServer means a collaborator transport failed.
	ErrServer = errors.New("server error")
)

// Error is a categorized error. Kind is one of the sentinels above, Op names
// the operation that failed and AppID the application it was running for.
type Error struct {
	Kind  error
	Op    string
	AppID string
	Err   error
}

// Error renders "op [app]: kind: cause".
func (e *Error) Error() string {
	var b strings.Builder
	if e.Op != "" {
		b.WriteString(e.Op)
	}
	if e.AppID != "" {
		b.WriteString(" [")
		b.WriteString(e.AppID)
		b.WriteString("]")
	}
	if b.Len() > 0 {
		b.WriteString(": ")
	}
	if e.Kind != nil {
		b.WriteString(e.Kind.Error())
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// ConfigurationError wraps err as an ErrConfiguration.
func ConfigurationError(op, appID string, err error) error {
	return &Error{Kind: ErrConfiguration, Op: op, AppID: appID, Err: err}
}

// RemoteClientError wraps err as an ErrRemoteClient.
func RemoteClientError(op string, err error) error {
	return &Error{Kind: ErrRemoteClient, Op: op, Err: err}
}

// ValidationError wraps err as an ErrValidation.
func ValidationError(op, appID string, err error) error {
	return &Error{Kind: ErrValidation, Op: op, AppID: appID, Err: err}
}

// CacheError wraps err as an ErrCache.
func CacheError(op, appID string, err error) error {
	return &Error{Kind: ErrCache, Op: op, AppID: appID, Err: err}
}

// ServerError wraps err as an ErrServer.
func ServerError(op string, err error) error {
	return &Error{Kind: ErrServer, Op: op, Err: err}
}

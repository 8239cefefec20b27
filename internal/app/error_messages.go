// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the error taxonomy and the message constants shared
// by every layer of the configuration resolver.
//
// All Msg* constants are human-readable message strings written into HTTP
// response bodies or log entries. Keeping them in one place keeps wording
// consistent throughout the API.
package app

const (
	// MsgInvalidAppID is returned when an application identifier fails
	// validation (empty, bad characters, path separators or "..").
	MsgInvalidAppID = "invalid application id"

	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgConfigurationNotFound is returned when every source of an
	// application is empty and the fallback produced nothing either.
	MsgConfigurationNotFound = "configuration not found"

	// MsgKeyNotFound is returned when no resolution strategy found the
	// requested key.
	MsgKeyNotFound = "configuration key not found"

	// MsgRemoteUnavailable is returned when the remote configuration
	// service cannot be reached or rejected our credentials.
	MsgRemoteUnavailable = "remote configuration service unavailable"

	// MsgStorageFailure is returned when the snapshot store fails.
	MsgStorageFailure = "configuration storage failure"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"
)

package service

import "errors"

var (
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrAuthDisabled            = errors.New("authentication is disabled")

	ErrSnapshotsDisabled = errors.New("snapshot history is disabled")

	ErrVersionIsNotSpecified = errors.New("version is not specified")
)

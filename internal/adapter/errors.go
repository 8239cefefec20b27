package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")

	ErrRemoteDisabled         = errors.New("remote configuration service disabled")
	ErrVaultNotConfigured     = errors.New("secret vault not configured")
	ErrInvalidSecretReference = errors.New("invalid secret reference")
)

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyAppID     = errors.New("app id is required")
	ErrInvalidAppID   = errors.New("invalid app id")
	ErrAppIDTraversal = errors.New("app id must not contain path separators or '..'")
	ErrEmptyKeys      = errors.New("keys list cannot be empty")
	ErrTooManyKeys    = errors.New("too many keys")
	ErrEmptyKey       = errors.New("key cannot be empty")
	ErrInvalidLimit   = errors.New("invalid limit")
)

package keytransform

import "errors"

// ErrInvalidMappings is returned by LoadMappings for malformed mapping files.
var ErrInvalidMappings = errors.New("invalid key mappings")

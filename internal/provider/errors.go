package provider

import "errors"

var (
	ErrNoConfiguration = errors.New("no configuration source returned data")
	ErrMerge           = errors.New("error merging configuration sources")
)

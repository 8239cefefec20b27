package loader

import "errors"

var (
	ErrReadEnvFile  = errors.New("error reading env file")
	ErrWatchEnvFile = errors.New("error watching env files")
)

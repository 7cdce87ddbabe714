package domain

import "errors"

var (
	ErrUnresolved     = errors.New("frequency data unavailable")
	ErrNoDomains      = errors.New("no scaling domains found")
	ErrUnknownProfile = errors.New("unknown profile")
	ErrInvalidConfig  = errors.New("invalid configuration")
	ErrNoSample       = errors.New("cpu counters unavailable")
)

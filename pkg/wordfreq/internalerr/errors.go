package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrNoSource          = errors.New("no input source selected")
	ErrSourceUnavailable = errors.New("source unavailable")
	ErrEmptyResult       = errors.New("no words survived filtering")
	ErrOutputTarget      = errors.New("output target unavailable")
	ErrInvalidConfig     = errors.New("invalid configuration")
)

package model

import "errors"

var (
	// ErrMalformedRecord marks a billing row with a negative or non-numeric
	// amount. The offending row is rejected; the observation survives.
	ErrMalformedRecord = errors.New("malformed cost record")

	// ErrInvalidThreshold marks a threshold configuration that cannot be
	// classified against (non-positive limits, or warning >= critical).
	ErrInvalidThreshold = errors.New("invalid budget thresholds")
)

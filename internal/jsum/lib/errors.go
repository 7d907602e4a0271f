package lib

import "errors"

// Sentinel errors classifying why processing of one input stopped.
// The driver matches on these with errors.Is to pick the diagnostic
// message; both are local to the failing input and never abort the
// run as a whole.
var (
	// ErrRead marks an I/O fault mid-stream, distinct from EOF.
	ErrRead = errors.New("input read failed")

	// ErrHash marks a digest primitive rejecting its input.
	ErrHash = errors.New("digest computation failed")
)

package domain

import "errors"

// Domain errors represent business logic failures.
// Byte-level anomalies (broken sequences, unmappable code points) are not
// errors: they resolve into counters and diagnostics. Only these surface.
var (
	// ErrInvalidInput indicates a nil or otherwise unusable argument.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnreadableSource indicates the underlying byte source failed.
	// This is the only condition that halts a scan before end of stream;
	// counters accumulated up to the failure remain valid.
	ErrUnreadableSource = errors.New("unreadable source")
)

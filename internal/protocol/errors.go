package protocol

import (
	"github.com/cockroachdb/errors"
)

// Invariantf returns a protocol-invariant violation.
// These are never recoverable: the block being applied must be aborted.
func Invariantf(format string, args ...any) error {
	return errors.AssertionFailedf(format, args...)
}

// IsInvariant reports whether err, or anything it wraps, is a protocol-invariant violation.
func IsInvariant(err error) bool {
	if err == nil {
		return false
	}

	return errors.HasAssertionFailure(err)
}

package sentinel

import "fmt"

// InvalidKeyError is returned when a sentinel value is requested under a key
// that's missing a required component, such as an empty name. It's surfaced
// immediately and never retried because sentinel creation normally happens in
// package-level variable initialization, where masking the problem would hide
// a real programming mistake.
type InvalidKeyError struct {
	// Key is the rejected identity key.
	Key Key

	// Reason is a short description of what's wrong with the key.
	Reason string
}

func (e *InvalidKeyError) Error() string {
	return fmt.Sprintf("sentinel: invalid key %s: %s", e.Key, e.Reason)
}

// UnknownCallerError is returned by SentinelSafely (and panicked by Sentinel)
// when the calling package can't be determined from the call stack. This can
// happen on platforms or build modes that strip stack information; the
// explicit-module New constructor works everywhere.
type UnknownCallerError struct {
	err error
}

func (e *UnknownCallerError) Error() string {
	return fmt.Sprintf("sentinel: unable to determine calling package: %s", e.err)
}

func (e *UnknownCallerError) Unwrap() error { return e.err }

// InvalidEncodingError is returned by Decode when its input isn't a valid
// encoded sentinel identity.
type InvalidEncodingError struct {
	// Reason is a short description of what's wrong with the input.
	Reason string
}

func (e *InvalidEncodingError) Error() string {
	return "sentinel: invalid encoded sentinel: " + e.Reason
}

// Package sentineltest contains test assertions that can be used in a
// project's tests to verify identity properties of sentinel values from the
// main sentinel package.
package sentineltest

import (
	"encoding/json"
	"fmt"

	"github.com/davecgh/go-spew/spew"

	"github.com/sentinelvalue/sentinel"
)

// testingT is an interface wrapper around *testing.T that's implemented by
// all of *testing.T, *testing.F, and *testing.B.
//
// It's used internally to verify that the package's test assertions are
// working as expected.
type testingT interface {
	Errorf(format string, args ...any)
	FailNow()
	Helper()
	Log(args ...any)
	Logf(format string, args ...any)
}

// RequireSame verifies that two sentinel values are the same registered
// instance (pointer-identical), failing the test if they aren't. Sentinel
// values have no structural equality, so this is the only comparison that
// ever makes sense for them.
func RequireSame(tb testingT, expected, actual *sentinel.Value) {
	tb.Helper()
	requireSame(tb, expected, actual)
}

func requireSame(tb testingT, expected, actual *sentinel.Value) {
	tb.Helper()

	if expected != actual {
		failure(tb, "Sentinel values aren't the same instance:\n    expected: %s\n    actual: %s",
			dump(expected), dump(actual))
	}
}

// RequireRegistered verifies that a sentinel value is registered in the given
// registry under key, failing the test if it isn't. If found, the registered
// value is returned so that further assertions can be made against it.
func RequireRegistered(tb testingT, registry *sentinel.Registry, key sentinel.Key) *sentinel.Value {
	tb.Helper()
	return requireRegistered(tb, registry, key)
}

func requireRegistered(tb testingT, registry *sentinel.Registry, key sentinel.Key) *sentinel.Value {
	tb.Helper()

	value, ok := registry.Lookup(key)
	if !ok {
		failure(tb, "No sentinel value registered under key %s", key)
	}
	return value
}

// RequireNotRegistered verifies that no sentinel value is registered in the
// given registry under key, failing the test if one is.
func RequireNotRegistered(tb testingT, registry *sentinel.Registry, key sentinel.Key) {
	tb.Helper()
	requireNotRegistered(tb, registry, key)
}

func requireNotRegistered(tb testingT, registry *sentinel.Registry, key sentinel.Key) {
	tb.Helper()

	if value, ok := registry.Lookup(key); ok {
		failure(tb, "Sentinel value unexpectedly registered under key %s:\n    %s",
			key, dump(value))
	}
}

// RequireRoundTrips verifies that a sentinel value survives a JSON round trip
// through the given registry with its identity intact: the decoded result
// must be the very same instance, not a structurally-equal copy. A nil
// registry round trips through the default registry, which is correct for
// values built with sentinel.New or sentinel.Sentinel.
func RequireRoundTrips(tb testingT, registry *sentinel.Registry, value *sentinel.Value) {
	tb.Helper()
	requireRoundTrips(tb, registry, value)
}

func requireRoundTrips(tb testingT, registry *sentinel.Registry, value *sentinel.Value) {
	tb.Helper()

	if registry == nil {
		registry = sentinel.DefaultRegistry()
	}

	data, err := json.Marshal(value)
	if err != nil {
		failure(tb, "Error marshaling sentinel value %s: %s", value, err)
		return
	}

	decoded, err := registry.Decode(data)
	if err != nil {
		failure(tb, "Error decoding sentinel value from %q: %s", data, err)
		return
	}

	if decoded != value {
		failure(tb, "Decoded sentinel value isn't the original instance:\n    original: %s\n    decoded: %s",
			dump(value), dump(decoded))
	}
}

// dump formats a value for failure output, tolerating nil.
func dump(value *sentinel.Value) string {
	if value == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s %s", value, spew.Sdump(value))
}

// failure takes a printf-style directive and is a shortcut for failing an
// assertion.
func failure(tb testingT, format string, a ...any) {
	tb.Helper()
	tb.Log(failureString(format, a...))
	tb.FailNow()
}

// failureString wraps a printf-style formatting directive with a header and
// footer common to all failure messages.
func failureString(format string, a ...any) string {
	return "\n    Sentinel assertion failure:\n    " + fmt.Sprintf(format, a...) + "\n"
}

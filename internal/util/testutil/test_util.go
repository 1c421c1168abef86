// Package testutil contains test-only helpers shared by the library's own
// test suites.
package testutil

import (
	"fmt"
	"os"
	"testing"

	"go.uber.org/goleak"
)

// WrapTestMain performs common setup and teardown shared amongst all of the
// library's packages, namely checking for goroutine leaks after an otherwise
// successful run.
func WrapTestMain(m *testing.M) {
	status := m.Run()

	if status == 0 {
		if err := goleak.Find(); err != nil {
			fmt.Fprintf(os.Stderr, "goleak: errors on successful test run: %v\n", err)
			status = 1
		}
	}

	os.Exit(status)
}

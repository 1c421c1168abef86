package callermodule_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sentinelvalue/sentinel/internal/callermodule"
)

// These tests live in the external test package on purpose: frames inside the
// callermodule package itself are skipped by the walk, so a caller can only
// be observed from outside it.

func TestCaller(t *testing.T) {
	t.Parallel()

	pkg, err := callermodule.Caller()
	require.NoError(t, err)
	require.Equal(t, "github.com/sentinelvalue/sentinel/internal/callermodule_test", pkg)
}

func TestCallerFromClosure(t *testing.T) {
	t.Parallel()

	var (
		pkg string
		err error
	)
	func() {
		pkg, err = callermodule.Caller()
	}()
	require.NoError(t, err)
	require.Equal(t, "github.com/sentinelvalue/sentinel/internal/callermodule_test", pkg)
}

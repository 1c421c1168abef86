package sentinel

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sentinelvalue/sentinel/internal/callermodule"
)

func TestInvalidKeyError(t *testing.T) {
	t.Parallel()

	err := &InvalidKeyError{Key: Key{Module: "mod1", Name: "MISSING"}, Reason: "name must be non-empty"}
	require.Equal(t, "sentinel: invalid key mod1.MISSING: name must be non-empty", err.Error())
}

func TestUnknownCallerError(t *testing.T) {
	t.Parallel()

	err := &UnknownCallerError{err: callermodule.ErrCallerUnavailable}
	require.Equal(t, "sentinel: unable to determine calling package: no caller frame outside the sentinel library", err.Error())
	require.ErrorIs(t, err, callermodule.ErrCallerUnavailable)
}

func TestInvalidEncodingError(t *testing.T) {
	t.Parallel()

	err := &InvalidEncodingError{Reason: "input isn't valid JSON"}
	require.Equal(t, "sentinel: invalid encoded sentinel: input isn't valid JSON", err.Error())
	require.False(t, errors.Is(err, &InvalidEncodingError{Reason: "other"}))
}

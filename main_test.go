package sentinel_test

import (
	"testing"

	"github.com/sentinelvalue/sentinel/internal/util/testutil"
)

func TestMain(m *testing.M) {
	testutil.WrapTestMain(m)
}

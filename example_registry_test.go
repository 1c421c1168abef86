package sentinel_test

import (
	"fmt"
	"log/slog"

	"github.com/sentinelvalue/sentinel"
	"github.com/sentinelvalue/sentinel/internal/util/slogutil"
)

// Example_customRegistry demonstrates constructing a dedicated registry
// instead of relying on the process-wide default, which is mainly useful for
// tests that want isolation from other tests' sentinels.
func Example_customRegistry() {
	registry := sentinel.NewRegistry(&sentinel.Config{
		Logger: slog.New(&slogutil.SlogMessageOnlyHandler{Level: slog.LevelDebug}),
	})

	missing, err := registry.GetOrCreate(sentinel.Key{Module: "example.com/cache", Name: "MISSING"})
	if err != nil {
		panic(err)
	}

	// A second request under the same identity returns the registered
	// instance; nothing new is created or logged.
	again, err := registry.GetOrCreate(sentinel.Key{Module: "example.com/cache", Name: "MISSING"})
	if err != nil {
		panic(err)
	}
	fmt.Println(missing == again)

	for _, key := range registry.Keys() {
		fmt.Println(key)
	}

	// Output:
	// sentinel: registered new sentinel value
	// true
	// example.com/cache.MISSING
}

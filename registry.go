package sentinel

import (
	"log/slog"
	"sort"
	"sync"
)

// Config are configuration settings for a Registry.
type Config struct {
	// Logger is the structured logger to use for logging purposes. If none is
	// specified, logs will be emitted through slog's default logger. First
	// creations are logged at debug level; reuse isn't logged at all.
	Logger *slog.Logger
}

// Registry is a process-wide store mapping identity keys to their single live
// sentinel value. It's safe for concurrent use: a mutex serializes the
// check-then-insert sequence so that racing creations of the same identity
// perform exactly one initialization and all observe the same instance.
//
// A registry only grows. Entries are never evicted for the lifetime of the
// process, and the registry's references guarantee registered values are
// never collected while it lives.
//
// Most programs use the package-level constructors, which share the registry
// returned by DefaultRegistry. Constructing a dedicated registry is mainly
// useful in tests that need isolation from other tests' sentinels.
type Registry struct {
	logger *slog.Logger

	mu     sync.Mutex
	values map[Key]*Value
}

// NewRegistry initializes a new empty registry with the given configuration.
// A nil config is allowed and uses defaults for everything.
func NewRegistry(config *Config) *Registry {
	if config == nil {
		config = &Config{}
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Registry{
		logger: logger,
		values: make(map[Key]*Value),
	}
}

var (
	defaultRegistry     *Registry //nolint:gochecknoglobals
	defaultRegistryOnce sync.Once //nolint:gochecknoglobals
)

// DefaultRegistry returns the process-wide registry backing the package-level
// constructors and Decode. It's initialized lazily on first use and lives for
// the rest of the process.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry(nil)
	})
	return defaultRegistry
}

// GetOrCreate returns the sentinel value registered under key, creating and
// registering one first if the key is new. The first creation for a key wins:
// on reuse the options are ignored and the registered value is returned
// unchanged.
//
// An empty kind is normalized to KindDefault. An empty name or module is
// rejected with InvalidKeyError.
func (r *Registry) GetOrCreate(key Key, opts ...ValueOpt) (*Value, error) {
	key = key.withDefaults()

	if key.Name == "" {
		return nil, &InvalidKeyError{Key: key, Reason: "name must be non-empty"}
	}
	if key.Module == "" {
		return nil, &InvalidKeyError{Key: key, Reason: "module must be non-empty"}
	}

	r.mu.Lock()
	if existing, ok := r.values[key]; ok {
		r.mu.Unlock()
		return existing, nil
	}

	value := initValue(key, newValueOpts(opts))
	r.values[key] = value
	r.mu.Unlock()

	r.logger.Debug("sentinel: registered new sentinel value", "key", key.String())

	return value, nil
}

// Lookup returns the sentinel value registered under key, if there is one. It
// never creates; use GetOrCreate for that.
func (r *Registry) Lookup(key Key) (*Value, bool) {
	key = key.withDefaults()

	r.mu.Lock()
	value, ok := r.values[key]
	r.mu.Unlock()

	return value, ok
}

// Keys returns all registered identity keys in deterministic (lexicographic
// by kind, module, name) order.
func (r *Registry) Keys() []Key {
	r.mu.Lock()
	keys := make([]Key, 0, len(r.values))
	for key := range r.values {
		keys = append(keys, key)
	}
	r.mu.Unlock()

	sort.Slice(keys, func(i, j int) bool { return keyLess(keys[i], keys[j]) })
	return keys
}

// Values returns all registered sentinel values, ordered by their identity
// keys the same way as Keys.
func (r *Registry) Values() []*Value {
	r.mu.Lock()
	values := make([]*Value, 0, len(r.values))
	for _, value := range r.values {
		values = append(values, value)
	}
	r.mu.Unlock()

	sort.Slice(values, func(i, j int) bool {
		return keyLess(values[i].IdentityKey(), values[j].IdentityKey())
	})
	return values
}

// All returns a snapshot of the full identity key to value mapping. The
// returned map is a copy; mutating it has no effect on the registry.
func (r *Registry) All() map[Key]*Value {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := make(map[Key]*Value, len(r.values))
	for key, value := range r.values {
		all[key] = value
	}
	return all
}

// Len returns the number of registered sentinel values.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.values)
}

func keyLess(a, b Key) bool {
	if a.Kind != b.Kind {
		return a.Kind < b.Kind
	}
	if a.Module != b.Module {
		return a.Module < b.Module
	}
	return a.Name < b.Name
}

package sentinel

import (
	"github.com/sentinelvalue/sentinel/internal/callermodule"
)

// Value is a unique named marker object, akin to a nil that carries a name.
// Values are immutable and are only ever handed out by a Registry, so two
// *Value pointers compare equal with == exactly when they have the same
// identity key. Value has no structural equality; identity is the only
// equality there is.
type Value struct {
	kind   string
	module string
	name   string
	repr   string
}

// Name returns the sentinel's display name.
func (v *Value) Name() string { return v.name }

// Module returns the sentinel's declaring scope, normally the package path of
// the code that defined it.
func (v *Value) Module() string { return v.module }

// Kind returns the sentinel's variant tag.
func (v *Value) Kind() string { return v.kind }

// IdentityKey returns the key under which the value is registered.
func (v *Value) IdentityKey() Key {
	return Key{Kind: v.kind, Module: v.module, Name: v.name}
}

// String returns the value's representation. By default this is
// "module.NAME"; WithRepr and WithFormat customize it at creation time. The
// representation is computed once when the value is first created and never
// changes.
func (v *Value) String() string { return v.repr }

// Truth reports the boolean interpretation of the value, which is always
// false. Sentinel values stand in for "no value here", so like nil they are
// treated as falsy.
func (v *Value) Truth() bool { return false }

// valueOpts are creation-time parameters collected from ValueOpt options.
type valueOpts struct {
	format func(module, name string) string
	kind   string
	repr   string
}

func newValueOpts(opts []ValueOpt) *valueOpts {
	options := &valueOpts{}
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// ValueOpt customizes a sentinel value when it's first created. Options on a
// request that finds an already registered value are ignored: the first
// creation fixes the value's properties for the process lifetime.
type ValueOpt func(*valueOpts)

// WithKind sets the variant tag of the sentinel being constructed. Kinds let
// multiple sentinel flavors (say, a "missing" marker and a "deleted" marker)
// share a name and module while remaining distinct identities. The default
// kind is KindDefault.
//
// WithKind participates in the identity key, so it's interpreted by the New
// and Sentinel constructors before the registry is consulted. When calling
// Registry.GetOrCreate directly, set Key.Kind instead.
func WithKind(kind string) ValueOpt {
	return func(o *valueOpts) { o.kind = kind }
}

// WithRepr sets a fixed custom representation to be returned by
// Value.String, replacing the default "module.NAME" form.
func WithRepr(repr string) ValueOpt {
	return func(o *valueOpts) { o.repr = repr }
}

// WithFormat sets a representation formatter. It's invoked exactly once, when
// the value is first created, and the result is cached. The formatter runs
// inside the registry's creation critical section, so it must not call back
// into the same registry.
//
// WithRepr takes precedence if both are given.
func WithFormat(format func(module, name string) string) ValueOpt {
	return func(o *valueOpts) { o.format = format }
}

// initValue initializes a value for key on the first-creation branch of a
// registry's lookup-or-create. Reused values never pass through here again.
func initValue(key Key, options *valueOpts) *Value {
	value := &Value{
		kind:   key.Kind,
		module: key.Module,
		name:   key.Name,
	}

	switch {
	case options.repr != "":
		value.repr = options.repr
	case options.format != nil:
		value.repr = options.format(key.Module, key.Name)
	default:
		value.repr = key.Module + "." + key.Name
	}

	return value
}

// New returns the unique sentinel value with the given name, scoped to
// module. The first call for a given identity creates and registers the
// value; subsequent calls return the same instance and ignore any options.
//
// New panics when given an empty name or module because sentinels are
// normally declared in package-level variables, where an invalid definition
// is a programming error that should fail loudly at startup. Use NewSafely to
// get an error instead.
func New(name, module string, opts ...ValueOpt) *Value {
	value, err := NewSafely(name, module, opts...)
	if err != nil {
		panic(err)
	}
	return value
}

// NewSafely is like New, but returns an error instead of panicking on invalid
// input.
func NewSafely(name, module string, opts ...ValueOpt) (*Value, error) {
	return DefaultRegistry().GetOrCreate(makeKey(name, module, opts), opts...)
}

// Sentinel returns the unique sentinel value with the given name, scoped to
// the calling package:
//
//	var notSet = sentinel.Sentinel("NOT_SET")
//
// Repeated calls from the same package return the identical instance.
// Identically named sentinels declared by different packages are distinct
// because their declaring package differs.
//
// Sentinel panics when the name is empty or when the calling package can't be
// determined from the call stack; SentinelSafely returns an error instead.
func Sentinel(name string, opts ...ValueOpt) *Value {
	value, err := SentinelSafely(name, opts...)
	if err != nil {
		panic(err)
	}
	return value
}

// SentinelSafely is like Sentinel, but returns an error instead of panicking
// on invalid input or when the call stack is unavailable.
func SentinelSafely(name string, opts ...ValueOpt) (*Value, error) {
	module, err := callermodule.Caller()
	if err != nil {
		return nil, &UnknownCallerError{err: err}
	}
	return DefaultRegistry().GetOrCreate(makeKey(name, module, opts), opts...)
}

// makeKey builds an identity key from constructor arguments, folding a
// WithKind option into the key's kind.
func makeKey(name, module string, opts []ValueOpt) Key {
	options := newValueOpts(opts)
	return Key{Kind: options.kind, Module: module, Name: name}.withDefaults()
}

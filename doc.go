/*
Package sentinel provides unique, named marker values that are distinguishable
from any real value, including nil.

Sentinel values are useful for telling "no value was provided" apart from
"nil was provided" in places where nil is a meaningful input, like optional
parameters, cache lookups, or patch-style APIs:

	var missing = sentinel.Sentinel("MISSING")

	func lookup(key string) any {
		value, ok := cache[key]
		if !ok {
			return missing
		}
		return value // may legitimately be nil
	}

	if lookup("user") == missing {
		fmt.Println("no entry for user")
	}

# Identity

Each sentinel value is identified by a key made up of its kind (variant tag),
the package that declared it, and its name. For any given key there is exactly
one *Value for the lifetime of the process: constructing a sentinel that
already exists returns the existing instance rather than a new one, so
sentinel values can always be compared with ==.

The [Sentinel] convenience constructor derives the declaring package from the
call stack, which means two packages can both declare a sentinel named
"MISSING" without colliding. [New] takes the declaring scope explicitly and
should be preferred in code generators or other situations where the call
stack isn't a reliable indication of ownership.

Constructors panic when given invalid input (an empty name, or a call stack
that can't be resolved to a package). Sentinels are almost always declared in
package-level variables where an invalid definition is a programming error
that should surface immediately; use [NewSafely] or [SentinelSafely] to get an
error instead.

# Registries

Uniqueness is enforced by a [Registry], a process-wide store of all sentinel
values created so far. The package-level constructors use a single default
registry, which is what most programs want. Tests that need isolation can
construct their own with [NewRegistry] and create values through
[Registry.GetOrCreate] directly.

Registries only ever grow. Entries are never evicted because sentinel values
are meant to be long-lived global constants, and because handing out two
different instances for the same identity would break == comparisons.

# Serialization

Serializing a sentinel value encodes its identity key, not its fields.
Decoding routes back through a registry so that the decoded result is the
registered instance itself, never a structurally-equal copy:

	data, _ := json.Marshal(missing)
	decoded, _ := sentinel.Decode(data)
	fmt.Println(decoded == missing) // true

Because encoding/json can't substitute an already-registered pointer when
decoding into a struct field, *Value intentionally has no UnmarshalJSON;
decoding is always the explicit [Decode] or [Registry.Decode] operation.
*/
package sentinel

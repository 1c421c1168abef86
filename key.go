package sentinel

// KindDefault is the variant tag given to sentinel values constructed without
// an explicit kind.
const KindDefault = "sentinel"

// Key is the identity of a sentinel value: its variant tag (kind), the
// package or scope that declared it (module), and its display name. Two
// sentinel values with the same key are guaranteed to be the same instance
// for the lifetime of the process.
type Key struct {
	// Kind is the variant tag, letting multiple sentinel flavors share a
	// name and module without colliding. Empty means KindDefault.
	Kind string

	// Module is the declaring scope, normally the full package path of the
	// code that defined the sentinel.
	Module string

	// Name is the display name, normally the name of the variable that
	// holds the sentinel.
	Name string
}

// IsZero reports whether the key is missing a required component. Kind isn't
// required because an empty kind falls back to KindDefault.
func (k Key) IsZero() bool { return k.Name == "" || k.Module == "" }

// String returns a human-readable form of the key like "module.NAME", with a
// "kind:" prefix when the kind isn't the default. Used in diagnostics and
// error messages.
func (k Key) String() string {
	var qualified string
	switch {
	case k.Module == "" && k.Name == "":
		qualified = "<empty>"
	case k.Module == "":
		qualified = k.Name
	case k.Name == "":
		qualified = k.Module + ".<unnamed>"
	default:
		qualified = k.Module + "." + k.Name
	}

	if k.Kind != "" && k.Kind != KindDefault {
		return k.Kind + ":" + qualified
	}
	return qualified
}

// withDefaults returns the key with an empty kind replaced by KindDefault so
// that explicit-default and unspecified kinds map to the same registry entry.
func (k Key) withDefaults() Key {
	if k.Kind == "" {
		k.Kind = KindDefault
	}
	return k
}

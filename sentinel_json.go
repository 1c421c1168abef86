package sentinel

import (
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// MarshalJSON encodes the value's identity key rather than its fields, so
// that decoding can route back through a registry and produce the registered
// instance instead of a structurally-equal copy. Custom representations
// aren't serialized; whichever side of the boundary creates the identity
// first fixes them.
func (v *Value) MarshalJSON() ([]byte, error) {
	data := []byte(`{}`)

	var err error
	if data, err = sjson.SetBytes(data, "kind", v.kind); err != nil {
		return nil, err
	}
	if data, err = sjson.SetBytes(data, "module", v.module); err != nil {
		return nil, err
	}
	if data, err = sjson.SetBytes(data, "name", v.name); err != nil {
		return nil, err
	}

	return data, nil
}

// Decode decodes an identity produced by Value.MarshalJSON, routing through
// the registry's lookup-or-create so that the result is the registered
// instance itself. A decoded identity that was never created on this side is
// created on the spot, the same as a live construction would.
func (r *Registry) Decode(data []byte) (*Value, error) {
	if !gjson.ValidBytes(data) {
		return nil, &InvalidEncodingError{Reason: "input isn't valid JSON"}
	}

	results := gjson.GetManyBytes(data, "kind", "module", "name")
	kind, module, name := results[0], results[1], results[2]

	if !name.Exists() || name.String() == "" {
		return nil, &InvalidEncodingError{Reason: `"name" field is missing or empty`}
	}
	if !module.Exists() || module.String() == "" {
		return nil, &InvalidEncodingError{Reason: `"module" field is missing or empty`}
	}

	return r.GetOrCreate(Key{
		Kind:   kind.String(),
		Module: module.String(),
		Name:   name.String(),
	})
}

// Decode is shorthand for calling Registry.Decode on the default registry.
// It's the counterpart of marshaling a value built with New or Sentinel.
func Decode(data []byte) (*Value, error) {
	return DefaultRegistry().Decode(data)
}

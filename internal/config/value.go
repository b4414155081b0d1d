package config

// Value is one node of a decoded scenario document. A zero Value
// behaves like a missing node: every accessor reports absence.
type Value struct {
	raw any
}

// ValueOf wraps an already-decoded tree node. Mappings are expected as
// map[string]any and sequences as []any, which is what yaml.v3 produces
// when unmarshalling into an interface value.
func ValueOf(raw any) Value {
	return Value{raw: raw}
}

// Get looks up a field by key on a mapping node. The second return is
// false when the node is not a mapping or the key is absent.
func (v Value) Get(key string) (Value, bool) {
	m, ok := v.raw.(map[string]any)
	if !ok {
		return Value{}, false
	}
	raw, ok := m[key]
	if !ok {
		return Value{}, false
	}
	return Value{raw: raw}, true
}

// Has reports whether a mapping node carries the given key.
func (v Value) Has(key string) bool {
	_, ok := v.Get(key)
	return ok
}

// Str reads the node as a string.
func (v Value) Str() (string, bool) {
	s, ok := v.raw.(string)
	return s, ok
}

// Array reads the node as an ordered sequence of values.
func (v Value) Array() ([]Value, bool) {
	raw, ok := v.raw.([]any)
	if !ok {
		return nil, false
	}
	values := make([]Value, len(raw))
	for i, item := range raw {
		values[i] = Value{raw: item}
	}
	return values, true
}

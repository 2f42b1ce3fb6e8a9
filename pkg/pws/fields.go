package pws

import (
	"encoding/json"
	"reflect"
	"sort"
	"strings"
)

// Fields holds the accepted, present fields of an entity. Absent optional
// fields have no key.
type Fields map[string]any

// Has reports whether name is present.
func (f Fields) Has(name string) bool {
	_, ok := f[name]

	return ok
}

// String returns the string field name, or "".
func (f Fields) String(name string) string {
	s, _ := f[name].(string)

	return s
}

// Bool returns the boolean field name, or false.
func (f Fields) Bool(name string) bool {
	b, _ := f[name].(bool)

	return b
}

// Int returns the integer field name, or 0.
func (f Fields) Int(name string) int {
	n, _ := f[name].(int)

	return n
}

// Float returns the float field name, or 0.
func (f Fields) Float(name string) float64 {
	n, _ := f[name].(float64)

	return n
}

// Strings returns the string-list field name.
func (f Fields) Strings(name string) []string {
	s, _ := f[name].([]string)

	return s
}

// Maps returns the map-list field name.
func (f Fields) Maps(name string) []map[string]any {
	m, _ := f[name].([]map[string]any)

	return m
}

// Timestamp returns the timestamp field name.
func (f Fields) Timestamp(name string) (Timestamp, bool) {
	ts, ok := f[name].(Timestamp)

	return ts, ok
}

// Keys returns the present field names, sorted.
func (f Fields) Keys() []string {
	keys := make([]string, 0, len(f))
	for key := range f {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

// Clone returns a shallow copy.
func (f Fields) Clone() Fields {
	out := make(Fields, len(f))
	for key, value := range f {
		out[key] = value
	}

	return out
}

// ToMap converts the fields into a JSON-ready map. Timestamps become wire
// strings. Strings are copied except internal names (leading underscore or
// a "path" suffix). Booleans, numbers and slices are copied as is. Any other
// kind is left out.
func (f Fields) ToMap() map[string]any {
	out := make(map[string]any, len(f))

	for name, value := range f {
		switch v := value.(type) {
		case Timestamp:
			out[name] = v.String()
		case string:
			if strings.HasPrefix(name, "_") || strings.HasSuffix(name, "path") {
				continue
			}

			out[name] = v
		case bool, int, float64, json.Number:
			out[name] = v
		default:
			if value != nil && reflect.TypeOf(value).Kind() == reflect.Slice {
				out[name] = value
			}
		}
	}

	return out
}

// Without returns ToMap minus the named fields.
func (f Fields) Without(names ...string) map[string]any {
	out := f.ToMap()
	for _, name := range names {
		delete(out, name)
	}

	return out
}

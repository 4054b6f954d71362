package excelrows

import (
	"bytes"
	"encoding/json"
)

// Record is an ordered mapping from header name to cell value, one per
// processed data row. Insertion preserves first-seen field order and never
// overwrites an existing field.
type Record struct {
	keys   []string
	values map[string]any
}

// NewRecord returns an empty record sized for n fields.
func NewRecord(n int) *Record {
	return &Record{
		keys:   make([]string, 0, n),
		values: make(map[string]any, n),
	}
}

// Set adds a field if the name is not already present. It reports whether
// the value was stored.
func (r *Record) Set(name string, value any) bool {
	if _, ok := r.values[name]; ok {
		return false
	}
	r.keys = append(r.keys, name)
	r.values[name] = value
	return true
}

// Get returns the value for a field name.
func (r *Record) Get(name string) (any, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Fields returns the field names in insertion order.
func (r *Record) Fields() []string {
	return r.keys
}

// Len returns the number of fields.
func (r *Record) Len() int {
	return len(r.keys)
}

// Project returns a record containing only the fields named in selected, in
// that order. Fields not present in r are skipped. This is the final filter
// onto the de-duplicated header set.
func (r *Record) Project(selected []string) *Record {
	out := NewRecord(len(selected))
	for _, name := range selected {
		if v, ok := r.values[name]; ok {
			out.Set(name, v)
		}
	}
	return out
}

// MarshalJSON encodes the record as a JSON object with fields in insertion
// order.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(r.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

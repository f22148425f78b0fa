package state

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Stat is a single labelled value. Value is a float64 for numbers and a
// string for text; anything else the backend sends is kept as decoded.
type Stat struct {
	Key   string
	Value any
}

// Stats keeps the order in which the backend listed a zone's stats.
type Stats []Stat

// Get returns the value stored under key.
func (s Stats) Get(key string) (any, bool) {
	for _, st := range s {
		if st.Key == key {
			return st.Value, true
		}
	}
	return nil, false
}

// Set updates key in place or appends it.
func (s *Stats) Set(key string, value any) {
	for i := range *s {
		if (*s)[i].Key == key {
			(*s)[i].Value = value
			return
		}
	}
	*s = append(*s, Stat{Key: key, Value: value})
}

// UnmarshalJSON decodes an object while remembering key order.
func (s *Stats) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*s = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("stats: expected object, got %v", tok)
	}

	out := Stats{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("stats: unexpected key %v", tok)
		}
		var v any
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("stats: value for %q: %w", key, err)
		}
		if n, ok := v.(json.Number); ok {
			f, err := n.Float64()
			if err != nil {
				return fmt.Errorf("stats: value for %q: %w", key, err)
			}
			v = f
		}
		out.Set(key, v)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*s = out
	return nil
}

// MarshalJSON encodes the stats as an object in their stored order.
func (s Stats) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, st := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(st.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(st.Value)
		if err != nil {
			return nil, fmt.Errorf("stats: value for %q: %w", st.Key, err)
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

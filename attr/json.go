package attr

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"
)

// Object is a JSON object that keeps its keys in insertion order. Merged
// x-data values are Objects so that rendered output follows the order the
// keys were first written in.
type Object struct {
	keys []string
	vals map[string]any
}

// NewObject builds an Object from alternating key/value pairs.
// It panics on an odd argument count or a non-string key.
func NewObject(kv ...any) *Object {
	if len(kv)%2 != 0 {
		panic("attr: NewObject needs key/value pairs")
	}
	o := &Object{vals: make(map[string]any, len(kv)/2)}
	for i := 0; i < len(kv); i += 2 {
		k, ok := kv[i].(string)
		if !ok {
			panic(fmt.Sprintf("attr: NewObject key %v is not a string", kv[i]))
		}
		o.Set(k, kv[i+1])
	}
	return o
}

// Set stores v under k. New keys are appended; existing keys keep their slot.
func (o *Object) Set(k string, v any) *Object {
	if o.vals == nil {
		o.vals = make(map[string]any)
	}
	if _, ok := o.vals[k]; !ok {
		o.keys = append(o.keys, k)
	}
	o.vals[k] = v
	return o
}

func (o *Object) Get(k string) (any, bool) {
	v, ok := o.vals[k]
	return v, ok
}

func (o *Object) Keys() []string {
	return append([]string(nil), o.keys...)
}

func (o *Object) Len() int {
	return len(o.keys)
}

func (o *Object) Clone() *Object {
	c := &Object{keys: append([]string(nil), o.keys...), vals: make(map[string]any, len(o.vals))}
	for k, v := range o.vals {
		c.vals[k] = v
	}
	return c
}

// Overlay writes every key of other into o; other wins ties.
func (o *Object) Overlay(other *Object) *Object {
	for _, k := range other.keys {
		o.Set(k, other.vals[k])
	}
	return o
}

// MarshalJSON encodes the object compactly in key order.
func (o *Object) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	if err := writeJSON(&b, o, ",", ":"); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// EncodeJSON renders v the way attribute values are emitted: keys in order
// (sorted for plain maps), ", " and ": " separators, and <, >, & and '
// escaped as \u00XX so the result is safe inside a single-quoted attribute.
func EncodeJSON(v any) (string, error) {
	var b bytes.Buffer
	if err := writeJSON(&b, v, ", ", ": "); err != nil {
		return "", err
	}
	return b.String(), nil
}

func writeJSON(b *bytes.Buffer, v any, comma, colon string) error {
	switch t := v.(type) {
	case nil:
		b.WriteString("null")
		return nil
	case *Object:
		if t == nil {
			b.WriteString("null")
			return nil
		}
		b.WriteByte('{')
		for i, k := range t.keys {
			if i > 0 {
				b.WriteString(comma)
			}
			writeString(b, k)
			b.WriteString(colon)
			if err := writeJSON(b, t.vals[k], comma, colon); err != nil {
				return err
			}
		}
		b.WriteByte('}')
		return nil
	case string:
		writeString(b, t)
		return nil
	case json.Number:
		b.WriteString(t.String())
		return nil
	case json.Marshaler:
		return writeMarshaled(b, t, comma, colon)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return writeMarshaled(b, v, comma, colon)
		}
		keys := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		b.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				b.WriteString(comma)
			}
			writeString(b, k)
			b.WriteString(colon)
			val := rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key()))
			if err := writeJSON(b, val.Interface(), comma, colon); err != nil {
				return err
			}
		}
		b.WriteByte('}')
		return nil
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			b.WriteString("null")
			return nil
		}
		b.WriteByte('[')
		for i := 0; i < rv.Len(); i++ {
			if i > 0 {
				b.WriteString(comma)
			}
			if err := writeJSON(b, rv.Index(i).Interface(), comma, colon); err != nil {
				return err
			}
		}
		b.WriteByte(']')
		return nil
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			b.WriteString("null")
			return nil
		}
		return writeJSON(b, rv.Elem().Interface(), comma, colon)
	case reflect.Struct:
		return writeMarshaled(b, v, comma, colon)
	}
	return writeScalar(b, v)
}

// writeMarshaled goes through encoding/json and re-reads the result in order,
// so structs keep their field order with our separators.
func writeMarshaled(b *bytes.Buffer, v any, comma, colon string) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	decoded, err := DecodeJSON(string(raw))
	if err != nil {
		return err
	}
	if _, isObject := decoded.(*Object); !isObject {
		if _, isArray := decoded.([]any); !isArray {
			return writeScalar(b, decoded)
		}
	}
	return writeJSON(b, decoded, comma, colon)
}

func writeScalar(b *bytes.Buffer, v any) error {
	if n, ok := v.(json.Number); ok {
		b.WriteString(n.String())
		return nil
	}
	if s, ok := v.(string); ok {
		writeString(b, s)
		return nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	b.Write(raw)
	return nil
}

func writeString(b *bytes.Buffer, s string) {
	// json.Marshal escapes <, > and & already.
	raw, _ := json.Marshal(s)
	b.WriteString(strings.ReplaceAll(string(raw), "'", `\u0027`))
}

// DecodeJSON parses s into ordered values: objects become *Object, arrays
// []any, numbers json.Number.
func DecodeJSON(s string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()
	v, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("attr: trailing data after JSON value")
	}
	return v, nil
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			o := &Object{vals: map[string]any{}}
			for dec.More() {
				kt, err := dec.Token()
				if err != nil {
					return nil, err
				}
				k, _ := kt.(string)
				v, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				o.Set(k, v)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return o, nil
		case '[':
			arr := []any{}
			for dec.More() {
				v, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				arr = append(arr, v)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return arr, nil
		}
		return nil, fmt.Errorf("attr: unexpected delimiter %q", t)
	default:
		return tok, nil
	}
}

// asObject reads v as an ordered object. Strings are parsed as JSON after
// turning single quotes into double quotes, so "{'open': false}" works.
func asObject(v any) (*Object, bool) {
	switch t := v.(type) {
	case *Object:
		return t.Clone(), true
	case string:
		decoded, err := DecodeJSON(strings.ReplaceAll(t, "'", `"`))
		if err != nil {
			return nil, false
		}
		o, ok := decoded.(*Object)
		return o, ok
	case nil:
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map && rv.Kind() != reflect.Struct &&
		!(rv.Kind() == reflect.Pointer && !rv.IsNil() && rv.Elem().Kind() == reflect.Struct) {
		return nil, false
	}
	s, err := EncodeJSON(v)
	if err != nil {
		return nil, false
	}
	decoded, err := DecodeJSON(s)
	if err != nil {
		return nil, false
	}
	o, ok := decoded.(*Object)
	return o, ok
}

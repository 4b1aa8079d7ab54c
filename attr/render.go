package attr

import (
	"fmt"
	"reflect"
	"strings"
)

var (
	textEscaper  = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	valueEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
)

// EscapeText escapes s for use as element content.
func EscapeText(s string) string {
	return textEscaper.Replace(s)
}

// EscapeValue escapes s for use inside a double-quoted attribute.
func EscapeValue(s string) string {
	return valueEscaper.Replace(s)
}

// Write appends key and v to b the way they appear in an open tag, with a
// leading space. False values write nothing.
func Write(b *strings.Builder, key string, v any) error {
	switch t := v.(type) {
	case nil:
		b.WriteByte(' ')
		b.WriteString(key)
		return nil
	case bool:
		if !t {
			return nil
		}
		v = key
	}
	if isStructured(v) {
		s, err := EncodeJSON(v)
		if err != nil {
			return fmt.Errorf("attr: encode %s: %w", key, err)
		}
		b.WriteString(" " + key + "='" + s + "'")
		return nil
	}
	s := text(v)
	if key == "class" {
		s = strings.Join(strings.Fields(s), " ")
	}
	b.WriteString(" " + key + `="` + EscapeValue(s) + `"`)
	return nil
}

// WriteMap writes every attribute of m in sorted key order.
func WriteMap(b *strings.Builder, m *Map) error {
	for _, k := range m.Sorted() {
		v, _ := m.Get(k)
		if err := Write(b, k, v); err != nil {
			return err
		}
	}
	return nil
}

// isStructured reports whether v renders as JSON: objects, maps, slices and
// arrays, but not strings or byte slices.
func isStructured(v any) bool {
	if _, ok := v.(*Object); ok {
		return true
	}
	if _, ok := v.(fmt.Stringer); ok {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Array:
		return true
	case reflect.Slice:
		return rv.Type().Elem().Kind() != reflect.Uint8
	}
	return false
}

package attr

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// ErrBindingConflict is returned when two different values are merged into
// the same ":" binding. Only ":class" knows how to combine.
var ErrBindingConflict = errors.New("attr: binding merge not implemented")

// Policy selects the directive families that combine instead of overwrite.
type Policy uint8

const (
	MergeClass Policy = 1 << iota
	MergeData
	MergeEvents
	MergeTransitions
	MergeBindings

	MergeNone Policy = 0
	MergeAll         = MergeClass | MergeData | MergeEvents | MergeTransitions | MergeBindings
)

// Merge stores v under key, combining it with an existing value when the
// key's family is enabled in p:
//
//	class          space-joined
//	x-data         objects overlaid, new keys win
//	@event         handlers joined with "; ", old first
//	x-transition*  space-joined when the new value is not empty
//	:binding       ErrBindingConflict unless the key is :class
//
// Anything else, or a key not set yet, is a plain Set.
func (m *Map) Merge(key string, v any, p Policy) error {
	old, exists := m.Get(key)
	if !exists || p == MergeNone {
		m.Set(key, v)
		return nil
	}
	switch {
	case key == "class" && p&MergeClass != 0:
		m.Set(key, joinNonEmpty(" ", text(old), text(v)))
	case key == "x-data" && p&MergeData != 0:
		m.Set(key, mergeData(old, v))
	case strings.HasPrefix(key, "@") && p&MergeEvents != 0:
		m.Set(key, joinNonEmpty("; ", flatten(text(old)), flatten(text(v))))
	case strings.HasPrefix(key, "x-transition") && p&MergeTransitions != 0:
		if s := text(v); s != "" {
			m.Set(key, joinNonEmpty(" ", text(old), s))
		}
	case strings.HasPrefix(key, ":") && p&MergeBindings != 0:
		if reflect.DeepEqual(old, v) {
			return nil
		}
		if key != ":class" {
			return fmt.Errorf("%w: %s", ErrBindingConflict, key)
		}
		m.Set(key, joinNonEmpty("; ", text(old), text(v)))
	default:
		m.Set(key, v)
	}
	return nil
}

func mergeData(old, v any) any {
	base, ok := asObject(old)
	if !ok {
		return v
	}
	overlay, ok := asObject(v)
	if !ok {
		return v
	}
	return base.Overlay(overlay)
}

func text(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []byte:
		return string(t)
	case fmt.Stringer:
		return t.String()
	}
	return fmt.Sprint(v)
}

// flatten puts a multi-line handler body on one line.
func flatten(s string) string {
	lines := strings.Split(s, "\n")
	parts := lines[:0]
	for _, l := range lines {
		if l = strings.TrimSpace(l); l != "" {
			parts = append(parts, l)
		}
	}
	return strings.Join(parts, " ")
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

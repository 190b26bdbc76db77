// Package payload checks loosely typed request payloads before they become entities.
//
// A payload is whatever a JSON object decodes into: map[string]any. Verify walks the
// rules twice, first for presence and then for type, so a payload that is both missing a
// field and carrying a wrong-typed one is always reported as missing.
package payload

import (
	"reflect"

	"anoa.com/forumapi/pkg/apperror"
)

type Kind int

const (
	KindString Kind = iota
	KindBool
	KindNumber
	KindSequence
	KindObject
)

type Rule struct {
	Field string
	Kind  Kind
}

func String(field string) Rule   { return Rule{Field: field, Kind: KindString} }
func Bool(field string) Rule     { return Rule{Field: field, Kind: KindBool} }
func Number(field string) Rule   { return Rule{Field: field, Kind: KindNumber} }
func Sequence(field string) Rule { return Rule{Field: field, Kind: KindSequence} }
func Object(field string) Rule   { return Rule{Field: field, Kind: KindObject} }

// Verify returns a *apperror.DomainError tagged with entity when p fails any rule.
func Verify(entity string, p map[string]any, rules ...Rule) error {
	for _, r := range rules {
		if !Present(p[r.Field]) {
			return apperror.NewDomainError(entity, apperror.ErrNotContainNeededProperty)
		}
	}
	for _, r := range rules {
		if !Is(p[r.Field], r.Kind) {
			return apperror.NewDomainError(entity, apperror.ErrNotMeetDataTypeSpecification)
		}
	}
	return nil
}

// Present reports whether v counts as supplied: not nil and not an empty string.
// false and 0 are present.
func Present(v any) bool {
	if v == nil {
		return false
	}
	if s, ok := v.(string); ok {
		return s != ""
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Pointer:
		return !rv.IsNil()
	}
	return true
}

func Is(v any, kind Kind) bool {
	switch kind {
	case KindString:
		_, ok := v.(string)
		return ok
	case KindBool:
		_, ok := v.(bool)
		return ok
	case KindNumber:
		return isNumber(v)
	case KindSequence:
		if v == nil {
			return false
		}
		k := reflect.TypeOf(v).Kind()
		return k == reflect.Slice || k == reflect.Array
	case KindObject:
		if v == nil {
			return false
		}
		rt := reflect.TypeOf(v)
		if rt.Kind() == reflect.Pointer {
			rt = rt.Elem()
		}
		return rt.Kind() == reflect.Map || rt.Kind() == reflect.Struct
	}
	return false
}

func isNumber(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	}
	return false
}

// Int converts a verified number to int. JSON numbers decode as float64.
func Int(v any) int {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return int(rv.Float())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int(rv.Uint())
	default:
		return int(rv.Int())
	}
}

// Merge copies p and overlays extra on top of it. p is left untouched.
func Merge(p map[string]any, extra map[string]any) map[string]any {
	out := make(map[string]any, len(p)+len(extra))
	for k, v := range p {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}

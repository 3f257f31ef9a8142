// Package filter matches normalized records against nested-path constraints.
//
// A constraint set maps dot-delimited paths ("name.short", "location.latitude") to the value the
// record must hold there. A nil value places no constraint on its path, and a nested map applies
// its own constraints to the sub-record found at the path.
package filter

import (
	"reflect"

	"github.com/travigo/irishtransit/pkg/util"
)

type Fields map[string]any

// Matches reports whether every constraint in fields holds for record. It never panics,
// whatever combination of present and missing paths it is given.
func Matches(record any, fields Fields) bool {
	return matchesProjected(Project(record), fields)
}

// Filter returns the records matching fields, in input order
func Filter[T any](records []T, fields Fields) []T {
	return util.FilterCopy(records, func(record T) bool {
		return Matches(record, fields)
	})
}

// FindOne returns the first record matching fields
func FindOne[T any](records []T, fields Fields) (T, bool) {
	return util.FindFirst(records, func(record T) bool {
		return Matches(record, fields)
	})
}

func matchesProjected(projected any, fields map[string]any) bool {
	for path, want := range fields {
		if want == nil {
			continue
		}

		got, _ := resolveProjected(projected, path)

		if nested, ok := asMap(want); ok {
			if !matchesProjected(got, nested) {
				return false
			}
			continue
		}

		if !Equal(got, want) {
			return false
		}
	}

	return true
}

// Equal compares a resolved record value with a constraint value. Strings compare by value
// regardless of their named type, numbers compare as float64.
func Equal(got any, want any) bool {
	if got == nil || want == nil {
		return got == nil && want == nil
	}

	gotValue := reflect.ValueOf(got)
	wantValue := reflect.ValueOf(want)

	if gotValue.Kind() == reflect.String && wantValue.Kind() == reflect.String {
		return gotValue.String() == wantValue.String()
	}

	if gotNumber, ok := toFloat(gotValue); ok {
		if wantNumber, ok := toFloat(wantValue); ok {
			return gotNumber == wantNumber
		}
		return false
	}

	if gotValue.Kind() == reflect.Bool && wantValue.Kind() == reflect.Bool {
		return gotValue.Bool() == wantValue.Bool()
	}

	return reflect.DeepEqual(got, want)
}

func toFloat(value reflect.Value) (float64, bool) {
	switch value.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(value.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(value.Uint()), true
	case reflect.Float32, reflect.Float64:
		return value.Float(), true
	default:
		return 0, false
	}
}

package filter

import (
	"reflect"
	"strings"

	"github.com/liip/sheriff"
)

// Resolve walks a dot-delimited path through record. The second return value is false as soon
// as a path segment is missing or the value at that point is not an object.
func Resolve(record any, path string) (any, bool) {
	return resolveProjected(Project(record), path)
}

func resolveProjected(projected any, path string) (any, bool) {
	current := projected

	for _, key := range strings.Split(path, ".") {
		object, ok := asMap(current)
		if !ok {
			return nil, false
		}

		current, ok = object[key]
		if !ok {
			return nil, false
		}
	}

	return current, true
}

// Project converts a record into plain maps, slices and scalars keyed by the record's JSON field
// names, which is the shape paths and expressions are evaluated against.
func Project(record any) any {
	if record == nil {
		return nil
	}

	value := reflect.ValueOf(record)
	if value.Kind() == reflect.Pointer && value.IsNil() {
		return nil
	}

	switch record.(type) {
	case map[string]any, Fields:
		return normalise(record)
	}

	projected, err := sheriff.Marshal(&sheriff.Options{}, record)
	if err != nil {
		return nil
	}

	return normalise(projected)
}

func asMap(value any) (map[string]any, bool) {
	switch object := value.(type) {
	case map[string]any:
		return object, true
	case Fields:
		return object, true
	default:
		return nil, false
	}
}

// normalise strips named string types down to string so expressions compare them with literals
func normalise(value any) any {
	switch typed := value.(type) {
	case nil:
		return nil
	case string:
		return typed
	case map[string]any:
		normalised := make(map[string]any, len(typed))
		for key, item := range typed {
			normalised[key] = normalise(item)
		}
		return normalised
	case Fields:
		return normalise(map[string]any(typed))
	case []any:
		normalised := make([]any, len(typed))
		for i, item := range typed {
			normalised[i] = normalise(item)
		}
		return normalised
	}

	reflected := reflect.ValueOf(value)
	if reflected.Kind() == reflect.String {
		return reflected.String()
	}

	return value
}

package filter

import (
	"fmt"
	"strings"
)

// ParseArguments turns path=value pairs into string constraints
func ParseArguments(arguments []string) (Fields, error) {
	fields := Fields{}

	for _, argument := range arguments {
		path, value, found := strings.Cut(argument, "=")
		path = strings.TrimSpace(path)

		if !found || path == "" {
			return nil, fmt.Errorf("field constraint %q must be in the form path=value", argument)
		}

		fields[path] = value
	}

	return fields, nil
}

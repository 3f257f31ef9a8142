package util

import (
	"os"
	"strings"
)

// GetEnvironmentVariables returns the environment variables starting with prefix, keyed by
// the remainder of their name. An empty prefix returns everything.
func GetEnvironmentVariables(prefix string) map[string]string {
	environmentVariables := map[string]string{}

	for _, variable := range os.Environ() {
		pair := strings.SplitN(variable, "=", 2)
		if len(pair) != 2 || !strings.HasPrefix(pair[0], prefix) {
			continue
		}

		environmentVariables[strings.TrimPrefix(pair[0], prefix)] = pair[1]
	}

	return environmentVariables
}

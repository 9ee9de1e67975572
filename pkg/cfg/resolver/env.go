package resolver

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnvVar expands $NAME and ${NAME} references with the values of the process
// environment.
// Fallbacks provides values for variables that are not set in the
// environment, referencing a variable that is neither set nor has a fallback
// is an error.
type EnvVar struct {
	Fallbacks map[string]string
}

func (e *EnvVar) Resolve(in string) (string, error) {
	var undefined string

	res := os.Expand(in, func(name string) string {
		if val, exists := os.LookupEnv(name); exists {
			return val
		}

		if val, exists := e.Fallbacks[name]; exists {
			return val
		}

		if undefined == "" {
			undefined = name
		}

		return ""
	})

	if undefined != "" {
		return "", fmt.Errorf("environment variable %q is undefined", undefined)
	}

	return res, nil
}

// XDGFallbacks returns the default values of the XDG base-directory
// variables for homeDir, as defined by the XDG Base Directory
// Specification.
func XDGFallbacks(homeDir string) map[string]string {
	return map[string]string{
		"HOME":            homeDir,
		"XDG_CACHE_HOME":  filepath.Join(homeDir, ".cache"),
		"XDG_CONFIG_HOME": filepath.Join(homeDir, ".config"),
		"XDG_DATA_HOME":   filepath.Join(homeDir, ".local", "share"),
	}
}

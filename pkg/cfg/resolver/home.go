package resolver

import (
	"path/filepath"
	"strings"
)

// HomeDir expands a leading ~ to Dir.
type HomeDir struct {
	Dir string
}

func (h *HomeDir) Resolve(in string) (string, error) {
	if in == "~" {
		return h.Dir, nil
	}

	if strings.HasPrefix(in, "~/") {
		return filepath.Join(h.Dir, in[2:]), nil
	}

	return in, nil
}

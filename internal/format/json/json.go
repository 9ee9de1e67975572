// Package json writes rows as an indented JSON document.
package json

import (
	"encoding/json"
	"io"
)

// Mapper converts an object to a map, limited to the listed fields.
type Mapper interface {
	AsMap(fields []string) map[string]any
}

// Encode writes rows as a JSON array of objects to w.
// fields lists the keys that each object contains.
func Encode[T ~[]E, E Mapper](w io.Writer, rows T, fields []string) error {
	res := make([]map[string]any, 0, len(rows))

	for _, r := range rows {
		res = append(res, r.AsMap(fields))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(res)
}

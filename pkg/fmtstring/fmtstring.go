// Package fmtstring parses and renders %{field} format strings.
//
// Format strings describe how elements and status messages are displayed.
// They consist of literal text and field references:
//
//	[%{elapsed}][%{key}][%{element}] %{action} %{message}
//
// A field reference optionally carries a padding spec after a colon, in the
// form [fill]<align>width, where align is one of '<', '>' and '^':
//
//	%{state: >12}
//
// pads the state field with spaces to a minimum width of 12 characters,
// aligned to the right.
package fmtstring

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/strmbuild/strm/internal/set"
)

type alignment byte

const (
	alignLeft   alignment = '<'
	alignRight  alignment = '>'
	alignCenter alignment = '^'
)

type padSpec struct {
	fill  rune
	align alignment
	width int
}

type node struct {
	// literal is written as-is to the output, it is empty for field nodes.
	literal string

	field string
	pad   *padSpec
}

// Template is a parsed format string.
type Template struct {
	src   string
	nodes []node
}

// Parse parses a format string.
// It returns an error if a field reference is unterminated, has an empty or
// invalid field name or a malformed padding spec.
func Parse(format string) (*Template, error) {
	t := Template{src: format}

	var literal strings.Builder
	rest := format

	for {
		idx := strings.Index(rest, "%{")
		if idx == -1 {
			literal.WriteString(rest)
			break
		}

		literal.WriteString(rest[:idx])
		rest = rest[idx+2:]

		end := strings.IndexByte(rest, '}')
		if end == -1 {
			return nil, fmt.Errorf("unterminated %%{ in format string %q", format)
		}

		fieldNode, err := parseField(rest[:end])
		if err != nil {
			return nil, fmt.Errorf("%w in format string %q", err, format)
		}

		if literal.Len() > 0 {
			t.nodes = append(t.nodes, node{literal: literal.String()})
			literal.Reset()
		}

		t.nodes = append(t.nodes, *fieldNode)
		rest = rest[end+1:]
	}

	if literal.Len() > 0 {
		t.nodes = append(t.nodes, node{literal: literal.String()})
	}

	return &t, nil
}

func parseField(in string) (*node, error) {
	name, spec, hasSpec := strings.Cut(in, ":")

	if name == "" {
		return nil, fmt.Errorf("empty field name")
	}

	for _, r := range name {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '-' {
			return nil, fmt.Errorf("invalid character %q in field name %q", r, name)
		}
	}

	n := node{field: name}

	if hasSpec {
		pad, err := parsePadSpec(spec)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", name, err)
		}

		n.pad = pad
	}

	return &n, nil
}

func parsePadSpec(spec string) (*padSpec, error) {
	if spec == "" {
		return nil, fmt.Errorf("empty padding spec")
	}

	pad := padSpec{fill: ' ', align: alignLeft}
	runes := []rune(spec)
	widthStart := 0

	switch {
	case isAlign(runes[0]):
		pad.align = alignment(runes[0])
		widthStart = 1
	case len(runes) > 1 && isAlign(runes[1]):
		pad.fill = runes[0]
		pad.align = alignment(runes[1])
		widthStart = 2
	}

	width, err := strconv.Atoi(string(runes[widthStart:]))
	if err != nil || width < 1 {
		return nil, fmt.Errorf("invalid padding spec %q, expected [fill]<align>width", spec)
	}

	pad.width = width

	return &pad, nil
}

func isAlign(r rune) bool {
	return r == '<' || r == '>' || r == '^'
}

// Render substitutes every field with its value from values and returns the
// result. Fields that are not present in values render as the empty string,
// padded if the field carries a padding spec.
func (t *Template) Render(values map[string]string) string {
	var out strings.Builder

	for _, n := range t.nodes {
		if n.field == "" {
			out.WriteString(n.literal)
			continue
		}

		val := values[n.field]
		if n.pad != nil {
			val = applyPad(val, n.pad)
		}

		out.WriteString(val)
	}

	return out.String()
}

func applyPad(val string, pad *padSpec) string {
	missing := pad.width - utf8.RuneCountInString(val)
	if missing <= 0 {
		return val
	}

	fill := string(pad.fill)

	switch pad.align {
	case alignRight:
		return strings.Repeat(fill, missing) + val
	case alignCenter:
		left := missing / 2
		return strings.Repeat(fill, left) + val + strings.Repeat(fill, missing-left)
	default:
		return val + strings.Repeat(fill, missing)
	}
}

// Fields returns the names of all referenced fields, in order of their first
// occurrence.
func (t *Template) Fields() []string {
	var res []string
	seen := set.Set[string]{}

	for _, n := range t.nodes {
		if n.field == "" || seen.Contains(n.field) {
			continue
		}

		seen.Add(n.field)
		res = append(res, n.field)
	}

	return res
}

// ValidateFields returns an error if the template references a field that is
// not in allowed.
func (t *Template) ValidateFields(allowed set.Set[string]) error {
	for _, f := range t.Fields() {
		if !allowed.Contains(f) {
			return fmt.Errorf("unknown field %q in format string %q", f, t.src)
		}
	}

	return nil
}

// String returns the format string the template was parsed from.
func (t *Template) String() string {
	return t.src
}

// ShortKey abbreviates a cache key to length characters.
// Keys that are not longer than length are returned unchanged.
func ShortKey(key string, length int) string {
	if length <= 0 || length >= len(key) {
		return key
	}

	return key[:length]
}

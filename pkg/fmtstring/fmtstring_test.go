package fmtstring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strmbuild/strm/internal/set"
)

func TestRender(t *testing.T) {
	testcases := []struct {
		name   string
		format string
		values map[string]string
		result string
	}{
		{
			name:   "MessageFormat",
			format: "[%{elapsed}][%{key}][%{element}] %{action} %{message}",
			values: map[string]string{
				"elapsed": "00:00:03",
				"key":     "ab12cd34",
				"element": "base/alpine.bst",
				"action":  "open",
				"message": "staging sources",
			},
			result: "[00:00:03][ab12cd34][base/alpine.bst] open staging sources",
		},

		{
			name:   "RightAlignedPadding",
			format: "%{state: >12} %{name}",
			values: map[string]string{"state": "cached", "name": "app.bst"},
			result: "      cached app.bst",
		},

		{
			name:   "LeftAlignDefault",
			format: "%{name:10}|",
			values: map[string]string{"name": "app"},
			result: "app       |",
		},

		{
			name:   "CenterAlignWithFill",
			format: "%{name:.^7}",
			values: map[string]string{"name": "app"},
			result: "..app..",
		},

		{
			name:   "ValueLongerThanWidth",
			format: "%{name:>2}",
			values: map[string]string{"name": "longname"},
			result: "longname",
		},

		{
			name:   "MissingFieldRendersEmpty",
			format: "<%{workspace-dirs}>",
			values: map[string]string{},
			result: "<>",
		},

		{
			name:   "LiteralPercent",
			format: "100% %{name}",
			values: map[string]string{"name": "x"},
			result: "100% x",
		},

		{
			name:   "NoFields",
			format: "plain text",
			values: nil,
			result: "plain text",
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			tmpl, err := Parse(tc.format)
			require.NoError(t, err)

			assert.Equal(t, tc.result, tmpl.Render(tc.values))
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, format := range []string{
		"%{name",
		"%{}",
		"%{NAME}",
		"%{na me}",
		"%{name:}",
		"%{name: }",
		"%{name:abc}",
		"%{name:>0}",
	} {
		t.Run(format, func(t *testing.T) {
			_, err := Parse(format)
			require.Error(t, err)
		})
	}
}

func TestFields(t *testing.T) {
	tmpl, err := Parse("%{state: >12} %{full-key} %{name} %{workspace-dirs} %{name}")
	require.NoError(t, err)

	assert.Equal(t,
		[]string{"state", "full-key", "name", "workspace-dirs"},
		tmpl.Fields())
}

func TestValidateFields(t *testing.T) {
	tmpl, err := Parse("%{name} %{full-key}")
	require.NoError(t, err)

	require.NoError(t, tmpl.ValidateFields(ElementFields))
	require.Error(t, tmpl.ValidateFields(MessageFields))

	err = tmpl.ValidateFields(set.From([]string{"name"}))
	require.ErrorContains(t, err, "full-key")
}

func TestShortKey(t *testing.T) {
	const key = "ba7816bf8f01cfea414140de5dae2223"

	assert.Equal(t, "ba7816bf", ShortKey(key, 8))
	assert.Equal(t, key, ShortKey(key, 0))
	assert.Equal(t, key, ShortKey(key, len(key)))
	assert.Equal(t, key, ShortKey(key, 1000))
}

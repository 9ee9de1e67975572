package fmtstring

import "github.com/strmbuild/strm/internal/set"

// ElementFields are the fields that element display format strings may
// reference.
var ElementFields = set.From([]string{
	"name",
	"key",
	"full-key",
	"state",
	"config",
	"vars",
	"env",
	"public",
	"workspaced",
	"workspace-dirs",
	"deps",
	"build-deps",
	"runtime-deps",
})

// MessageFields are the fields that status message format strings may
// reference.
var MessageFields = set.From([]string{
	"elapsed",
	"elapsed-us",
	"wallclock",
	"wallclock-us",
	"key",
	"element",
	"action",
	"message",
})

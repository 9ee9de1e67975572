package cfg

import (
	"fmt"

	"github.com/strmbuild/strm/pkg/fmtstring"
)

const (
	// minKeyLength is the shortest unambiguous abbreviation of a cache
	// key that is accepted for display.
	minKeyLength = 8
	// maxKeyLength is the length of a full sha256 cache key in hex.
	maxKeyLength = 64

	maxContextLines = 1000
)

// Logging contains the display and formatting preferences.
type Logging struct {
	// KeyLength is the number of characters cache keys are abbreviated
	// to when displayed.
	KeyLength int `yaml:"key-length" env:"KEY_LENGTH"`
	// Verbose enables printing the log output of tasks.
	Verbose bool `yaml:"verbose" env:"VERBOSE"`
	// ErrorLines is the number of lines of a task log that are printed
	// when the task failed.
	ErrorLines int `yaml:"error-lines" env:"ERROR_LINES"`
	// MessageLines is the number of lines of a message body that are
	// printed.
	MessageLines int `yaml:"message-lines" env:"MESSAGE_LINES"`
	// Debug enables debug output.
	Debug bool `yaml:"debug" env:"DEBUG"`
	// ElementFormat specifies how elements are displayed, see
	// fmtstring.ElementFields for the available fields.
	ElementFormat string `yaml:"element-format" env:"ELEMENT_FORMAT"`
	// MessageFormat specifies how status messages are displayed, see
	// fmtstring.MessageFields for the available fields.
	MessageFormat string `yaml:"message-format" env:"MESSAGE_FORMAT"`
	// ThrottleUIUpdates limits status rendering to a fixed rate instead
	// of rendering on every status change.
	ThrottleUIUpdates bool `yaml:"throttle-ui-updates" env:"THROTTLE_UI_UPDATES"`
}

func (l *Logging) validate() error {
	if l.KeyLength < minKeyLength || l.KeyLength > maxKeyLength {
		return newFieldError(
			fmt.Sprintf("must be in range [%d, %d]", minKeyLength, maxKeyLength),
			"key-length")
	}

	for _, f := range []struct {
		key string
		val int
	}{
		{"error-lines", l.ErrorLines},
		{"message-lines", l.MessageLines},
	} {
		if f.val < 0 || f.val > maxContextLines {
			return newFieldError(
				fmt.Sprintf("must be in range [0, %d]", maxContextLines),
				f.key)
		}
	}

	elementTmpl, err := fmtstring.Parse(l.ElementFormat)
	if err != nil {
		return fieldErrorWrap(err, "element-format")
	}

	if err := elementTmpl.ValidateFields(fmtstring.ElementFields); err != nil {
		return fieldErrorWrap(err, "element-format")
	}

	messageTmpl, err := fmtstring.Parse(l.MessageFormat)
	if err != nil {
		return fieldErrorWrap(err, "message-format")
	}

	if err := messageTmpl.ValidateFields(fmtstring.MessageFields); err != nil {
		return fieldErrorWrap(err, "message-format")
	}

	return nil
}

package flag

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

const (
	FormatJSON  = "json"
	FormatTable = "table"
)

const formatUsage = "one of: " + FormatJSON + ", " + FormatTable

// Format is a command line flag that selects an output format.
type Format struct {
	Val string
}

func NewFormatFlag() *Format {
	return &Format{Val: FormatTable}
}

// Set parses the passed string and sets the format value
func (f *Format) Set(val string) error {
	switch v := strings.ToLower(val); v {
	case FormatJSON, FormatTable:
		f.Val = v
	default:
		return errors.New("format must be " + formatUsage)
	}

	return nil
}

func (f *Format) String() string {
	return f.Val
}

func (f *Format) Type() string {
	return "FORMAT"
}

func (f *Format) Usage(highlightFn func(a ...any) string) string {
	return fmt.Sprintf("output format\none of: %s, %s",
		highlightFn(FormatJSON), highlightFn(FormatTable),
	)
}

func (f *Format) RegisterFlagCompletion(cmd *cobra.Command) error {
	return cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{FormatJSON, FormatTable}, cobra.ShellCompDirectiveDefault
	})
}

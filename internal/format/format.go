// Package format writes rows of values in a presentable output format.
package format

// Formatter writes rows to an output.
// Flush must be called after the last row was written.
type Formatter interface {
	WriteRow(row ...any) error
	Flush() error
}

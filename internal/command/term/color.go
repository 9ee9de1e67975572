package term

import "github.com/fatih/color"

var (
	GreenHighlight = color.New(color.FgGreen).SprintFunc()
	RedHighlight   = color.New(color.FgRed).SprintFunc()

	MagentaHighlight = color.New(color.FgMagenta).SprintFunc()

	Highlight = MagentaHighlight
)

// Package goldmark renders markdown text to a sequence of display blocks
// using goldmark for parsing and lipgloss for styling. Standalone image
// paragraphs become image placeholder blocks for the inline-image
// pipeline; everything else becomes ANSI-styled text.
package goldmark

import "github.com/fwojciec/mdv"

// Interface compliance check.
var _ mdv.Renderer = (*Renderer)(nil)

// Renderer implements [mdv.Renderer].
type Renderer struct {
	styles styles
}

// New creates a Renderer styled from the given theme.
func New(theme mdv.Theme) *Renderer {
	return &Renderer{styles: newStyles(theme)}
}

// Render parses markdown source and returns display blocks in document
// order. Paragraphs and list items are word-wrapped to width. Code blocks
// are rendered at full width without reflow. A paragraph consisting of a
// single image becomes an ImageBlock; images mixed into other inline
// content render as underlined alt text with their destination.
func (r *Renderer) Render(source string, width int) []mdv.Block {
	if source == "" {
		return nil
	}
	if width <= 0 {
		width = 80
	}
	return r.renderBlocks([]byte(source), width)
}

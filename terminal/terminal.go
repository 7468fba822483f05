// Package terminal queries the viewport geometry the scale planner works
// in: columns and rows from the tty, and the pixel size of one character
// cell from the kernel's window size when it reports one.
package terminal

import (
	"golang.org/x/term"

	"github.com/fwojciec/mdv"
)

const (
	defaultColumns = 80
	defaultRows    = 24

	// Fallback cell pixel estimate for terminals that do not report
	// pixel dimensions. 8x16 matches common monospace raster metrics.
	defaultCellWidth  = 8
	defaultCellHeight = 16
)

// CurrentGeometry captures the terminal geometry for one render pass.
// Non-terminal fds get an 80x24 viewport with the default cell estimate.
func CurrentGeometry(fd int) mdv.Geometry {
	cols, rows, err := term.GetSize(fd)
	if err != nil || cols <= 0 || rows <= 0 {
		cols, rows = defaultColumns, defaultRows
	}
	cw, ch := cellSize(fd, cols, rows)
	return mdv.Geometry{Columns: cols, Rows: rows, CellWidth: cw, CellHeight: ch}
}

// IsTerminal reports whether fd is a tty.
func IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

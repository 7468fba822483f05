//go:build !unix

package terminal

// cellSize falls back to the default estimate on platforms without
// TIOCGWINSZ pixel reporting.
func cellSize(fd, cols, rows int) (int, int) {
	return defaultCellWidth, defaultCellHeight
}

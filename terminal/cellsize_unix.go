//go:build unix

package terminal

import "golang.org/x/sys/unix"

// cellSize derives the pixel size of one cell from TIOCGWINSZ. Many
// terminals leave the pixel fields zero, in which case the default
// estimate applies.
func cellSize(fd, cols, rows int) (int, int) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err == nil && ws.Xpixel > 0 && ws.Ypixel > 0 {
		return int(ws.Xpixel) / cols, int(ws.Ypixel) / rows
	}
	return defaultCellWidth, defaultCellHeight
}

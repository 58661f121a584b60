// Package sys provides system utilities with the same API across OSes.
package sys

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsATTY determines whether the given file is a terminal.
func IsATTY(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// WinSize queries the size of the terminal referenced by the given file. It
// returns -1, -1 if the file is not a terminal.
func WinSize(file *os.File) (row, col int) { return winSize(file) }

// Width returns the number of columns of the terminal referenced by the given
// file, or 0 if it is not a terminal.
func Width(file *os.File) int {
	if !IsATTY(file.Fd()) {
		return 0
	}
	if _, col := winSize(file); col > 0 {
		return col
	}
	return 0
}

// Package format renders values for display in the client's output.
package format

import "fmt"

const kibi = 1024.0

// sizeUnits are the suffixes FormatSize scales through. Sizes never scale past the last one.
var sizeUnits = [...]byte{'b', 'k', 'M', 'G'}

// FormatSize renders a byte count as "<value> <unit>" with two decimals,
// e.g. "0.00 b", "1.50 k", "3.20 G".
func FormatSize(n uint64) string {
	size, unit := scaleSize(n)
	return fmt.Sprintf("%.2f %c", size, sizeUnits[unit])
}

// FormatSizeInt is FormatSize for signed counts such as os.FileInfo.Size().
// Negative values render as zero.
func FormatSizeInt(n int64) string {
	if n < 0 {
		return FormatSize(0)
	}
	return FormatSize(uint64(n))
}

func scaleSize(n uint64) (float64, int) {
	size := float64(n)
	unit := 0
	for unit < len(sizeUnits)-1 && size >= kibi {
		size /= kibi
		unit++
	}
	return size, unit
}

// Package fwparse is the fixed-width parsing engine: it slices a raw
// mainframe line by column position, applies per-type value semantics, and
// writes the results into a typed entity graph. The package holds no
// mutable state outside its setter/adder caches and is safe to call from
// any number of goroutines sharing one Layout and one ImportContext.
package fwparse

import "strings"

// Slice returns exactly length characters of line starting at the
// zero-based startIndex0. If length <= 0 it returns "". If startIndex0 is
// at or past the end of line it returns length spaces. Otherwise it
// returns the requested substring, right-padded with spaces if line is
// too short to supply the full width.
func Slice(line string, startIndex0, length int) string {
	if length <= 0 {
		return ""
	}
	if startIndex0 >= len(line) || startIndex0 < 0 {
		return strings.Repeat(" ", length)
	}

	end := startIndex0 + length
	if end > len(line) {
		var b strings.Builder
		b.Grow(length)
		b.WriteString(line[startIndex0:])
		b.WriteString(strings.Repeat(" ", end-len(line)))
		return b.String()
	}
	return line[startIndex0:end]
}

package pos

import "sort"

// LineIndex converts byte offsets into a source buffer to 1-indexed
// line / 0-indexed column positions, the byte-offset-to-line conversion
// utility named for the position & identity model.
type LineIndex struct {
	// lineStart[i] is the byte offset of the first byte of line i+1.
	lineStart []int
}

// NewLineIndex scans src once and records the byte offset of every line start.
func NewLineIndex(src []byte) *LineIndex {
	starts := make([]int, 0, 64)
	starts = append(starts, 0)
	for i, b := range src {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &LineIndex{lineStart: starts}
}

// LineCount returns the total number of lines represented (at least 1).
func (li *LineIndex) LineCount() int {
	return len(li.lineStart)
}

// LineCol converts an absolute byte offset to a 1-indexed line and
// 0-indexed column.
func (li *LineIndex) LineCol(byteOffset int) (line, col int) {
	i := sort.Search(len(li.lineStart), func(i int) bool { return li.lineStart[i] > byteOffset })
	line = i // lineStart[i-1] <= byteOffset < lineStart[i], so line i (1-indexed) is i
	col = byteOffset - li.lineStart[i-1]
	return line, col
}

// Position builds a Position from a [startByte, endByte) range.
func (li *LineIndex) Position(startByte, endByte int) Position {
	sl, sc := li.LineCol(startByte)
	el, ec := li.LineCol(endByte)
	return Position{StartLine: sl, StartColumn: sc, EndLine: el, EndColumn: ec}
}

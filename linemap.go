package rubylex

import (
	"sort"

	"github.com/rubytools/rubylex/token"
)

// LineMap converts byte offsets to 1-based line/column positions using
// a prefix-sum table of line-start offsets. Built once per buffer;
// lookups are a binary search.
type LineMap struct {
	starts []token.ByteOffset // starts[i] is the offset of line i+1
}

// NewLineMap builds a line map for source.
func NewLineMap(source []byte) *LineMap {
	starts := make([]token.ByteOffset, 1, 64)
	for i, b := range source {
		if b == '\n' {
			starts = append(starts, token.ByteOffset(i+1))
		}
	}
	return &LineMap{starts: starts}
}

// Position returns the 1-based line and column of a byte offset.
// Offsets past the end of the buffer report the last line.
func (m *LineMap) Position(off token.ByteOffset) (line, col int) {
	idx := sort.Search(len(m.starts), func(i int) bool {
		return m.starts[i] > off
	})
	return idx, int(off-m.starts[idx-1]) + 1
}

// LineCount returns the number of lines in the buffer.
func (m *LineMap) LineCount() int {
	return len(m.starts)
}

// LineStart returns the byte offset of the 1-based line.
func (m *LineMap) LineStart(line int) token.ByteOffset {
	return m.starts[line-1]
}

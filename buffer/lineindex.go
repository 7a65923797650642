package buffer

import (
	"sort"
)

const (
	lineBreak = '\n'
)

type lineInfo struct {
	// rune offset of the first rune of the line.
	start int
	// byte offset of the first rune of the line.
	byteStart int
	// rune length of the line, including the line break.
	length       int
	hasLineBreak bool
}

// lineIndex maps rune offsets to lines. It is rebuilt from scratch on every
// change; documents edited through this package are small.
type lineIndex struct {
	lines []lineInfo
}

func (li *lineIndex) rebuild(text string) {
	li.lines = li.lines[:0]

	start, byteStart, n := 0, 0, 0
	for i, c := range text {
		n++
		if c == lineBreak {
			li.lines = append(li.lines, lineInfo{start: start, byteStart: byteStart, length: n, hasLineBreak: true})
			start += n
			byteStart = i + 1
			n = 0
		}
	}

	// The last line never ends with a line break, and may be empty.
	li.lines = append(li.lines, lineInfo{start: start, byteStart: byteStart, length: n})
}

// lineOf returns the line containing the rune offset. Offsets past the end
// resolve to the last line.
func (li *lineIndex) lineOf(runeOff int) int {
	if len(li.lines) == 0 {
		return 0
	}
	i := sort.Search(len(li.lines), func(i int) bool {
		return li.lines[i].start > runeOff
	})
	return max(i-1, 0)
}

func (li *lineIndex) line(n int) (lineInfo, bool) {
	if n < 0 || n >= len(li.lines) {
		return lineInfo{}, false
	}
	return li.lines[n], true
}

func (li *lineIndex) count() int {
	return len(li.lines)
}

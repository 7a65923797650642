package buffer

import "testing"

func TestLineIndexRebuild(t *testing.T) {
	idx := &lineIndex{}

	printIdx := func() {
		for i := range idx.lines {
			t.Logf("line %d start: %d, len: %d", i, idx.lines[i].start, idx.lines[i].length)
		}
	}

	idx.rebuild("hello\nworld")
	if idx.count() != 2 || idx.lines[0].length != 6 || idx.lines[1].length != 5 || idx.lines[1].start != 6 {
		printIdx()
		t.Fail()
	}

	idx.rebuild("hello\n")
	if idx.count() != 2 || idx.lines[1].length != 0 || idx.lines[1].hasLineBreak {
		printIdx()
		t.Fail()
	}

	idx.rebuild("")
	if idx.count() != 1 || idx.lines[0].length != 0 {
		printIdx()
		t.Fail()
	}

	// multi-byte runes count once.
	idx.rebuild("héllo\nwörld\n!")
	if idx.count() != 3 || idx.lines[0].length != 6 || idx.lines[2].start != 12 {
		printIdx()
		t.Fail()
	}
}

func TestLineOf(t *testing.T) {
	idx := &lineIndex{}
	idx.rebuild("ab\ncd\n\nef")

	testcases := []struct {
		offset int
		want   int
	}{
		{offset: 0, want: 0},
		{offset: 2, want: 0}, // the line break itself
		{offset: 3, want: 1},
		{offset: 6, want: 2},
		{offset: 7, want: 3},
		{offset: 9, want: 3},
		{offset: 100, want: 3},
		{offset: -1, want: 0},
	}

	for _, tc := range testcases {
		if got := idx.lineOf(tc.offset); got != tc.want {
			t.Errorf("lineOf(%d) = %d, want %d", tc.offset, got, tc.want)
		}
	}
}

func TestLineByteStart(t *testing.T) {
	idx := &lineIndex{}
	idx.rebuild("é\nab")

	if idx.lines[1].start != 2 || idx.lines[1].byteStart != 3 {
		t.Fatalf("unexpected second line: %+v", idx.lines[1])
	}
}

package termui

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"sync"
)

// lineFeed turns line based input into key presses for a program. Each
// answer consumes one line: its text followed by enter, or escape for an
// empty line or the end of input. The next line is read only after next is
// called, so lines meant for later prompts stay in the reader.
type lineFeed struct {
	r       *bufio.Reader
	pending []byte

	want chan struct{}
	done chan struct{}
	once sync.Once
}

func newLineFeed(r *bufio.Reader) *lineFeed {
	f := &lineFeed{
		r:    r,
		want: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
	f.want <- struct{}{}
	return f
}

func (f *lineFeed) Read(p []byte) (int, error) {
	if len(f.pending) > 0 {
		n := copy(p, f.pending)
		f.pending = f.pending[n:]
		return n, nil
	}

	select {
	case <-f.done:
		return 0, io.EOF
	default:
	}
	select {
	case <-f.done:
		return 0, io.EOF
	case <-f.want:
	}

	line, err := f.r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, err
	}

	chunk := "\x1b"
	if line = strings.TrimSpace(line); line != "" {
		chunk = line + "\r"
	}
	n := copy(p, chunk)
	f.pending = []byte(chunk[n:])
	return n, nil
}

// next allows one more line to be read.
func (f *lineFeed) next() {
	select {
	case f.want <- struct{}{}:
	default:
	}
}

func (f *lineFeed) close() {
	f.once.Do(func() { close(f.done) })
}

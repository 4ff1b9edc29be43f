package console

import (
	"bufio"
	"context"
	"io"
	"strings"
	"sync"
)

type line struct {
	text string
	err  error
}

// Reader reads input line by line. A single goroutine owns the underlying reader so that a
// blocked read can be abandoned when the context is cancelled.
type Reader struct {
	src   io.Reader
	once  sync.Once
	lines chan line
}

func NewReader(src io.Reader) *Reader {
	return &Reader{
		src:   src,
		lines: make(chan line),
	}
}

// ReadLine - returns the next line without its line ending, or io.EOF once the input is exhausted.
func (that *Reader) ReadLine(ctx context.Context) (string, error) {
	that.once.Do(func() {
		go that.pump()
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case next, ok := <-that.lines:
		if !ok {
			return "", io.EOF
		}

		return next.text, next.err
	}
}

func (that *Reader) pump() {
	defer close(that.lines)

	scanner := bufio.NewScanner(that.src)
	for scanner.Scan() {
		that.lines <- line{text: strings.TrimRight(scanner.Text(), "\r")}
	}

	if err := scanner.Err(); err != nil {
		that.lines <- line{err: err}
	}
}

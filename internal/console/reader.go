package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

// ErrClosed is returned by ReadLine after Close.
var ErrClosed = errors.New("console: line reader closed")

// LineReader reads player input one line at a time. A line is read from the
// input only when ReadLine asks for one.
//
// A LineReader serves one caller at a time.
type LineReader struct {
	prompts io.Writer
	scanner *bufio.Scanner

	start     sync.Once
	closeOnce sync.Once
	want      chan struct{}
	lines     chan string
	quit      chan struct{}
	done      chan struct{}
	// err is written by pump before done is closed.
	err error
	// pending is true while a requested line has not been received.
	pending bool
}

// NewLineReader reads lines from in and writes prompts to prompts.
func NewLineReader(in io.Reader, prompts io.Writer) *LineReader {
	return &LineReader{
		prompts: prompts,
		scanner: bufio.NewScanner(in),
		want:    make(chan struct{}),
		lines:   make(chan string),
		quit:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// pump reads one line per request until the input ends or the reader is closed.
func (lr *LineReader) pump() {
	defer close(lr.done)
	for {
		select {
		case <-lr.want:
		case <-lr.quit:
			lr.err = ErrClosed
			return
		}
		if !lr.scanner.Scan() {
			lr.err = lr.scanner.Err()
			if lr.err == nil {
				lr.err = io.EOF
			}
			return
		}
		select {
		case lr.lines <- lr.scanner.Text():
		case <-lr.quit:
			lr.err = ErrClosed
			return
		}
	}
}

// ReadLine writes prompt and waits for the next trimmed line. A line asked for
// before ctx was done is kept for the next call.
//
// Postcondition: Returns the line, io.EOF once the input is exhausted,
// ErrClosed after Close, or ctx.Err().
func (lr *LineReader) ReadLine(ctx context.Context, prompt string) (string, error) {
	select {
	case <-lr.quit:
		return "", ErrClosed
	default:
	}
	lr.start.Do(func() { go lr.pump() })
	fmt.Fprint(lr.prompts, prompt)

	if !lr.pending {
		select {
		case lr.want <- struct{}{}:
			lr.pending = true
		case <-lr.done:
			return "", lr.err
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	select {
	case line := <-lr.lines:
		lr.pending = false
		return strings.TrimSpace(line), nil
	case <-lr.done:
		lr.pending = false
		return "", lr.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Close stops the reader. A read already blocked on the input finishes, but
// its line is discarded and no further line is read.
func (lr *LineReader) Close() error {
	lr.closeOnce.Do(func() { close(lr.quit) })
	return nil
}

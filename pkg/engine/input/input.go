package input

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// LineReader reads newline terminated answers from a terminal prompt.
type LineReader struct {
	r *bufio.Reader
}

// NewLineReader wraps r.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{r: bufio.NewReader(r)}
}

var stdinReader *LineReader

// Stdin returns the shared reader for os.Stdin.
func Stdin() *LineReader {
	if stdinReader == nil {
		stdinReader = NewLineReader(os.Stdin)
	}
	return stdinReader
}

// ReadLine reads a line with the trailing newline (and any \r) removed.
// A final line without a newline is returned with a nil error; io.EOF is
// only returned when nothing was read.
func (l *LineReader) ReadLine() (string, error) {
	line, err := l.r.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

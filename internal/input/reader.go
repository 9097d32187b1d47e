// Package input abstracts interactive terminal input so confirmation
// prompts can be driven from tests.
package input

import (
	"bufio"
	"io"
	"os"
)

// Reader reads user input up to a delimiter.
type Reader interface {
	ReadString(delim byte) (string, error)
}

// StdinReader wraps a buffered os.Stdin.
type StdinReader struct {
	reader *bufio.Reader
}

// NewStdinReader creates a reader over os.Stdin.
func NewStdinReader() *StdinReader {
	return &StdinReader{reader: bufio.NewReader(os.Stdin)}
}

// ReadString reads until delim.
func (r *StdinReader) ReadString(delim byte) (string, error) {
	return r.reader.ReadString(delim)
}

// StringReader replays pre-configured answers in tests. Each input
// should already include its delimiter (e.g. "y\n").
type StringReader struct {
	inputs []string
	index  int
}

// NewStringReader creates a reader that yields inputs in order.
func NewStringReader(inputs ...string) *StringReader {
	return &StringReader{inputs: inputs}
}

// ReadString returns the next pre-configured answer, io.EOF when
// exhausted. The delimiter argument is ignored.
func (r *StringReader) ReadString(delim byte) (string, error) {
	if r.index >= len(r.inputs) {
		return "", io.EOF
	}
	s := r.inputs[r.index]
	r.index++
	return s, nil
}

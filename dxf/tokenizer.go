package dxf

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// maxLineBytes bounds a single value line. MTEXT content can run long but
// the format is line-oriented; 1 MiB is far beyond anything legitimate.
const maxLineBytes = 1 << 20

// Tokenizer turns a line stream into a sequence of group code / value
// pairs. Lines are pulled lazily, one pair at a time, so arbitrarily
// large files are processed in bounded memory.
type Tokenizer struct {
	scanner *bufio.Scanner
	line    int
}

// NewTokenizer creates a Tokenizer reading from r.
func NewTokenizer(r io.Reader) *Tokenizer {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return &Tokenizer{scanner: sc}
}

// Line returns the number of lines consumed so far.
func (t *Tokenizer) Line() int { return t.line }

// Next returns the next token. The second return is false when the input
// is exhausted. A line whose code does not parse as an integer is skipped
// rather than failing the stream; only I/O errors are returned.
func (t *Tokenizer) Next() (Token, bool, error) {
	for {
		codeLine, ok, err := t.nextLine()
		if err != nil || !ok {
			return Token{}, false, err
		}
		code, perr := strconv.Atoi(codeLine)
		if perr != nil {
			// Malformed code line. Tolerate and resync on the next line.
			continue
		}
		valueLine, ok, err := t.nextLine()
		if err != nil {
			return Token{}, false, err
		}
		if !ok {
			// Trailing code with no value line.
			return Token{}, false, nil
		}
		return Token{Code: code, Value: valueLine}, true, nil
	}
}

// nextLine returns the next non-empty trimmed line.
func (t *Tokenizer) nextLine() (string, bool, error) {
	for t.scanner.Scan() {
		t.line++
		line := strings.TrimSpace(t.scanner.Text())
		if line == "" {
			continue
		}
		return line, true, nil
	}
	if err := t.scanner.Err(); err != nil {
		return "", false, &ReadError{Line: t.line, Cause: err}
	}
	return "", false, nil
}

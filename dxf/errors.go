package dxf

import "fmt"

// ReadError reports an I/O failure while reading the input stream. It is
// the only error kind a parse surfaces: content-level anomalies (malformed
// codes, unknown entity types, bad numeric fields) are recovered locally
// and never abort the parse.
type ReadError struct {
	Line  int // 1-based line number reached when the failure occurred
	Cause error
}

func (e *ReadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("reading input near line %d: %v", e.Line, e.Cause)
	}
	return fmt.Sprintf("reading input: %v", e.Cause)
}

func (e *ReadError) Unwrap() error { return e.Cause }

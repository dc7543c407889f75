package ioformat

import "fmt"

// FormatError is returned for any malformed graph or path-decomposition
// input: bad tokens, an EDGE referencing a node before its NODE record, a
// FORGET_NODE on a name not currently in the bag, or a non-empty bag at
// end of stream. Line is 1-based; 0 means the error is not tied to a
// single line (e.g. a parse failure before any record completed).
type FormatError struct {
	Line int
	Msg  string
}

func (e *FormatError) Error() string {
	if e.Line <= 0 {
		return fmt.Sprintf("ioformat: %s", e.Msg)
	}

	return fmt.Sprintf("ioformat: line %d: %s", e.Line, e.Msg)
}

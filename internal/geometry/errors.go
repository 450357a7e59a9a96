package geometry

import "fmt"

const (
	CodeInvalidSegment       = "InvalidSegment"
	CodeInsufficientVertices = "InsufficientVertices"
)

// Error is a coded geometry error so callers can branch on Code
// without matching message text.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func invalidSegment(index int, seg Segment) *Error {
	return &Error{
		Code:    CodeInvalidSegment,
		Message: fmt.Sprintf("segment %d (%q): length %g with direction %q is not a valid stroke", index, seg.Name, seg.Length, seg.Direction),
	}
}

func insufficientVertices(have int) *Error {
	return &Error{
		Code:    CodeInsufficientVertices,
		Message: fmt.Sprintf("need at least 3 vertices, have %d", have),
	}
}

package verdict

import (
	"errors"
	"fmt"
)

// ShapeError reports an input sequence whose shape does not match what a
// constructor or adapter requires. Match with errors.As.
type ShapeError struct {
	Field string // which input sequence was malformed
	Want  string
	Got   string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("verdict: %s must be %s, got %s", e.Field, e.Want, e.Got)
}

var (
	// ErrNoConfidence is returned by top-k queries on a result built
	// without confidence scores; ranking is undefined without them.
	ErrNoConfidence = errors.New("verdict: top-k could not be calculated, confidence is not set")

	// ErrNegativeK is returned when a top-k query is given k < 0.
	ErrNegativeK = errors.New("verdict: k must be non-negative")

	// ErrEmptyResult is returned by Top1 on a result with no items.
	ErrEmptyResult = errors.New("verdict: result is empty")
)

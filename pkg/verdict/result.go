package verdict

import "fmt"

// Result holds classification output for a single inference call: one class
// id per item, optionally paired with a confidence score at the same index.
// Construct via New or one of the From* adapters. Values are copied in at
// construction and never mutated afterwards.
type Result struct {
	classID    []int
	confidence []float64 // nil means no scores were computed
}

// New creates a Result from parallel class-id and confidence sequences.
// confidence may be nil ("no score computed"); when non-nil it must have
// exactly one entry per class id, otherwise a *ShapeError is returned.
// Both slices are copied; the caller's slices stay untouched.
func New(classID []int, confidence []float64) (Result, error) {
	n := len(classID)
	if confidence != nil && len(confidence) != n {
		return Result{}, &ShapeError{
			Field: "confidence",
			Want:  fmt.Sprintf("a flat sequence of %d entries", n),
			Got:   fmt.Sprintf("%d entries", len(confidence)),
		}
	}

	r := Result{classID: make([]int, n)}
	copy(r.classID, classID)
	if confidence != nil {
		// Keep present-but-empty distinct from absent: an empty non-nil
		// confidence slice stays non-nil.
		r.confidence = make([]float64, n)
		copy(r.confidence, confidence)
	}
	return r, nil
}

// Len returns the number of classified items.
func (r Result) Len() int {
	return len(r.classID)
}

// HasConfidence reports whether confidence scores were supplied.
func (r Result) HasConfidence() bool {
	return r.confidence != nil
}

// ClassIDs returns a copy of the class-id sequence.
func (r Result) ClassIDs() []int {
	out := make([]int, len(r.classID))
	copy(out, r.classID)
	return out
}

// Confidences returns a copy of the confidence sequence, or nil if no
// scores were supplied.
func (r Result) Confidences() []float64 {
	if r.confidence == nil {
		return nil
	}
	out := make([]float64, len(r.confidence))
	copy(out, r.confidence)
	return out
}

// denseIDs returns class ids 0..n-1, the id scheme all adapters produce.
func denseIDs(n int) []int {
	ids := make([]int, n)
	for i := range ids {
		ids[i] = i
	}
	return ids
}

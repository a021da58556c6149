package verdict

import "fmt"

// FromSoftmax creates a Result from a softmaxed probability matrix of shape
// (1, n) — the layout CLIP-style text/image scoring produces for a single
// item. Class ids are 0..n-1 and confidence is the single row. Any other
// row count is a *ShapeError.
func FromSoftmax(probs [][]float64) (Result, error) {
	if len(probs) != 1 {
		return Result{}, &ShapeError{
			Field: "probs",
			Want:  "a (1, n) probability matrix",
			Got:   fmt.Sprintf("%d rows", len(probs)),
		}
	}
	row := probs[0]
	return New(denseIDs(len(row)), row)
}

// FromProbs creates a Result from a flat probability vector of length n, the
// shape single-label classifiers such as YOLO-cls emit per item. Class ids
// are 0..n-1 and confidence is a copy of the vector.
func FromProbs(probs []float64) Result {
	r, _ := New(denseIDs(len(probs)), probs)
	return r
}

// FromLogits creates a Result from a raw logit vector for a single item
// (batch dimension already stripped). Class ids are 0..n-1 and confidence
// is a copy of the vector; pair with Softmax to get probability-like
// scores. An empty vector yields the empty result, with confidence present
// but empty.
func FromLogits(logits []float64) Result {
	if len(logits) == 0 {
		r, _ := New([]int{}, []float64{})
		return r
	}
	r, _ := New(denseIDs(len(logits)), logits)
	return r
}

package verdict

import "math"

// Softmax returns a new Result whose confidences are the softmax of the
// receiver's. Use after FromLogits to turn raw scores into probability-like
// values. The receiver is not modified; a result without confidence scores
// is returned as-is.
func (r Result) Softmax() Result {
	if len(r.confidence) == 0 {
		return r
	}

	// Subtract the max before exponentiating to avoid overflow.
	max := r.confidence[0]
	for _, v := range r.confidence[1:] {
		if v > max {
			max = v
		}
	}

	conf := make([]float64, len(r.confidence))
	var sum float64
	for i, v := range r.confidence {
		conf[i] = math.Exp(v - max)
		sum += conf[i]
	}
	for i := range conf {
		conf[i] /= sum
	}

	out, _ := New(r.classID, conf)
	return out
}

package verdict

import "sort"

// TopK returns the class ids and confidences of the k highest-scoring
// items, in descending confidence order. Items with equal confidence keep
// their original relative order. k larger than Len() is clamped; k == 0
// returns two empty slices. Negative k returns ErrNegativeK, and a result
// built without confidence scores returns ErrNoConfidence.
func (r Result) TopK(k int) ([]int, []float64, error) {
	if k < 0 {
		return nil, nil, ErrNegativeK
	}
	if r.confidence == nil {
		return nil, nil, ErrNoConfidence
	}

	order := make([]int, len(r.classID))
	for i := range order {
		order[i] = i
	}
	// Stable sort over ascending indices keeps ties in input order.
	sort.SliceStable(order, func(i, j int) bool {
		return r.confidence[order[i]] > r.confidence[order[j]]
	})

	if k > len(order) {
		k = len(order)
	}
	ids := make([]int, k)
	confs := make([]float64, k)
	for i := 0; i < k; i++ {
		ids[i] = r.classID[order[i]]
		confs[i] = r.confidence[order[i]]
	}
	return ids, confs, nil
}

// Top1 returns the single highest-scoring class id and its confidence.
// Returns ErrEmptyResult when the result holds no items.
func (r Result) Top1() (int, float64, error) {
	if r.Len() == 0 {
		return 0, 0, ErrEmptyResult
	}
	ids, confs, err := r.TopK(1)
	if err != nil {
		return 0, 0, err
	}
	return ids[0], confs[0], nil
}

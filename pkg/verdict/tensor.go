package verdict

import (
	"fmt"

	ort "github.com/yalue/onnxruntime_go"
)

// FromTensor creates a Result from an ONNX Runtime output tensor holding
// scores for a single item: shape (n,) or (1, n). A leading batch dimension
// other than 1, or a rank above 2, is a *ShapeError.
//
// Tensor data is copied to Go-owned memory, so the caller may Destroy the
// tensor as soon as FromTensor returns.
func FromTensor(t *ort.Tensor[float32]) (Result, error) {
	shape := t.GetShape()

	var n int64
	switch len(shape) {
	case 1:
		n = shape[0]
	case 2:
		if shape[0] != 1 {
			return Result{}, &ShapeError{
				Field: "tensor",
				Want:  "a (1, n) score tensor",
				Got:   fmt.Sprintf("shape %v", shape),
			}
		}
		n = shape[1]
	default:
		return Result{}, &ShapeError{
			Field: "tensor",
			Want:  "a rank-1 or (1, n) score tensor",
			Got:   fmt.Sprintf("shape %v", shape),
		}
	}

	data := t.GetData()
	if int64(len(data)) != n {
		return Result{}, &ShapeError{
			Field: "tensor",
			Want:  fmt.Sprintf("%d elements for shape %v", n, shape),
			Got:   fmt.Sprintf("%d elements", len(data)),
		}
	}

	conf := make([]float64, n)
	for i, v := range data {
		conf[i] = float64(v)
	}
	return New(denseIDs(int(n)), conf)
}

// Package verdict normalizes per-item classification output from inference
// runtimes into a single immutable result value with a top-k query.
//
// Quick start:
//
//	r := verdict.FromProbs([]float64{0.1, 0.9, 0.3})
//
//	ids, confs, err := r.TopK(2)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(ids, confs) // [1 2] [0.9 0.3]
//
// A Result is fully populated at construction and never mutated afterwards,
// so it is safe to share across goroutines without locking. Adapters exist
// for softmax probability matrices, flat probability vectors, raw logit
// vectors, and ONNX Runtime output tensors.
package verdict

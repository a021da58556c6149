package runner

import (
	"os"
	"testing"
)

const testModelPath = "../../models/classifier.onnx"

func skipIfNoModel(t *testing.T) {
	t.Helper()
	if _, err := os.Stat(testModelPath); os.IsNotExist(err) {
		t.Skip("classifier model not found; run 'make download-model' first")
	}
}

func TestNewLoadsModel(t *testing.T) {
	skipIfNoModel(t)

	r, err := New(testModelPath, "")
	if err != nil {
		t.Fatalf("failed to load model: %v", err)
	}
	defer r.Close()

	if r.NumClasses() <= 0 {
		t.Errorf("expected positive class count, got %d", r.NumClasses())
	}

	t.Logf("input name: %s", r.inputName)
	t.Logf("output name: %s", r.outputName)
	t.Logf("classes: %d", r.NumClasses())
}

func TestNewBadPathFails(t *testing.T) {
	if _, err := New("/nonexistent/model.onnx", ""); err == nil {
		t.Fatal("expected error for bad model path, got nil")
	}
}

func TestRunInputSizeMismatch(t *testing.T) {
	skipIfNoModel(t)

	r, err := New(testModelPath, "")
	if err != nil {
		t.Fatalf("failed to load model: %v", err)
	}
	defer r.Close()

	_, err = r.Run([]float32{1, 2, 3}, []int64{1, 2})
	if err == nil {
		t.Fatal("expected error for element/shape mismatch, got nil")
	}
}

func TestRunRejectsBatch(t *testing.T) {
	skipIfNoModel(t)

	r, err := New(testModelPath, "")
	if err != nil {
		t.Fatalf("failed to load model: %v", err)
	}
	defer r.Close()

	_, err = r.Run(make([]float32, 8), []int64{2, 4})
	if err == nil {
		t.Fatal("expected error for batch size 2, got nil")
	}
}

func TestRunProducesRankedResult(t *testing.T) {
	skipIfNoModel(t)

	r, err := New(testModelPath, "")
	if err != nil {
		t.Fatalf("failed to load model: %v", err)
	}
	defer r.Close()

	// A zero tensor is valid input for smoke-testing the wiring; the shape
	// matches the downloaded test model.
	input := make([]float32, 1*3*224*224)
	res, err := r.Run(input, []int64{1, 3, 224, 224})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if res.Len() != r.NumClasses() {
		t.Errorf("result has %d items, model has %d classes", res.Len(), r.NumClasses())
	}
	if _, _, err := res.TopK(5); err != nil {
		t.Errorf("TopK on model output failed: %v", err)
	}
}

// Package runner executes single-item classification inference against an
// ONNX model and converts the score tensor into a verdict.Result.
package runner

import (
	"fmt"
	"path/filepath"
	"sync"

	ort "github.com/yalue/onnxruntime_go"

	"github.com/crimson-sun/verdict/pkg/verdict"
)

// ortEnv manages global ONNX Runtime initialization (process-wide singleton).
var ortEnv struct {
	once sync.Once
	err  error
}

// initORT initializes the ONNX Runtime environment. Safe to call multiple
// times; only the first call has any effect.
func initORT(libPath string) error {
	ortEnv.once.Do(func() {
		ort.SetSharedLibraryPath(libPath)
		ortEnv.err = ort.InitializeEnvironment()
	})
	return ortEnv.err
}

// Runner wraps a DynamicAdvancedSession for a classification model with a
// single float32 input and a single score output of shape (n,) or (1, n).
type Runner struct {
	session    *ort.DynamicAdvancedSession
	inputName  string
	outputName string
	outputRank int
	numClasses int64
}

// New loads the ONNX model and creates an inference session. libPath points
// at the ONNX Runtime shared library; when empty, libonnxruntime.so is
// expected next to the model file. Model input/output layout is validated
// up front.
func New(modelPath, libPath string) (*Runner, error) {
	if libPath == "" {
		libPath = filepath.Join(filepath.Dir(modelPath), "libonnxruntime.so")
	}
	if err := initORT(libPath); err != nil {
		return nil, fmt.Errorf("runner: failed to initialize runtime: %w", err)
	}

	// Inspect model to discover tensor names and shapes.
	inputs, outputs, err := ort.GetInputOutputInfo(modelPath)
	if err != nil {
		return nil, fmt.Errorf("runner: failed to read model info: %w", err)
	}
	if len(inputs) != 1 {
		return nil, fmt.Errorf("runner: expected 1 model input, got %d", len(inputs))
	}
	if len(outputs) != 1 {
		return nil, fmt.Errorf("runner: expected 1 model output, got %d", len(outputs))
	}

	dims := outputs[0].Dimensions
	if len(dims) != 1 && len(dims) != 2 {
		return nil, fmt.Errorf("runner: expected 1D or 2D score output, got %v", dims)
	}
	// The class axis must be static; the batch axis may be dynamic.
	numClasses := dims[len(dims)-1]
	if numClasses <= 0 {
		return nil, fmt.Errorf("runner: model has dynamic class count %v", dims)
	}

	opts, err := ort.NewSessionOptions()
	if err != nil {
		return nil, fmt.Errorf("runner: failed to create session options: %w", err)
	}
	defer opts.Destroy()
	opts.SetIntraOpNumThreads(4)
	opts.SetInterOpNumThreads(1)

	session, err := ort.NewDynamicAdvancedSession(
		modelPath,
		[]string{inputs[0].Name},
		[]string{outputs[0].Name},
		opts,
	)
	if err != nil {
		return nil, fmt.Errorf("runner: failed to create session: %w", err)
	}

	return &Runner{
		session:    session,
		inputName:  inputs[0].Name,
		outputName: outputs[0].Name,
		outputRank: len(dims),
		numClasses: numClasses,
	}, nil
}

// NumClasses returns the model's class count.
func (r *Runner) NumClasses() int {
	return int(r.numClasses)
}

// Run executes one inference call on a preprocessed input tensor (flat data
// plus its shape, batch size 1) and returns the normalized result. Scores
// are copied out before the tensors are destroyed.
func (r *Runner) Run(input []float32, shape []int64) (verdict.Result, error) {
	var count int64 = 1
	for _, d := range shape {
		count *= d
	}
	if int64(len(input)) != count {
		return verdict.Result{}, fmt.Errorf("runner: input has %d elements, shape %v needs %d",
			len(input), shape, count)
	}
	if len(shape) > 1 && shape[0] != 1 {
		return verdict.Result{}, fmt.Errorf("runner: batch size must be 1, got shape %v", shape)
	}

	tIn, err := ort.NewTensor(ort.NewShape(shape...), input)
	if err != nil {
		return verdict.Result{}, fmt.Errorf("runner: failed to create input tensor: %w", err)
	}
	defer tIn.Destroy()

	outShape := ort.NewShape(r.numClasses)
	if r.outputRank == 2 {
		outShape = ort.NewShape(1, r.numClasses)
	}
	tOut, err := ort.NewEmptyTensor[float32](outShape)
	if err != nil {
		return verdict.Result{}, fmt.Errorf("runner: failed to create output tensor: %w", err)
	}
	defer tOut.Destroy()

	err = r.session.Run(
		[]ort.Value{tIn},
		[]ort.Value{tOut},
	)
	if err != nil {
		return verdict.Result{}, fmt.Errorf("runner: inference failed: %w", err)
	}

	res, err := verdict.FromTensor(tOut)
	if err != nil {
		return verdict.Result{}, fmt.Errorf("runner: %w", err)
	}
	return res, nil
}

// Close releases the ONNX session resources.
func (r *Runner) Close() error {
	return r.session.Destroy()
}

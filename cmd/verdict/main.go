package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/crimson-sun/verdict/internal/config"
	"github.com/crimson-sun/verdict/internal/labels"
	"github.com/crimson-sun/verdict/internal/logging"
	"github.com/crimson-sun/verdict/internal/render"
	"github.com/crimson-sun/verdict/internal/runner"
	"github.com/crimson-sun/verdict/internal/tensorfile"
	"github.com/crimson-sun/verdict/pkg/verdict"
)

func main() {
	var (
		configPath = flag.String("config", "verdict.yaml", "path to YAML config file")
		modelPath  = flag.String("model", "", "path to classification ONNX model")
		inputPath  = flag.String("input", "", "path to raw float32 input tensor file")
		inputShape = flag.String("shape", "", "input tensor shape, e.g. 1,3,224,224")
		scoresPath = flag.String("scores", "", "path to a plain-text score file (one mode: skips the model)")
		rawLogits  = flag.Bool("logits", false, "treat -scores values as raw logits and softmax them")
		labelsPath = flag.String("labels", "", "path to labels.txt (one class name per line)")
		topK       = flag.Int("k", 0, "how many top classes to print (0 = config default)")
		format     = flag.String("format", "", "output format: text or json")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Flags win over config file and env.
	if *modelPath != "" {
		cfg.ModelPath = *modelPath
	}
	if *labelsPath != "" {
		cfg.LabelsPath = *labelsPath
	}
	if *topK > 0 {
		cfg.TopK = *topK
	}
	if *format != "" {
		cfg.Format = *format
	}

	logging.Init(cfg.Format, logging.ParseLevel(cfg.LogLevel))

	result, err := classify(cfg, *scoresPath, *rawLogits, *inputPath, *inputShape)
	if err != nil {
		slog.Error("classification failed", "error", err)
		os.Exit(1)
	}

	ids, confs, err := result.TopK(cfg.TopK)
	if err != nil {
		slog.Error("top-k selection failed", "error", err)
		os.Exit(1)
	}
	slog.Debug("ranked results", "items", result.Len(), "k", len(ids))

	var tab *labels.Table
	if cfg.LabelsPath != "" {
		tab, err = labels.Load(cfg.LabelsPath)
		if err != nil {
			slog.Error("failed to load labels", "error", err)
			os.Exit(1)
		}
	}

	recs := render.Records(ids, confs, tab)
	if cfg.Format == "json" {
		err = render.WriteJSON(os.Stdout, recs)
	} else {
		err = render.WriteText(os.Stdout, recs)
	}
	if err != nil {
		slog.Error("failed to write results", "error", err)
		os.Exit(1)
	}
}

// classify produces a result from one of the two input modes: a plain-text
// score file, or an ONNX model plus a raw input tensor file.
func classify(cfg *config.Config, scoresPath string, rawLogits bool, inputPath, inputShape string) (verdict.Result, error) {
	if scoresPath != "" {
		scores, err := readScores(scoresPath)
		if err != nil {
			return verdict.Result{}, err
		}
		if rawLogits {
			return verdict.FromLogits(scores).Softmax(), nil
		}
		return verdict.FromProbs(scores), nil
	}

	if cfg.ModelPath == "" || inputPath == "" {
		return verdict.Result{}, fmt.Errorf("either -scores, or -model and -input, must be given")
	}
	shape, err := parseShape(inputShape)
	if err != nil {
		return verdict.Result{}, err
	}

	input, err := tensorfile.Read(inputPath, shape)
	if err != nil {
		return verdict.Result{}, err
	}

	r, err := runner.New(cfg.ModelPath, cfg.OrtLibPath)
	if err != nil {
		return verdict.Result{}, err
	}
	defer r.Close()
	slog.Debug("model loaded", "path", cfg.ModelPath, "classes", r.NumClasses())

	return r.Run(input, shape)
}

// readScores parses a whitespace-separated list of floats.
func readScores(path string) ([]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scores: %w", err)
	}
	fields := strings.Fields(string(data))
	scores := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("scores: bad value %q at position %d: %w", f, i, err)
		}
		scores[i] = v
	}
	return scores, nil
}

// parseShape parses a comma-separated dimension list like "1,3,224,224".
func parseShape(s string) ([]int64, error) {
	if s == "" {
		return nil, fmt.Errorf("-shape is required with -input")
	}
	parts := strings.Split(s, ",")
	shape := make([]int64, len(parts))
	for i, p := range parts {
		d, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad shape dimension %q: %w", p, err)
		}
		shape[i] = d
	}
	return shape, nil
}

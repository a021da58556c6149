package tensorfile

import (
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func writeTensorFile(t *testing.T, values []float32) string {
	t.Helper()
	buf := make([]byte, len(values)*4)
	for i, v := range values {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	path := filepath.Join(t.TempDir(), "input.bin")
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		t.Fatalf("failed to write tensor file: %v", err)
	}
	return path
}

func TestRead(t *testing.T) {
	want := []float32{0.5, -1.25, 3.0, 0, 42, 7}
	path := writeTensorFile(t, want)

	got, err := Read(path, []int64{2, 3})
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("got %d values, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("value[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestReadSizeMismatchFails(t *testing.T) {
	path := writeTensorFile(t, []float32{1, 2, 3})

	if _, err := Read(path, []int64{4}); err == nil {
		t.Fatal("expected error for byte/shape mismatch, got nil")
	}
}

func TestReadBadShapeFails(t *testing.T) {
	path := writeTensorFile(t, []float32{1, 2})

	cases := []struct {
		name  string
		shape []int64
	}{
		{"empty shape", nil},
		{"zero dimension", []int64{0, 2}},
		{"negative dimension", []int64{-1, 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Read(path, tc.shape); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestReadMissingFileFails(t *testing.T) {
	if _, err := Read("/nonexistent/input.bin", []int64{1}); err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}

// Package tensorfile reads preprocessed input tensors stored as raw
// little-endian float32 files. Image decoding and preprocessing happen
// upstream; this package only loads the resulting numbers.
package tensorfile

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"
)

// Read loads a raw float32 tensor file and checks it against the declared
// shape. The file must contain exactly the product of the shape dimensions
// in little-endian float32 values, nothing else.
func Read(path string, shape []int64) ([]float32, error) {
	if len(shape) == 0 {
		return nil, fmt.Errorf("tensorfile: shape must not be empty")
	}
	var count int64 = 1
	for _, d := range shape {
		if d <= 0 {
			return nil, fmt.Errorf("tensorfile: invalid dimension %d in shape %v", d, shape)
		}
		count *= d
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tensorfile: %w", err)
	}
	if int64(len(data)) != count*4 {
		return nil, fmt.Errorf("tensorfile: file has %d bytes, shape %v needs %d",
			len(data), shape, count*4)
	}

	// Reinterpret raw bytes as float32 slice.
	values := make([]float32, count)
	for i := range values {
		bits := binary.LittleEndian.Uint32(data[i*4 : i*4+4])
		values[i] = math.Float32frombits(bits)
	}
	return values, nil
}

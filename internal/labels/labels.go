// Package labels maps dense class ids to human-readable class names loaded
// from a labels.txt file.
package labels

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Table holds class names indexed by class id.
type Table struct {
	names []string
}

// Load reads a labels file where each line is a class name and the line
// number (0-indexed) is the class id. Names are trimmed and NFC-normalized
// so lookups behave the same regardless of how the file was authored.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("labels: %w", err)
	}
	defer f.Close()

	var names []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		name := norm.NFC.String(strings.TrimSpace(scanner.Text()))
		names = append(names, name)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("labels: read error: %w", err)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("labels: file is empty: %s", path)
	}

	return &Table{names: names}, nil
}

// Name returns the class name for the given id. Ids outside the table fall
// back to a synthetic "class_<id>" name, since results may carry ids the
// table does not cover.
func (t *Table) Name(id int) string {
	if id < 0 || id >= len(t.names) {
		return fmt.Sprintf("class_%d", id)
	}
	return t.names[id]
}

// Len returns the number of known class names.
func (t *Table) Len() int {
	return len(t.names)
}

// Package render writes ranked classification results as human-readable
// text or NDJSON.
package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/crimson-sun/verdict/internal/labels"
)

// Record is one ranked entry of a top-k query.
type Record struct {
	Rank       int     `json:"rank"`
	ClassID    int     `json:"class_id"`
	Label      string  `json:"label,omitempty"`
	Confidence float64 `json:"confidence"`
}

// Records pairs ranked ids and confidences with optional label names.
// tab may be nil, in which case Label stays empty.
func Records(ids []int, confs []float64, tab *labels.Table) []Record {
	recs := make([]Record, len(ids))
	for i := range ids {
		recs[i] = Record{
			Rank:       i + 1,
			ClassID:    ids[i],
			Confidence: confs[i],
		}
		if tab != nil {
			recs[i].Label = tab.Name(ids[i])
		}
	}
	return recs
}

// WriteText writes records as an aligned human-readable listing.
func WriteText(w io.Writer, recs []Record) error {
	for _, r := range recs {
		var err error
		if r.Label != "" {
			_, err = fmt.Fprintf(w, "%3d. class %-6d %-30s %.4f\n", r.Rank, r.ClassID, r.Label, r.Confidence)
		} else {
			_, err = fmt.Fprintf(w, "%3d. class %-6d %.4f\n", r.Rank, r.ClassID, r.Confidence)
		}
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
	}
	return nil
}

// WriteJSON writes records as newline-delimited JSON, one record per line.
func WriteJSON(w io.Writer, recs []Record) error {
	enc := json.NewEncoder(w)
	for _, r := range recs {
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("render: %w", err)
		}
	}
	return nil
}

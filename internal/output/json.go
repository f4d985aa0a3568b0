/*
PURPOSE:
  Writes aggregate report rows to a JSON Lines file (NDJSON).
  Optional machine-readable companion to the CSV exports.

REQUIREMENTS:
  User-specified:
  - Enabled via export_json / --json; off by default.

  Implementation-discovered:
  - JSON Lines is better for streaming/appending than a single array,
    and plays well with jq.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Consumes: internal/model.Row

ERROR HANDLING:
  - Returns error on file creation or write failure.

IMPLEMENTATION RULES:
  - Use encoding/json.NewEncoder.
  - Thread-safe.
  - Nulls stay JSON null so consumers can tell "unrated" from 0.

USAGE:
  w, err := output.NewJSONWriter("form1_analysis_x.jsonl", columns)
  w.Write(row)
  w.Close()

RELATED FILES:
  - internal/output/csv.go

MAINTENANCE:
  - Update if we switch to a plain JSON array (not recommended).
*/

package output

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/evallab/rating-report/internal/model"
)

// JSONWriter handles writing aggregate rows to a JSON Lines file.
type JSONWriter struct {
	file    *os.File
	encoder *json.Encoder
	columns []string
	mu      sync.Mutex
}

// NewJSONWriter creates a new JSONWriter. columns must match the
// report's column order (leading user_id included).
func NewJSONWriter(path string, columns []string) (*JSONWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	return &JSONWriter{
		file:    f,
		encoder: json.NewEncoder(f),
		columns: columns,
	}, nil
}

// Write writes a single aggregate row as a JSON object line.
func (jw *JSONWriter) Write(r model.Row) error {
	jw.mu.Lock()
	defer jw.mu.Unlock()

	obj := make(map[string]any, len(jw.columns))
	obj[jw.columns[0]] = r.UserID
	for i, v := range r.Values {
		if v == nil {
			obj[jw.columns[i+1]] = nil
			continue
		}
		obj[jw.columns[i+1]] = *v
	}

	return jw.encoder.Encode(obj)
}

// Close closes the underlying file.
func (jw *JSONWriter) Close() error {
	return jw.file.Close()
}

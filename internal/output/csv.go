/*
PURPOSE:
  Writes aggregate report rows to a CSV file.
  Ensures data integrity by flushing writes immediately.

REQUIREMENTS:
  User-specified:
  - Header row matching the report's column order.
  - Null cells rendered as empty CSV fields.

  Implementation-discovered:
  - One writer per report file; files are timestamped upstream so a
    fresh create (truncate) is always correct.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Consumes: internal/model.Row

ERROR HANDLING:
  - Returns error on file creation or write failure.

IMPLEMENTATION RULES:
  - Use encoding/csv.
  - Flush() after every write (a failed later form must not lose the
    rows of this one).
  - Use Mutex so a future parallel-forms runner stays safe.

USAGE:
  w, err := output.NewCSVWriter("form1_analysis_x.csv", columns)
  w.Write(row)
  w.Close()

RELATED FILES:
  - internal/model/types.go

MAINTENANCE:
  - Update Write() if reports ever grow non-numeric columns.
*/

package output

import (
	"encoding/csv"
	"os"
	"strconv"
	"sync"

	"github.com/evallab/rating-report/internal/model"
)

// CSVWriter handles writing aggregate rows to a CSV file.
type CSVWriter struct {
	file   *os.File
	writer *csv.Writer
	mu     sync.Mutex
}

// NewCSVWriter creates a new CSVWriter and writes the header row.
// It overwrites the file if it exists.
func NewCSVWriter(path string, columns []string) (*CSVWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	w := csv.NewWriter(f)
	if err := w.Write(columns); err != nil {
		f.Close()
		return nil, err
	}
	w.Flush()

	return &CSVWriter{
		file:   f,
		writer: w,
	}, nil
}

// Write writes a single aggregate row. Nil values become empty fields.
// It is thread-safe.
func (cw *CSVWriter) Write(r model.Row) error {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	record := make([]string, 0, len(r.Values)+1)
	record = append(record, r.UserID)
	for _, v := range r.Values {
		if v == nil {
			record = append(record, "")
			continue
		}
		record = append(record, strconv.FormatFloat(*v, 'f', 2, 64))
	}

	if err := cw.writer.Write(record); err != nil {
		return err
	}
	cw.writer.Flush()
	return cw.writer.Error()
}

// Close closes the underlying file.
func (cw *CSVWriter) Close() error {
	cw.writer.Flush()
	return cw.file.Close()
}

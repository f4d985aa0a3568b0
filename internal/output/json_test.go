package output

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/evallab/rating-report/internal/model"
)

func TestJSONWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "form3_analysis_test.jsonl")
	columns := []string{"user_id", "cot_quality_avg"}

	w, err := NewJSONWriter(path, columns)
	if err != nil {
		t.Fatalf("NewJSONWriter error: %v", err)
	}
	rows := []model.Row{
		{UserID: "alice", Values: []*float64{fv(3.5)}},
		{UserID: "bob", Values: []*float64{nil}},
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			t.Fatalf("Write error: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	var lines []map[string]any
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var obj map[string]any
		if err := json.Unmarshal(scanner.Bytes(), &obj); err != nil {
			t.Fatalf("invalid JSON line: %v", err)
		}
		lines = append(lines, obj)
	}
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}

	if lines[0]["user_id"] != "alice" || lines[0]["cot_quality_avg"] != 3.5 {
		t.Fatalf("unexpected first line: %v", lines[0])
	}
	if v, present := lines[1]["cot_quality_avg"]; !present || v != nil {
		t.Fatalf("null cell should encode as JSON null, got %v", lines[1])
	}
}
